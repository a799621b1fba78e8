package raster

import (
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
)

func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	return nil
}

// SavePNG writes the image to a png file at path, replacing an existing file.
func (c *Canvas) SavePNG(path string) error {
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}

	defer fp.Close()

	if err := c.WritePNG(fp); err != nil {
		return err
	}

	if err := fp.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}

	bounds := c.img.Bounds()

	slog.Info("Snapshot written",
		slog.String("path", path),
		slog.Int("width", bounds.Dx()),
		slog.Int("height", bounds.Dy()),
	)

	return nil
}
