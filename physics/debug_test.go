package physics

import (
	"testing"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/stretchr/testify/require"
)

func TestDrawDebug(t *testing.T) {
	world := NewWorld(DefaultWorldOptions())
	world.Add(
		world.Circle(gm.Vec{X: 100, Y: 100}, 10, BodyOptions{}),
		world.Rectangle(gm.Vec{X: 200, Y: 100}, 10, 20, BodyOptions{Static: true}),
	)

	world.Step(1.0 / 60)

	rec := canvas.NewRecorder()
	DrawDebug(world, rec)

	require.Len(t, rec.OfKind(canvas.OpFill), 2)
	require.NotEmpty(t, rec.OfKind(canvas.OpStroke))
	require.Equal(t, 0, rec.Depth())
}
