package shapes

import (
	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/physics"
)

// RenderFunc paints a single body using its record in the store.
type RenderFunc func(ctx canvas.Context, body *physics.Body, store *Store)

// Registry dispatches bodies to the renderer of their kind.
type Registry struct {
	renderers map[Kind]RenderFunc
}

func NewRegistry() *Registry {
	return &Registry{renderers: map[Kind]RenderFunc{}}
}

// DefaultRegistry returns a registry with the renderers of every kind.
func DefaultRegistry() *Registry {
	reg := NewRegistry()

	for _, kind := range Kinds() {
		reg.Register(kind, rendererOf(kind))
	}

	return reg
}

func rendererOf(kind Kind) RenderFunc {
	switch kind {
	case KindCircle:
		return RenderCircle
	case KindDot:
		return RenderDot
	case KindBanner:
		return RenderBanner
	case KindBurst:
		return RenderBurst
	case KindPill:
		return RenderPill
	case KindParallelogram:
		return RenderParallelogram
	case KindVLabel:
		return RenderVLabel
	case KindQuarterPie:
		return RenderQuarterPie
	case KindThickRing:
		return RenderThickRing
	case KindTextBadge:
		return RenderTextBadge
	case KindStar:
		return RenderStar
	case KindEye:
		return RenderEye
	case KindMartiniGlass:
		return RenderMartiniGlass
	case KindOliveStick:
		return RenderOliveStick
	case KindCameraFront:
		return RenderCameraFront
	case KindExclamationMark:
		return RenderExclamationMark
	case KindSparkStar:
		return RenderSparkStar
	case KindCloud:
		return RenderCloud
	case KindBagel:
		return RenderBagel
	case KindRibbon:
		return RenderRibbon
	case KindArch:
		return RenderArch
	case KindRectWithCircles:
		return RenderRectWithCircles
	case KindCShape:
		return RenderCShape
	default:
		panic("no renderer for " + kind.String())
	}
}

// Register installs or replaces the renderer of a kind.
func (r *Registry) Register(kind Kind, render RenderFunc) {
	r.renderers[kind] = render
}

// Render paints the body with the renderer matching its record.
// Bodies without a record are skipped.
func (r *Registry) Render(ctx canvas.Context, body *physics.Body, store *Store) {
	record, ok := store.Get(body)
	if !ok {
		return
	}

	render, ok := r.renderers[record.Kind()]
	if !ok {
		return
	}

	render(ctx, body, store)
}

// RenderAll paints the bodies in the given order.
func (r *Registry) RenderAll(ctx canvas.Context, bodies []*physics.Body, store *Store) {
	for _, body := range bodies {
		r.Render(ctx, body, store)
	}
}
