package shapes

import (
	"testing"

	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
	"github.com/stretchr/testify/require"
)

func newTestFactory() *Factory {
	return NewFactory(physics.NewWorld(physics.DefaultWorldOptions()), nil)
}

// constructors creates one body of every kind with default options.
var constructors = map[Kind]func(f *Factory) *physics.Body{
	KindCircle: func(f *Factory) *physics.Body {
		return f.Circle(gm.Vec{X: 10, Y: 10}, 20, CircleOptions{})
	},
	KindDot: func(f *Factory) *physics.Body {
		return f.Dot(gm.Vec{X: 10, Y: 10}, 40, DotOptions{})
	},
	KindBanner: func(f *Factory) *physics.Body {
		return f.Banner(gm.Vec{X: 10, Y: 10}, 300, 80, BannerOptions{})
	},
	KindBurst: func(f *Factory) *physics.Body {
		return f.Burst(gm.Vec{X: 10, Y: 10}, BurstOptions{})
	},
	KindPill: func(f *Factory) *physics.Body {
		return f.Pill(gm.Vec{X: 10, Y: 10}, 280, 90, PillOptions{})
	},
	KindParallelogram: func(f *Factory) *physics.Body {
		return f.Parallelogram(gm.Vec{X: 10, Y: 10}, 260, 80, ParallelogramOptions{})
	},
	KindVLabel: func(f *Factory) *physics.Body {
		return f.VLabel(gm.Vec{X: 10, Y: 10}, 70, 260, VLabelOptions{})
	},
	KindQuarterPie: func(f *Factory) *physics.Body {
		return f.QuarterPie(gm.Vec{X: 10, Y: 10}, 120, QuarterPieOptions{})
	},
	KindThickRing: func(f *Factory) *physics.Body {
		return f.ThickRing(gm.Vec{X: 10, Y: 10}, ThickRingOptions{})
	},
	KindTextBadge: func(f *Factory) *physics.Body {
		return f.TextBadge(gm.Vec{X: 10, Y: 10}, 200, 60, TextBadgeOptions{})
	},
	KindStar: func(f *Factory) *physics.Body {
		return f.Star(gm.Vec{X: 10, Y: 10}, 5, 60, StarOptions{})
	},
	KindEye: func(f *Factory) *physics.Body {
		return f.Eye(gm.Vec{X: 10, Y: 10}, 160, 80, EyeOptions{})
	},
	KindMartiniGlass: func(f *Factory) *physics.Body {
		return f.MartiniGlass(gm.Vec{X: 10, Y: 10}, 160, MartiniGlassOptions{})
	},
	KindOliveStick: func(f *Factory) *physics.Body {
		return f.OliveStick(gm.Vec{X: 10, Y: 10}, OliveStickOptions{})
	},
	KindCameraFront: func(f *Factory) *physics.Body {
		return f.CameraFront(gm.Vec{X: 10, Y: 10}, 220, 140, CameraFrontOptions{})
	},
	KindExclamationMark: func(f *Factory) *physics.Body {
		return f.ExclamationMark(gm.Vec{X: 10, Y: 10}, 120, ExclamationMarkOptions{})
	},
	KindSparkStar: func(f *Factory) *physics.Body {
		return f.SparkStar(gm.Vec{X: 10, Y: 10}, 120, 160, SparkStarOptions{})
	},
	KindCloud: func(f *Factory) *physics.Body {
		return f.Cloud(gm.Vec{X: 10, Y: 10}, 240, 120, CloudOptions{})
	},
	KindBagel: func(f *Factory) *physics.Body {
		return f.Bagel(gm.Vec{X: 10, Y: 10}, 150, 110, BagelOptions{})
	},
	KindRibbon: func(f *Factory) *physics.Body {
		return f.Ribbon(gm.Vec{X: 10, Y: 10}, 320, 70, RibbonOptions{})
	},
	KindArch: func(f *Factory) *physics.Body {
		return f.Arch(gm.Vec{X: 10, Y: 10}, 120, ArchOptions{})
	},
	KindRectWithCircles: func(f *Factory) *physics.Body {
		return f.RectWithCircles(gm.Vec{X: 10, Y: 10}, 220, 90, RectWithCirclesOptions{})
	},
	KindCShape: func(f *Factory) *physics.Body {
		return f.CShape(gm.Vec{X: 10, Y: 10}, 120, CShapeOptions{})
	},
}

func TestStore_RoundTrip(t *testing.T) {
	require.Len(t, constructors, len(Kinds()))

	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			f := newTestFactory()

			body := constructors[kind](f)
			require.NotNil(t, body)
			require.Equal(t, 1, f.Store().Len())

			record, ok := f.Store().Get(body)
			require.True(t, ok)
			require.Equal(t, kind, record.Kind())

			require.InDelta(t, 10, body.Position().X, 1e-6)
			require.InDelta(t, 10, body.Position().Y, 1e-6)
		})
	}
}

func TestStore_Overwrite(t *testing.T) {
	store := NewStore()
	body := physics.NewBody([]physics.ToShape{physics.CircleShape{Radius: 1}}, physics.BodyOptions{})

	store.Set(body, CircleRecord{Radius: 1})
	store.Set(body, DotRecord{Radius: 2})
	require.Equal(t, 1, store.Len())

	record, ok := store.Get(body)
	require.True(t, ok)
	require.Equal(t, KindDot, record.Kind())

	_, ok = lookup[CircleRecord](store, body)
	require.False(t, ok)

	dot, ok := lookup[DotRecord](store, body)
	require.True(t, ok)
	require.Equal(t, 2.0, dot.Radius)
}

func TestStore_Empty(t *testing.T) {
	body := physics.NewBody([]physics.ToShape{physics.CircleShape{Radius: 1}}, physics.BodyOptions{})

	var nilStore *Store
	_, ok := nilStore.Get(body)
	require.False(t, ok)
	require.Equal(t, 0, nilStore.Len())

	var zero Store
	_, ok = zero.Get(body)
	require.False(t, ok)

	zero.Set(body, CircleRecord{})
	require.Equal(t, 1, zero.Len())

	_, ok = zero.Get(nil)
	require.False(t, ok)

	zero.Clear()
	require.Equal(t, 0, zero.Len())

	nilStore.Clear()
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "quarterPie", KindQuarterPie.String())
	require.Equal(t, "cShape", KindCShape.String())
	require.Equal(t, "Kind(200)", Kind(200).String())
}

func TestOpt(t *testing.T) {
	var unset Opt[float64]
	require.Equal(t, 3.0, unset.OrValue(3))
	require.Equal(t, 0.0, unset.OrDefault())

	_, ok := unset.Get()
	require.False(t, ok)

	zero := Some(0.0)
	require.Equal(t, 0.0, zero.OrValue(3))

	value, ok := zero.Get()
	require.True(t, ok)
	require.Equal(t, 0.0, value)
}
