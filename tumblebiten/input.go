package tumblebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/tumble/gm"
)

// PointerTarget receives pointer gestures.
type PointerTarget interface {
	Press(point gm.Vec)
	Drag(point gm.Vec)
	Release()
}

// Pointer turns the left mouse button and the first touch into
// press, drag and release gestures.
type Pointer struct {
	mouse bool

	touch    ebiten.TouchID
	touching bool

	last gm.Vec
}

// Update polls the input state. Call it once per tick.
func (p *Pointer) Update(target PointerTarget) {
	switch {
	case p.touching:
		p.updateTouch(target)

	case p.mouse:
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			p.mouse = false
			target.Release()
			return
		}

		p.drag(target, cursorPosition())

	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.mouse = true
		p.last = cursorPosition()
		target.Press(p.last)

	default:
		touches := inpututil.AppendJustPressedTouchIDs(nil)
		if len(touches) == 0 {
			return
		}

		p.touching = true
		p.touch = touches[0]
		p.last = touchPosition(p.touch)
		target.Press(p.last)
	}
}

func (p *Pointer) updateTouch(target PointerTarget) {
	if inpututil.IsTouchJustReleased(p.touch) {
		p.touching = false
		target.Release()
		return
	}

	p.drag(target, touchPosition(p.touch))
}

func (p *Pointer) drag(target PointerTarget, point gm.Vec) {
	if point == p.last {
		return
	}

	p.last = point
	target.Drag(point)
}

func cursorPosition() gm.Vec {
	x, y := ebiten.CursorPosition()
	return gm.Vec{X: float64(x), Y: float64(y)}
}

func touchPosition(id ebiten.TouchID) gm.Vec {
	x, y := ebiten.TouchPosition(id)
	return gm.Vec{X: float64(x), Y: float64(y)}
}
