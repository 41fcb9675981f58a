package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bossarena/ecs/system"
)

const stickDeadzone = 0.2

// Binding maps one player slot onto keys and, optionally, a gamepad.
type Binding struct {
	Left     ebiten.Key
	Right    ebiten.Key
	Jump     ebiten.Key
	Down     ebiten.Key
	Interact ebiten.Key
	Special  ebiten.Key
	// Gamepad is an index into ebiten.GamepadIDs, or -1 for none.
	Gamepad int
}

// DefaultBindings gives slot 1 WASD and slot 2 the arrow keys. Gamepads are
// assigned in connection order.
func DefaultBindings() map[int]Binding {
	return map[int]Binding{
		1: {
			Left: ebiten.KeyA, Right: ebiten.KeyD, Jump: ebiten.KeyW, Down: ebiten.KeyS,
			Interact: ebiten.KeyE, Special: ebiten.KeyQ, Gamepad: 0,
		},
		2: {
			Left: ebiten.KeyArrowLeft, Right: ebiten.KeyArrowRight, Jump: ebiten.KeyArrowUp, Down: ebiten.KeyArrowDown,
			Interact: ebiten.KeyPeriod, Special: ebiten.KeySlash, Gamepad: 1,
		},
	}
}

// Keyboard reads ebiten's input state. It must be polled from the ebiten
// update goroutine.
type Keyboard struct {
	bindings map[int]Binding
}

var _ system.ControlSource = (*Keyboard)(nil)

func NewKeyboard(bindings map[int]Binding) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Keyboard{bindings: bindings}
}

func (k *Keyboard) lookup(name string) (string, Binding, bool) {
	control, id, ok := splitName(name)
	if !ok {
		return "", Binding{}, false
	}
	b, ok := k.bindings[id]
	return control, b, ok
}

func (k *Keyboard) AxisValue(name string) float64 {
	control, b, ok := k.lookup(name)
	if !ok || control != system.ControlHorizontal {
		return 0
	}

	v := 0.0
	if ebiten.IsKeyPressed(b.Left) {
		v -= 1
	}
	if ebiten.IsKeyPressed(b.Right) {
		v += 1
	}
	if id, ok := gamepad(b); ok {
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(x) > stickDeadzone {
			v = x
		}
	}
	return v
}

func (k *Keyboard) EdgeDown(name string) bool {
	control, b, ok := k.lookup(name)
	if !ok {
		return false
	}
	key, button, ok := keyFor(control, b)
	if !ok {
		return false
	}
	if inpututil.IsKeyJustPressed(key) {
		return true
	}
	if id, ok := gamepad(b); ok {
		return inpututil.IsStandardGamepadButtonJustPressed(id, button)
	}
	return false
}

func (k *Keyboard) EdgeUp(name string) bool {
	control, b, ok := k.lookup(name)
	if !ok {
		return false
	}
	key, button, ok := keyFor(control, b)
	if !ok {
		return false
	}
	if inpututil.IsKeyJustReleased(key) {
		return true
	}
	if id, ok := gamepad(b); ok {
		return inpututil.IsStandardGamepadButtonJustReleased(id, button)
	}
	return false
}

func keyFor(control string, b Binding) (ebiten.Key, ebiten.StandardGamepadButton, bool) {
	switch control {
	case system.ControlJump:
		return b.Jump, ebiten.StandardGamepadButtonRightBottom, true
	case system.ControlDown:
		return b.Down, ebiten.StandardGamepadButtonLeftBottom, true
	case system.ControlInteract:
		return b.Interact, ebiten.StandardGamepadButtonRightLeft, true
	case system.ControlSpecial:
		return b.Special, ebiten.StandardGamepadButtonRightTop, true
	default:
		return 0, 0, false
	}
}

func gamepad(b Binding) (ebiten.GamepadID, bool) {
	if b.Gamepad < 0 {
		return 0, false
	}
	ids := ebiten.AppendGamepadIDs(nil)
	if b.Gamepad >= len(ids) {
		return 0, false
	}
	return ids[b.Gamepad], true
}
