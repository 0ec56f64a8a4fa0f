package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"raycam/common"
)

func TestNewRigDefaults(t *testing.T) {
	r := NewRig()
	if r.Mode() != ModeFree {
		t.Fatalf("expected default mode free, got %d", r.Mode())
	}
	if r.PanControl() != common.MouseButtonMiddle {
		t.Fatalf("expected middle mouse pan, got %d", r.PanControl())
	}
	if r.AltControl() != common.KeyLeftAlt {
		t.Fatalf("expected left alt mouse-look, got %d", r.AltControl())
	}
	if r.SmoothZoomControl() != common.KeyLeftControl {
		t.Fatalf("expected left control smooth zoom, got %d", r.SmoothZoomControl())
	}
	front, back, right, left, up, down := r.MoveControls()
	if front != common.KeyW || back != common.KeyS || right != common.KeyD ||
		left != common.KeyA || up != common.KeyE || down != common.KeyQ {
		t.Fatalf("unexpected default move controls: %d %d %d %d %d %d",
			front, back, right, left, up, down)
	}
}

func TestRigSettersStoreCodesUninterpreted(t *testing.T) {
	r := NewRig()

	r.SetMode(ModeThirdPerson)
	r.SetPanControl(common.MouseButtonRight)
	r.SetAltControl(common.KeyLeftShift)
	r.SetSmoothZoomControl(common.KeyZ)
	r.SetMoveControls(common.KeyUp, common.KeyDown, common.KeyRight, common.KeyLeft, common.KeyR, common.KeyF)

	if r.Mode() != ModeThirdPerson {
		t.Fatalf("mode not stored: %d", r.Mode())
	}
	if r.PanControl() != common.MouseButtonRight || r.AltControl() != common.KeyLeftShift || r.SmoothZoomControl() != common.KeyZ {
		t.Fatal("control codes not stored")
	}
	front, back, right, left, up, down := r.MoveControls()
	if front != common.KeyUp || back != common.KeyDown || right != common.KeyRight ||
		left != common.KeyLeft || up != common.KeyR || down != common.KeyF {
		t.Fatal("move controls not stored")
	}
}

func TestRigOptions(t *testing.T) {
	r := NewRig(
		WithMode(ModeOrbital),
		WithPanControl(common.MouseButtonLeft),
		WithAltControl(common.KeyRightAlt),
		WithSmoothZoomControl(common.KeyRightControl),
		WithMoveControls(common.KeyW, common.KeyS, common.KeyD, common.KeyA, common.KeySpace, common.KeyC),
		WithMoveSpeed(10),
		WithMouseSensitivity(0.1),
		WithZoomSpeed(4),
	)

	if r.Mode() != ModeOrbital {
		t.Fatalf("option mode not applied: %d", r.Mode())
	}
	if r.PanControl() != common.MouseButtonLeft || r.AltControl() != common.KeyRightAlt || r.SmoothZoomControl() != common.KeyRightControl {
		t.Fatal("option control codes not applied")
	}
	_, _, _, _, up, down := r.MoveControls()
	if up != common.KeySpace || down != common.KeyC {
		t.Fatal("option move controls not applied")
	}
	if r.MoveSpeed() != 10 || r.MouseSensitivity() != 0.1 || r.ZoomSpeed() != 4 {
		t.Fatal("option speeds not applied")
	}
}

func TestModeValuesMatchNativeEnum(t *testing.T) {
	pairs := []struct {
		mode   Mode
		native rl.CameraMode
	}{
		{ModeCustom, rl.CameraCustom},
		{ModeFree, rl.CameraFree},
		{ModeOrbital, rl.CameraOrbital},
		{ModeFirstPerson, rl.CameraFirstPerson},
		{ModeThirdPerson, rl.CameraThirdPerson},
	}
	for _, p := range pairs {
		if int32(p.mode) != int32(p.native) {
			t.Fatalf("mode %d does not coerce to native value %d", p.mode, p.native)
		}
	}
}
