package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"raycam/common"
)

// Mode selects the native camera behavior applied by UpdateCamera.
// Values are numerically identical to the native library's camera-mode enum.
type Mode int32

const (
	// ModeCustom leaves motion to the Rig's control bindings: UpdateCamera
	// samples the bound keys/buttons and feeds the deltas to the native
	// library's parametric update.
	ModeCustom Mode = 0
	// ModeFree is the native free camera (mouse-look plus keyboard movement).
	ModeFree Mode = 1
	// ModeOrbital is the native orbital camera (automatic rotation around target).
	ModeOrbital Mode = 2
	// ModeFirstPerson is the native first-person camera.
	ModeFirstPerson Mode = 3
	// ModeThirdPerson is the native third-person camera.
	ModeThirdPerson Mode = 4
)

// rigImpl is the single implementation of Rig.
// Not safe for concurrent use: a Rig belongs to the thread that owns the
// native window and input loop, which is single-threaded.
type rigImpl struct {
	mode Mode

	// Control bindings (native key/button codes).
	panControl        int32 // mouse button combined with mouse movement
	altControl        int32 // key enabling mouse-look
	smoothZoomControl int32 // key scaling wheel zoom down

	moveFront int32
	moveBack  int32
	moveRight int32
	moveLeft  int32
	moveUp    int32
	moveDown  int32

	// Speed settings for the custom-mode delta assembly.
	moveSpeed        float32 // world units per second
	mouseSensitivity float32 // degrees per pixel of mouse movement
	zoomSpeed        float32 // world units per wheel step
}

// Rig holds the camera mode and control-binding state the native camera module
// is configured with. It performs no camera math of its own: every setter is a
// plain store, and UpdateCamera forwards the state to the native library.
type Rig interface {
	// Mode returns the selected camera mode.
	//
	// Returns:
	//   - Mode: the current mode
	Mode() Mode

	// SetMode selects the camera mode used by subsequent updates.
	//
	// Parameters:
	//   - mode: the mode to select
	SetMode(mode Mode)

	// PanControl returns the mouse-button code bound to camera panning.
	//
	// Returns:
	//   - int32: the native mouse-button code
	PanControl() int32

	// SetPanControl binds the mouse button combined with mouse movement for
	// panning (free camera).
	//
	// Parameters:
	//   - button: the native mouse-button code
	SetPanControl(button int32)

	// AltControl returns the key code bound to mouse-look.
	//
	// Returns:
	//   - int32: the native key code
	AltControl() int32

	// SetAltControl binds the key that enables mouse-look while held
	// (free camera).
	//
	// Parameters:
	//   - key: the native key code
	SetAltControl(key int32)

	// SmoothZoomControl returns the key code bound to smooth zoom.
	//
	// Returns:
	//   - int32: the native key code
	SmoothZoomControl() int32

	// SetSmoothZoomControl binds the key that scales wheel zoom down while
	// held (free camera).
	//
	// Parameters:
	//   - key: the native key code
	SetSmoothZoomControl(key int32)

	// MoveControls returns the six movement key codes.
	//
	// Returns:
	//   - front, back, right, left, up, down: the native key codes
	MoveControls() (front, back, right, left, up, down int32)

	// SetMoveControls binds the movement keys (first-person and third-person
	// cameras, and custom-mode movement).
	//
	// Parameters:
	//   - front, back, right, left, up, down: the native key codes
	SetMoveControls(front, back, right, left, up, down int32)

	// MoveSpeed returns the movement speed in world units per second.
	//
	// Returns:
	//   - float32: the movement speed
	MoveSpeed() float32

	// SetMoveSpeed sets the movement speed in world units per second.
	//
	// Parameters:
	//   - speed: the movement speed
	SetMoveSpeed(speed float32)

	// MouseSensitivity returns the mouse-look sensitivity in degrees per pixel.
	//
	// Returns:
	//   - float32: the sensitivity
	MouseSensitivity() float32

	// SetMouseSensitivity sets the mouse-look sensitivity in degrees per pixel.
	//
	// Parameters:
	//   - sensitivity: the sensitivity
	SetMouseSensitivity(sensitivity float32)

	// ZoomSpeed returns the zoom speed in world units per wheel step.
	//
	// Returns:
	//   - float32: the zoom speed
	ZoomSpeed() float32

	// SetZoomSpeed sets the zoom speed in world units per wheel step.
	//
	// Parameters:
	//   - speed: the zoom speed
	SetZoomSpeed(speed float32)

	// controlDeltas samples the bound controls through the native input API
	// and assembles the movement/rotation/zoom deltas for the parametric
	// native update. Only used in ModeCustom.
	controlDeltas() (movement, rotation rl.Vector3, zoom float32)
}

var _ Rig = &rigImpl{}

// NewRig creates a Rig with the native camera module's classic defaults:
// middle mouse pan, left-alt mouse-look, left-control smooth zoom, and
// W/S/D/A/E/Q movement.
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewRig(options ...RigOption) Rig {
	r := &rigImpl{
		mode: ModeFree,

		panControl:        common.MouseButtonMiddle,
		altControl:        common.KeyLeftAlt,
		smoothZoomControl: common.KeyLeftControl,

		moveFront: common.KeyW,
		moveBack:  common.KeyS,
		moveRight: common.KeyD,
		moveLeft:  common.KeyA,
		moveUp:    common.KeyE,
		moveDown:  common.KeyQ,

		moveSpeed:        5.4,
		mouseSensitivity: 0.05,
		zoomSpeed:        2.0,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *rigImpl) Mode() Mode {
	return r.mode
}

func (r *rigImpl) SetMode(mode Mode) {
	r.mode = mode
}

func (r *rigImpl) PanControl() int32 {
	return r.panControl
}

func (r *rigImpl) SetPanControl(button int32) {
	r.panControl = button
}

func (r *rigImpl) AltControl() int32 {
	return r.altControl
}

func (r *rigImpl) SetAltControl(key int32) {
	r.altControl = key
}

func (r *rigImpl) SmoothZoomControl() int32 {
	return r.smoothZoomControl
}

func (r *rigImpl) SetSmoothZoomControl(key int32) {
	r.smoothZoomControl = key
}

func (r *rigImpl) MoveControls() (front, back, right, left, up, down int32) {
	return r.moveFront, r.moveBack, r.moveRight, r.moveLeft, r.moveUp, r.moveDown
}

func (r *rigImpl) SetMoveControls(front, back, right, left, up, down int32) {
	r.moveFront = front
	r.moveBack = back
	r.moveRight = right
	r.moveLeft = left
	r.moveUp = up
	r.moveDown = down
}

func (r *rigImpl) MoveSpeed() float32 {
	return r.moveSpeed
}

func (r *rigImpl) SetMoveSpeed(speed float32) {
	r.moveSpeed = speed
}

func (r *rigImpl) MouseSensitivity() float32 {
	return r.mouseSensitivity
}

func (r *rigImpl) SetMouseSensitivity(sensitivity float32) {
	r.mouseSensitivity = sensitivity
}

func (r *rigImpl) ZoomSpeed() float32 {
	return r.zoomSpeed
}

func (r *rigImpl) SetZoomSpeed(speed float32) {
	r.zoomSpeed = speed
}
