package common

// Key codes for camera control bindings.
// These values match the native library's key codes, which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/gen2brain/raylib-go/raylib#pkg-constants
const (
	KeyW = 87 // W key (ASCII)
	KeyA = 65 // A key (ASCII)
	KeyS = 83 // S key (ASCII)
	KeyD = 68 // D key (ASCII)
	KeyQ = 81 // Q key (ASCII)
	KeyE = 69 // E key (ASCII)
	KeyR = 82 // R key (ASCII)
	KeyF = 70 // F key (ASCII)
	KeyC = 67 // C key (ASCII)
	KeyX = 88 // X key (ASCII)
	KeyZ = 90 // Z key (ASCII)

	KeySpace     = 32  // Spacebar (ASCII)
	KeyEsc       = 256 // Escape key
	KeyEnter     = 257 // Enter key
	KeyTab       = 258 // Tab key
	KeyBackspace = 259 // Backspace key

	KeyRight = 262 // Right arrow
	KeyLeft  = 263 // Left arrow
	KeyDown  = 264 // Down arrow
	KeyUp    = 265 // Up arrow

	Key0 = 48 // 0 key (ASCII)
	Key1 = 49 // 1 key (ASCII)
	Key2 = 50 // 2 key (ASCII)
	Key3 = 51 // 3 key (ASCII)
	Key4 = 52 // 4 key (ASCII)
	Key5 = 53 // 5 key (ASCII)
	Key6 = 54 // 6 key (ASCII)
	Key7 = 55 // 7 key (ASCII)
	Key8 = 56 // 8 key (ASCII)
	Key9 = 57 // 9 key (ASCII)
)

// Additional non-printable keys
const (
	KeyLeftShift    = 340 // Left Shift
	KeyLeftControl  = 341 // Left Control
	KeyLeftAlt      = 342 // Left Alt
	KeyRightShift   = 344 // Right Shift
	KeyRightControl = 345 // Right Control
	KeyRightAlt     = 346 // Right Alt
)

// Mouse button codes. The pan control binding is a mouse button combined with
// mouse movement, so it shares the int32 code space with the keys above.
const (
	MouseButtonLeft   = 0 // Left mouse button
	MouseButtonRight  = 1 // Right mouse button
	MouseButtonMiddle = 2 // Middle mouse button
)
