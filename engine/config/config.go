// Package config loads and saves camera control-binding profiles as YAML and
// applies them to a camera.Rig. Key and button names are resolved to native
// codes here; unknown names are errors rather than silent fallbacks.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"raycam/common"
	"raycam/engine/camera"
)

// MoveBindings names the six movement keys.
type MoveBindings struct {
	Front string `yaml:"front"`
	Back  string `yaml:"back"`
	Right string `yaml:"right"`
	Left  string `yaml:"left"`
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
}

// Bindings is a camera control profile. Empty fields leave the rig's current
// binding untouched when applied.
type Bindings struct {
	Mode       string       `yaml:"mode"`
	Pan        string       `yaml:"pan"`
	Alt        string       `yaml:"alt"`
	SmoothZoom string       `yaml:"smooth-zoom"`
	Move       MoveBindings `yaml:"move"`
}

// keyNames maps profile key names to native key codes.
var keyNames = map[string]int32{
	"w": common.KeyW,
	"a": common.KeyA,
	"s": common.KeyS,
	"d": common.KeyD,
	"q": common.KeyQ,
	"e": common.KeyE,
	"r": common.KeyR,
	"f": common.KeyF,
	"c": common.KeyC,
	"x": common.KeyX,
	"z": common.KeyZ,

	"space":     common.KeySpace,
	"escape":    common.KeyEsc,
	"enter":     common.KeyEnter,
	"tab":       common.KeyTab,
	"backspace": common.KeyBackspace,

	"right": common.KeyRight,
	"left":  common.KeyLeft,
	"down":  common.KeyDown,
	"up":    common.KeyUp,

	"left-shift":    common.KeyLeftShift,
	"left-control":  common.KeyLeftControl,
	"left-alt":      common.KeyLeftAlt,
	"right-shift":   common.KeyRightShift,
	"right-control": common.KeyRightControl,
	"right-alt":     common.KeyRightAlt,
}

// buttonNames maps profile button names to native mouse-button codes.
var buttonNames = map[string]int32{
	"mouse-left":   common.MouseButtonLeft,
	"mouse-right":  common.MouseButtonRight,
	"mouse-middle": common.MouseButtonMiddle,
}

// modeNames maps profile mode names to camera modes.
var modeNames = map[string]camera.Mode{
	"custom":       camera.ModeCustom,
	"free":         camera.ModeFree,
	"orbital":      camera.ModeOrbital,
	"first-person": camera.ModeFirstPerson,
	"third-person": camera.ModeThirdPerson,
}

// Load reads a bindings profile from a YAML file.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - *Bindings: the parsed profile
//   - error: error if the file cannot be read or parsed
func Load(path string) (*Bindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bindings file: %w", err)
	}
	var b Bindings
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse bindings file %s: %w", path, err)
	}
	return &b, nil
}

// Save writes the bindings profile to a YAML file.
//
// Parameters:
//   - path: the file to write
//
// Returns:
//   - error: error if the profile cannot be serialized or written
func (b *Bindings) Save(path string) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to serialize bindings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write bindings file %s: %w", path, err)
	}
	return nil
}

// Apply resolves the profile's names to native codes and stores them on the
// rig through its control setters. Empty fields keep the rig's current
// binding. The rig is not modified when an error is returned.
//
// Parameters:
//   - r: the rig to configure
//
// Returns:
//   - error: error if any name does not resolve
func (b *Bindings) Apply(r camera.Rig) error {
	mode := r.Mode()
	if b.Mode != "" {
		m, ok := modeNames[b.Mode]
		if !ok {
			return fmt.Errorf("unknown camera mode %q", b.Mode)
		}
		mode = m
	}

	pan := r.PanControl()
	if b.Pan != "" {
		code, ok := buttonNames[b.Pan]
		if !ok {
			return fmt.Errorf("unknown mouse button name %q", b.Pan)
		}
		pan = code
	}

	alt, err := resolveKey(b.Alt, r.AltControl())
	if err != nil {
		return err
	}
	smoothZoom, err := resolveKey(b.SmoothZoom, r.SmoothZoomControl())
	if err != nil {
		return err
	}

	curFront, curBack, curRight, curLeft, curUp, curDown := r.MoveControls()
	names := []string{b.Move.Front, b.Move.Back, b.Move.Right, b.Move.Left, b.Move.Up, b.Move.Down}
	current := []int32{curFront, curBack, curRight, curLeft, curUp, curDown}
	move := make([]int32, len(names))
	for i, name := range names {
		code, err := resolveKey(name, 0)
		if err != nil {
			return err
		}
		// Key codes are non-zero, so an unset name falls back to the
		// current binding.
		move[i] = common.Coalesce(code, current[i])
	}

	r.SetMode(mode)
	r.SetPanControl(pan)
	r.SetAltControl(alt)
	r.SetSmoothZoomControl(smoothZoom)
	r.SetMoveControls(move[0], move[1], move[2], move[3], move[4], move[5])
	return nil
}

// resolveKey maps a profile key name to its native code, returning fallback
// for the empty name.
func resolveKey(name string, fallback int32) (int32, error) {
	if name == "" {
		return fallback, nil
	}
	code, ok := keyNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown key name %q", name)
	}
	return code, nil
}

// Snapshot captures the rig's current mode and bindings as a profile that can
// be saved and later re-applied. Codes without a profile name (custom codes
// set directly on the rig) are left empty.
//
// Parameters:
//   - r: the rig to capture
//
// Returns:
//   - *Bindings: the captured profile
func Snapshot(r camera.Rig) *Bindings {
	front, back, right, left, up, down := r.MoveControls()
	return &Bindings{
		Mode:       nameForMode(r.Mode()),
		Pan:        nameFor(buttonNames, r.PanControl()),
		Alt:        nameFor(keyNames, r.AltControl()),
		SmoothZoom: nameFor(keyNames, r.SmoothZoomControl()),
		Move: MoveBindings{
			Front: nameFor(keyNames, front),
			Back:  nameFor(keyNames, back),
			Right: nameFor(keyNames, right),
			Left:  nameFor(keyNames, left),
			Up:    nameFor(keyNames, up),
			Down:  nameFor(keyNames, down),
		},
	}
}

func nameFor(table map[string]int32, code int32) string {
	for name, c := range table {
		if c == code {
			return name
		}
	}
	return ""
}

func nameForMode(mode camera.Mode) string {
	for name, m := range modeNames {
		if m == mode {
			return name
		}
	}
	return ""
}
