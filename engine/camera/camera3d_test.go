package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"raycam/common"
)

func TestPerspectiveSetsTagAndPassesFieldsThrough(t *testing.T) {
	position := common.NewVector3[float32](1, 2, 3)
	target := common.NewVector3[float32](4, 5, 6)
	up := common.NewVector3[float32](0, 1, 0)

	c := Perspective(position, target, up, 45)
	if c.Projection() != ProjectionPerspective {
		t.Fatalf("expected perspective tag, got %d", c.Projection())
	}
	if c.Position != position || c.Target != target || c.Up != up {
		t.Fatal("factory modified vector arguments")
	}
	if c.Fovy != 45 {
		t.Fatalf("expected fovy 45, got %v", c.Fovy)
	}
}

func TestOrthographicDiffersOnlyInTag(t *testing.T) {
	position := common.NewVector3[float32](1, 2, 3)
	target := common.NewVector3[float32](0, 0, 0)
	up := common.NewVector3[float32](0, 1, 0)

	p := Perspective(position, target, up, 20)
	o := Orthographic(position, target, up, 20)

	if o.Projection() != ProjectionOrthographic {
		t.Fatalf("expected orthographic tag, got %d", o.Projection())
	}
	if o.Position != p.Position || o.Target != p.Target || o.Up != p.Up || o.Fovy != p.Fovy {
		t.Fatal("orthographic factory should differ from perspective only in the tag")
	}
}

func TestFactoriesSkipValidation(t *testing.T) {
	// Degenerate up vector and out-of-range aperture pass through untouched;
	// the native library decides what to do with them.
	c := Perspective(
		common.NewVector3[float32](0, 0, 0),
		common.NewVector3[float32](0, 0, 0),
		common.NewVector3[float32](0, 0, 0),
		-500,
	)
	if c.Fovy != -500 {
		t.Fatalf("expected fovy passed through, got %v", c.Fovy)
	}
}

func TestCamera3DNativeRoundTripFloat32(t *testing.T) {
	c := Orthographic(
		common.NewVector3[float32](10.5, -0.25, 7),
		common.NewVector3[float32](0, 1.5, 0),
		common.NewVector3[float32](0, 1, 0),
		35,
	)
	got := Camera3DFromNative[float32](c.Native())
	if got != c {
		t.Fatalf("round trip changed camera: got %+v, want %+v", got, c)
	}
}

func TestCamera3DNativeRoundTripFloat64(t *testing.T) {
	// Values chosen to be exactly representable in float32, so the explicit
	// narrowing on Native() is lossless here.
	c := Perspective(
		common.NewVector3(1.5, 2.25, -3.0),
		common.NewVector3(0.0, 0.0, 0.0),
		common.NewVector3(0.0, 1.0, 0.0),
		60,
	)
	got := Camera3DFromNative[float64](c.Native())
	if got != c {
		t.Fatalf("round trip changed camera: got %+v, want %+v", got, c)
	}
}

func TestCamera3DNativeCoercesEnums(t *testing.T) {
	c := Orthographic(
		common.NewVector3[float32](0, 0, 0),
		common.NewVector3[float32](0, 0, 1),
		common.NewVector3[float32](0, 1, 0),
		10,
	)
	n := c.Native()
	if n.Projection != rl.CameraOrthographic {
		t.Fatalf("expected native orthographic enum, got %d", n.Projection)
	}
	if int32(ProjectionPerspective) != int32(rl.CameraPerspective) {
		t.Fatal("perspective tag must match the native enum value")
	}
}

func TestCameraAlias(t *testing.T) {
	var c Camera[float32] = Perspective(
		common.NewVector3[float32](0, 0, 5),
		common.NewVector3[float32](0, 0, 0),
		common.NewVector3[float32](0, 1, 0),
		45,
	)
	if c.Projection() != ProjectionPerspective {
		t.Fatal("alias should behave identically to Camera3D")
	}
}

func TestUpdateCameraPreservesProjectionTag(t *testing.T) {
	// Without a window all input queries return zero, so the custom-mode
	// update is a no-op pass through the native parametric update.
	r := NewRig(WithMode(ModeCustom))
	c := Orthographic(
		common.NewVector3[float32](0, 10, 10),
		common.NewVector3[float32](0, 0, 0),
		common.NewVector3[float32](0, 1, 0),
		20,
	)
	before := c

	UpdateCamera(r, &c)

	if c.Projection() != ProjectionOrthographic {
		t.Fatalf("update changed the projection tag: got %d", c.Projection())
	}
	// The native update re-derives position from target and distance, so
	// allow float32 rounding.
	const eps = 1e-4
	if !vecNear(c.Position, before.Position, eps) || !vecNear(c.Target, before.Target, eps) || !vecNear(c.Up, before.Up, eps) {
		t.Fatalf("zero input deltas should leave the camera unchanged: got %+v, want %+v", c, before)
	}
	if c.Fovy != before.Fovy {
		t.Fatalf("update changed fovy: got %v, want %v", c.Fovy, before.Fovy)
	}
}

func vecNear(a, b common.Vector3[float32], eps float32) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps) && near(a.Z, b.Z, eps)
}

func near(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
