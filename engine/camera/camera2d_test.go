package camera

import (
	"testing"

	"raycam/common"
)

func TestNewCamera2DPassesFieldsThrough(t *testing.T) {
	offset := common.NewVector2[float32](640, 360)
	target := common.NewVector2[float32](100, 50)

	c := NewCamera2D(offset, target, 15, 2)
	if c.Offset != offset || c.Target != target {
		t.Fatal("factory modified vector arguments")
	}
	if c.Rotation != 15 || c.Zoom != 2 {
		t.Fatalf("unexpected rotation/zoom: %v/%v", c.Rotation, c.Zoom)
	}
}

func TestCamera2DNativeRoundTripFloat32(t *testing.T) {
	c := NewCamera2D(
		common.NewVector2[float32](400, 225),
		common.NewVector2[float32](-12.5, 3.25),
		90,
		0.5,
	)
	got := Camera2DFromNative[float32](c.Native())
	if got != c {
		t.Fatalf("round trip changed camera: got %+v, want %+v", got, c)
	}
}

func TestCamera2DNativeRoundTripFloat64(t *testing.T) {
	c := NewCamera2D(
		common.NewVector2(128.0, 64.0),
		common.NewVector2(-4.5, 0.25),
		0,
		1,
	)
	got := Camera2DFromNative[float64](c.Native())
	if got != c {
		t.Fatalf("round trip changed camera: got %+v, want %+v", got, c)
	}
}

func TestCamera2DPan(t *testing.T) {
	c := NewCamera2D(
		common.NewVector2[float32](0, 0),
		common.NewVector2[float32](10, 10),
		0,
		2,
	)
	// Dragging 4 pixels right and 8 down at zoom 2 moves the target 2 and 4
	// world units the other way.
	c.Pan(common.NewVector2[float32](4, 8))
	if c.Target.X != 8 || c.Target.Y != 6 {
		t.Fatalf("unexpected target after pan: %+v", c.Target)
	}
}

func TestCamera2DZoomAtClampsZoom(t *testing.T) {
	c := NewCamera2D(
		common.NewVector2[float32](0, 0),
		common.NewVector2[float32](0, 0),
		0,
		4,
	)
	c.ZoomAt(common.NewVector2[float32](0, 0), 10)
	if c.Zoom != 5.0 {
		t.Fatalf("expected zoom clamped to 5.0, got %v", c.Zoom)
	}

	c.ZoomAt(common.NewVector2[float32](0, 0), 0.001)
	if c.Zoom != 0.1 {
		t.Fatalf("expected zoom clamped to 0.1, got %v", c.Zoom)
	}
}

func TestCamera2DZoomAtKeepsAnchorFixed(t *testing.T) {
	c := NewCamera2D(
		common.NewVector2[float32](100, 100),
		common.NewVector2[float32](20, -10),
		0,
		1,
	)
	anchor := common.NewVector2[float32](150, 80)
	worldBefore := c.ScreenToWorld(anchor)

	c.ZoomAt(anchor, 2)

	worldAfter := c.ScreenToWorld(anchor)
	const eps = 1e-3
	if diff(worldBefore.X, worldAfter.X) > eps || diff(worldBefore.Y, worldAfter.Y) > eps {
		t.Fatalf("anchor moved in world space: before %+v, after %+v", worldBefore, worldAfter)
	}
}

func diff(a, b float32) float32 {
	if a > b {
		return a - b
	}
	return b - a
}
