package text

import (
	"image"
	"testing"

	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// image2 is shorthand for image.Rect in table tests.
func image2(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rect(x0, y0, x1, y1)
}

func pt(x, y int) fixed.Point26_6 {
	return fixed.P(x, y)
}

func TestOutlineOp_String(t *testing.T) {
	tests := []struct {
		op   OutlineOp
		want string
	}{
		{OutlineOpMoveTo, "MoveTo"},
		{OutlineOpLineTo, "LineTo"},
		{OutlineOpQuadTo, "QuadTo"},
		{OutlineOpCubicTo, "CubicTo"},
		{OutlineOp(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("OutlineOp(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestOutline_Bounds(t *testing.T) {
	// Unused point slots must not contribute.
	outline := Outline{
		{Op: OutlineOpMoveTo, Points: [3]fixed.Point26_6{pt(1, -8), pt(100, 100), pt(100, 100)}},
		{Op: OutlineOpLineTo, Points: [3]fixed.Point26_6{pt(5, -8)}},
		{Op: OutlineOpQuadTo, Points: [3]fixed.Point26_6{pt(7, -4), pt(5, 0), pt(-50, -50)}},
		{Op: OutlineOpCubicTo, Points: [3]fixed.Point26_6{pt(3, 2), pt(1, 1), pt(1, -8)}},
	}

	got := outline.Bounds()
	want := fixed.Rectangle26_6{Min: pt(1, -8), Max: pt(7, 2)}
	if got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}

	if (Outline{}).Bounds() != (fixed.Rectangle26_6{}) {
		t.Error("empty outline should have empty bounds")
	}
}

func TestRasterizeOutline_Square(t *testing.T) {
	// 4x4 pixel square from (1,-6) to (5,-2).
	outline := Outline{
		{Op: OutlineOpMoveTo, Points: [3]fixed.Point26_6{pt(1, -6)}},
		{Op: OutlineOpLineTo, Points: [3]fixed.Point26_6{pt(5, -6)}},
		{Op: OutlineOpLineTo, Points: [3]fixed.Point26_6{pt(5, -2)}},
		{Op: OutlineOpLineTo, Points: [3]fixed.Point26_6{pt(1, -2)}},
	}

	bounds, mask := rasterizeOutline(vector.NewRasterizer(0, 0), outline)
	if bounds != image2(1, -6, 5, -2) {
		t.Fatalf("bounds = %v, want (1,-6)-(5,-2)", bounds)
	}
	if mask.Bounds() != image2(0, 0, 4, 4) {
		t.Fatalf("mask bounds = %v, want 4x4 at origin", mask.Bounds())
	}
	for i, a := range mask.Pix {
		if a != 0xff {
			t.Fatalf("pixel %d coverage = %d, want 255 for a pixel-aligned square", i, a)
		}
	}
}

func TestRasterizeOutline_Empty(t *testing.T) {
	bounds, mask := rasterizeOutline(vector.NewRasterizer(0, 0), nil)
	if !bounds.Empty() {
		t.Errorf("bounds = %v, want empty", bounds)
	}
	if mask == nil || !mask.Bounds().Empty() {
		t.Errorf("expected empty non-nil mask, got %v", mask)
	}
}
