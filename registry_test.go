package spotlight

import (
	"errors"
	"image"
	"slices"
	"strings"
	"testing"
)

type stubCanvas struct{ w, h int }

func (stubCanvas) Clear() error { return nil }
func (stubCanvas) Push(*Shape) error { return nil }
func (stubCanvas) Draw() error { return nil }
func (c stubCanvas) Image() *image.RGBA { return image.NewRGBA(image.Rect(0, 0, c.w, c.h)) }
func (c stubCanvas) Size() (int, int) { return c.w, c.h }
func (stubCanvas) Close() error { return nil }

func stubFactory(o CanvasOptions) (RenderCanvas, error) {
	return stubCanvas{o.Width, o.Height}, nil
}

func TestRegisterAndNewCanvas(t *testing.T) {
	Register("test-stub", stubFactory)
	defer Unregister("test-stub")

	if !IsRegistered("test-stub") {
		t.Fatal("IsRegistered() = false after Register")
	}
	if !slices.Contains(Backends(), "test-stub") {
		t.Errorf("Backends() = %v, missing test-stub", Backends())
	}

	c, err := NewCanvas("test-stub", CanvasOptions{Width: 3, Height: 2})
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	if w, h := c.Size(); w != 3 || h != 2 {
		t.Errorf("Size() = %dx%d, want 3x2", w, h)
	}
}

func TestUnregister(t *testing.T) {
	Register("test-gone", stubFactory)
	Unregister("test-gone")
	Unregister("test-never")

	if IsRegistered("test-gone") {
		t.Error("IsRegistered() = true after Unregister")
	}
}

func TestNewCanvasUnknown(t *testing.T) {
	_, err := NewCanvas("no-such-backend", CanvasOptions{Width: 1, Height: 1})
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("error = %v, want ErrUnknownBackend", err)
	}
	if !strings.Contains(err.Error(), "forgotten import") {
		t.Errorf("error %q should hint at a missing import", err)
	}
}

func TestNewCanvasInvalidSize(t *testing.T) {
	Register("test-size", stubFactory)
	defer Unregister("test-size")

	for _, o := range []CanvasOptions{{Width: 0, Height: 1}, {Width: 1, Height: -1}} {
		if _, err := NewCanvas("test-size", o); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewCanvas(%dx%d) error = %v, want ErrInvalidSize", o.Width, o.Height, err)
		}
	}
}

func TestNewCanvasFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("test-fail", func(CanvasOptions) (RenderCanvas, error) { return nil, boom })
	defer Unregister("test-fail")

	_, err := NewCanvas("test-fail", CanvasOptions{Width: 1, Height: 1})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped factory error", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("test-dup", stubFactory)
	defer Unregister("test-dup")

	tests := []struct {
		name    string
		factory Factory
		key     string
	}{
		{"nil factory", nil, "test-nil"},
		{"duplicate", stubFactory, "test-dup"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() did not panic")
				}
			}()
			Register(tt.key, tt.factory)
		})
	}
}
