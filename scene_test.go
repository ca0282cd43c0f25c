package spotlight

import (
	"math"
	"testing"
	"time"
)

func TestNewStar(t *testing.T) {
	s := NewStar()
	p := s.Path()

	if got := p.Contours(); got != 1 {
		t.Errorf("Contours() = %d, want 1", got)
	}
	if !p.Closed() {
		t.Error("star outline should be closed")
	}
	v := p.Vertices()
	if len(v) != 10 {
		t.Fatalf("star has %d vertices, want 10", len(v))
	}
	for i, pt := range v {
		if pt != StarPoints[i] {
			t.Errorf("vertex %d = %v, want %v", i, pt, StarPoints[i])
		}
	}
	if s.Fill() != nil {
		t.Errorf("NewStar() fill = %v, want nil", s.Fill())
	}
	if s.Opacity() != 255 {
		t.Errorf("NewStar() opacity = %d, want 255", s.Opacity())
	}
}

func TestStarBounds(t *testing.T) {
	lo, hi := NewStar().Path().Bounds()
	if lo != Pt(26, 34) || hi != Pt(374, 365) {
		t.Errorf("star bounds = %v-%v, want (26,34)-(374,365)", lo, hi)
	}
}

func TestNewMaskCircle(t *testing.T) {
	for _, elapsed := range []time.Duration{0, 400 * time.Millisecond, 2 * time.Second} {
		center := Animate(elapsed).MaskCenter
		m := NewMaskCircle(center)

		lo, hi := m.Path().Bounds()
		if w := hi.X - lo.X; math.Abs(w-2*MaskRadius) > 1e-9 {
			t.Errorf("mask width = %v, want %v", w, 2*MaskRadius)
		}
		if h := hi.Y - lo.Y; math.Abs(h-2*MaskRadius) > 1e-9 {
			t.Errorf("mask height = %v, want %v", h, 2*MaskRadius)
		}
		mid := Pt((lo.X+hi.X)/2, (lo.Y+hi.Y)/2)
		if mid.Distance(center) > 1e-9 {
			t.Errorf("mask centered at %v, want %v", mid, center)
		}

		f, ok := m.Fill().(SolidFill)
		if !ok || f.Color != White {
			t.Errorf("mask fill = %v, want solid white", m.Fill())
		}
		if m.Opacity() != 255 {
			t.Errorf("mask opacity = %d, want 255", m.Opacity())
		}
	}
}

func TestNewStarGradient(t *testing.T) {
	stops := Animate(0).Stops
	g := NewStarGradient(stops)

	if g.Start != Pt(100, 34) || g.End != Pt(300, 365) {
		t.Errorf("gradient line = %v-%v, want (100,34)-(300,365)", g.Start, g.End)
	}
	got := g.ColorStops()
	if len(got) != 3 {
		t.Fatalf("got %d stops, want 3", len(got))
	}
	for i, s := range got {
		if s != stops[i] {
			t.Errorf("stop %d = %v, want %v", i, s, stops[i])
		}
	}
}
