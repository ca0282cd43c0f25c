package spotlight

import "testing"

func TestNewShapeDefaults(t *testing.T) {
	s := NewShape()
	if s.Opacity() != 255 {
		t.Errorf("Opacity() = %d, want 255", s.Opacity())
	}
	if s.Fill() != nil {
		t.Errorf("Fill() = %v, want nil", s.Fill())
	}
	if m, method := s.Mask(); m != nil || method != MaskNone {
		t.Errorf("Mask() = %v, %v; want nil, none", m, method)
	}
	if s.Path().Len() != 0 {
		t.Errorf("Path().Len() = %d, want 0", s.Path().Len())
	}
}

func TestShapeBuilder(t *testing.T) {
	s := NewShape().
		MoveTo(0, 0).
		LineTo(10, 0).
		CubicTo(10, 5, 5, 10, 0, 10).
		Close().
		SetColor(1, 2, 3).
		SetOpacity(40)

	if s.Path().Len() != 4 {
		t.Errorf("Path().Len() = %d, want 4", s.Path().Len())
	}
	if f, ok := s.Fill().(SolidFill); !ok || f.Color != RGB(1, 2, 3) {
		t.Errorf("Fill() = %v, want solid #010203ff", s.Fill())
	}
	if s.Opacity() != 40 {
		t.Errorf("Opacity() = %d, want 40", s.Opacity())
	}
}

func TestSetMask(t *testing.T) {
	s := NewShape()
	m := NewShape().AppendCircle(0, 0, 1, 1)

	tests := []struct {
		name       string
		mask       *Shape
		method     MaskMethod
		wantMask   *Shape
		wantMethod MaskMethod
	}{
		{"alpha", m, MaskAlpha, m, MaskAlpha},
		{"inverse", m, MaskInverseAlpha, m, MaskInverseAlpha},
		{"nil mask", nil, MaskAlpha, nil, MaskNone},
		{"method none", m, MaskNone, nil, MaskNone},
		{"self", s, MaskAlpha, nil, MaskNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetMask(m, MaskAlpha)
			s.SetMask(tt.mask, tt.method)
			gotMask, gotMethod := s.Mask()
			if gotMask != tt.wantMask || gotMethod != tt.wantMethod {
				t.Errorf("Mask() = %p, %v; want %p, %v", gotMask, gotMethod, tt.wantMask, tt.wantMethod)
			}
		})
	}
}
