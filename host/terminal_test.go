// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/spotlight"
)

func useSimulationScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	orig := newScreen
	newScreen = func() (tcell.Screen, error) { return s, nil }
	t.Cleanup(func() { newScreen = orig })
	return s
}

func TestFit(t *testing.T) {
	tests := []struct {
		name       string
		src        image.Rectangle
		cols, rows int
		want       image.Rectangle
	}{
		{"square in wide terminal", image.Rect(0, 0, 400, 400), 80, 25, image.Rect(15, 0, 65, 50)},
		{"wide image", image.Rect(0, 0, 400, 200), 80, 25, image.Rect(0, 4, 80, 44)},
		{"odd height rounds down", image.Rect(0, 0, 10, 7), 10, 10, image.Rect(0, 6, 10, 12)},
		{"no columns", image.Rect(0, 0, 10, 10), 0, 25, image.Rectangle{}},
		{"empty image", image.Rectangle{}, 80, 25, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fit(tt.src, tt.cols, tt.rows); got != tt.want {
				t.Errorf("fit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuitKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModShift), true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), false},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quitKey(tt.ev); got != tt.want {
				t.Errorf("quitKey(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestCellColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	if got, want := cellColor(img, 1, 1), tcell.NewRGBColor(10, 20, 30); got != want {
		t.Errorf("cellColor() = %v, want %v", got, want)
	}
}

func TestRunTerminalDuration(t *testing.T) {
	useSimulationScreen(t)

	cfg := DefaultConfig()
	cfg.Mode = ModeTerm
	cfg.Backend = "recording"
	cfg.Duration = 150 * time.Millisecond

	st, err := RunStats(context.Background(), spotlight.New(), cfg)
	if err != nil {
		t.Fatalf("RunStats() error = %v", err)
	}
	if st.Frames < 1 {
		t.Errorf("Frames = %d, want at least 1", st.Frames)
	}
	if st.Failed != 0 {
		t.Errorf("Failed = %d, want 0", st.Failed)
	}
}

func TestRunTerminalCanceled(t *testing.T) {
	useSimulationScreen(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	cfg := DefaultConfig()
	cfg.Mode = ModeTerm
	cfg.Backend = "software"
	cfg.Width, cfg.Height = 40, 40

	done := make(chan error, 1)
	go func() { done <- Run(ctx, spotlight.New(), cfg) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("terminal run did not stop on cancel")
	}
}

func TestPresenterDrawsHalfBlocks(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(20, 10)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	p := &presenter{screen: s}
	p.present(img)

	if p.scaled == nil {
		t.Fatal("present() did not scale the frame")
	}
	if got, want := p.scaled.Bounds(), fit(img.Bounds(), 20, 10); got != want {
		t.Errorf("scaled bounds = %v, want %v", got, want)
	}
}
