package engine

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/giterate/common"
	"github.com/Carmen-Shannon/giterate/engine/camera"
	"github.com/Carmen-Shannon/giterate/engine/immediate"
	"github.com/Carmen-Shannon/giterate/engine/sandbox"
	"github.com/go-gl/mathgl/mgl32"
)

// countingSandbox draws one point per frame and records how it was driven.
type countingSandbox struct {
	inits      int
	draws      int
	leakColors bool
}

var _ sandbox.Sandbox = &countingSandbox{}

func (s *countingSandbox) Name() string { return "counting" }
func (s *countingSandbox) Init()        { s.inits++ }

func (s *countingSandbox) Draw(dt float32, d immediate.Drawer) {
	s.draws++
	if s.leakColors {
		d.PushColor(common.Green)
	}
	d.DrawPoint(mgl32.Vec3{})
}

func TestRunStopsAtFrameLimit(t *testing.T) {
	s := &countingSandbox{}
	var presented []int
	e := NewEngine(s,
		WithTickRate(1000),
		WithMaxFrames(3),
		WithPresenter(func(f *immediate.Frame, _ camera.Camera, _ float32) error {
			presented = append(presented, f.Primitives())
			return nil
		}),
	)

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.inits != 1 || s.draws != 3 || e.Frames() != 3 {
		t.Errorf("inits/draws/frames = %d/%d/%d, want 1/3/3", s.inits, s.draws, e.Frames())
	}
	// three axis lines plus the sandbox point, every frame, because Reset clears the lists
	for i, n := range presented {
		if n != 4 {
			t.Errorf("frame %d presented %d primitives, want 4", i, n)
		}
	}
}

func TestStepWithoutAxes(t *testing.T) {
	s := &countingSandbox{}
	e := NewEngine(s, WithAxes(false))
	if err := e.Step(0.016); err != nil {
		t.Fatal(err)
	}
	f := e.Renderer().Frame()
	if len(f.Lines) != 0 || len(f.Points) != 1 {
		t.Errorf("frame = %d lines / %d points, want 0 / 1", len(f.Lines), len(f.Points))
	}
	if s.inits != 1 {
		t.Errorf("Step initialized the sandbox %d times, want 1", s.inits)
	}
}

func TestAxesColors(t *testing.T) {
	e := NewEngine(&countingSandbox{})
	if err := e.Step(0); err != nil {
		t.Fatal(err)
	}
	lines := e.Renderer().Frame().Lines
	want := []mgl32.Vec4{common.Red, common.Green, common.Blue}
	for i, c := range want {
		if lines[i][1].Color != c || lines[i][1].Pos.Len() != axisLength {
			t.Errorf("axis %d = %+v, want color %v and length %d", i, lines[i][1], c, axisLength)
		}
	}
}

func TestRunStopsOnQuitAndCancel(t *testing.T) {
	t.Run("quit", func(t *testing.T) {
		e := NewEngine(&countingSandbox{}, WithTickRate(1000))
		e.SetTickCallback(func(float32) {
			if e.Frames() == 4 {
				e.Quit()
			}
		})
		done := make(chan error, 1)
		go func() { done <- e.Run(context.Background()) }()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Run: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("Run did not return after Quit")
		}
		e.Quit()
	})

	t.Run("cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		e := NewEngine(&countingSandbox{}, WithTickRate(1000), WithTickCallback(func(float32) { cancel() }))
		if err := e.Run(ctx); err != nil {
			t.Errorf("Run: %v", err)
		}
		if e.Frames() == 0 {
			t.Error("no frame ran before the cancel")
		}
	})
}

func TestRunReturnsPresenterError(t *testing.T) {
	boom := errors.New("disk full")
	e := NewEngine(&countingSandbox{},
		WithTickRate(1000),
		WithPresenter(func(*immediate.Frame, camera.Camera, float32) error { return boom }),
	)
	err := e.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("Run error = %v, want it to wrap %v", err, boom)
	}
	if e.Frames() != 0 {
		t.Errorf("Frames = %d after a failed present, want 0", e.Frames())
	}
}

func TestUnbalancedStacksAreWarned(t *testing.T) {
	var buf bytes.Buffer
	common.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { common.SetLogger(nil) })

	e := NewEngine(&countingSandbox{leakColors: true})
	for i := 0; i < 2; i++ {
		if err := e.Step(0); err != nil {
			t.Fatal(err)
		}
	}
	if n := strings.Count(buf.String(), "unbalanced draw stacks"); n != 2 {
		t.Errorf("logged %d warnings, want 2:\n%s", n, buf.String())
	}
	if e.Renderer().ColorDepth() != 2 {
		t.Errorf("ColorDepth = %d, want the leak of this frame only", e.Renderer().ColorDepth())
	}
}

func TestSetTickRateWhileStopped(t *testing.T) {
	e := NewEngine(&countingSandbox{}, WithMaxFrames(2))
	e.SetTickRate(1000)
	e.SetTickRate(2000)
	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if e.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", e.Frames())
	}
}

func TestEngineWithRealSandboxes(t *testing.T) {
	for _, name := range sandbox.Names() {
		t.Run(name, func(t *testing.T) {
			s, err := sandbox.New(name)
			if err != nil {
				t.Fatal(err)
			}
			e := NewEngine(s, WithProfiling(true))
			if err := e.Step(1.0 / 60); err != nil {
				t.Fatal(err)
			}
			if !e.Renderer().Balanced() {
				t.Error("sandbox left the stacks unbalanced")
			}
			if e.Renderer().Frame().Primitives() <= 3 {
				t.Error("sandbox drew nothing")
			}
		})
	}
}
