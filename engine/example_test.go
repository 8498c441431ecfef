package engine_test

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/emberterm/ember/engine"
	"github.com/emberterm/ember/geom"
	"github.com/emberterm/ember/input"
	"github.com/emberterm/ember/style"
)

// wave draws a scrolling sine wave and stops after a few frames.
type wave struct {
	frames int
}

func (w *wave) Init(s *engine.State) error {
	s.SetBackground(style.Black)
	return nil
}

func (w *wave) Update(s *engine.State) error {
	size := s.Size()
	t := float64(s.ElapsedMilliseconds()) / 1000

	for x := 0; x < size.X; x++ {
		y := float64(size.Y)/2 + math.Sin(float64(x)/4+t)*float64(size.Y)/3
		s.SetColor(geom.P(x, int(y)), style.Cyan)
	}

	w.frames++
	if w.frames >= 3 {
		s.Exit()
	}
	return nil
}

func (w *wave) OnKey(s *engine.State, ev input.KeyEvent) {
	if ev.Code == input.KeySpace {
		w.frames = 0
	}
}

func ExampleRun() {
	var out bytes.Buffer

	err := engine.Run(&wave{}, engine.Config{
		FrameInterval: time.Millisecond,
		Output:        &out,
		Size:          geom.P(40, 12),
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("frames written:", out.Len() > 0)
	// Output:
	// frames written: true
}
