package render

import (
	"context"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/haivivi/raagas/pkg/swar"
)

// Renderer consumes an event stream.
type Renderer interface {
	Render(ctx context.Context, events iter.Seq[swar.Event]) error
}

// Timeline writes one line per event: start offset, tone, note name and
// beat count.
type Timeline struct {
	W     io.Writer
	Tempo Tempo
}

var _ Renderer = (*Timeline)(nil)

// NewTimeline returns a Timeline writing to w.
func NewTimeline(w io.Writer, tempo Tempo) *Timeline {
	return &Timeline{W: w, Tempo: tempo}
}

func (tl *Timeline) Render(ctx context.Context, events iter.Seq[swar.Event]) error {
	var offset time.Duration
	for ev := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		tone, name := ev.Pitch.Tone(), ev.Pitch.Name()
		if ev.Pitch.IsZero() {
			tone, name = "-", "rest"
		}
		if _, err := fmt.Fprintf(tl.W, "%9.3fs  %-3s %-4s %5.2f\n", offset.Seconds(), tone, name, ev.Beats); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		offset += tl.Tempo.Duration(ev.Beats)
	}
	return nil
}

// Collector gathers events as timed notes.
type Collector struct {
	Tempo Tempo
	Notes []Note
}

var _ Renderer = (*Collector)(nil)

func (c *Collector) Render(ctx context.Context, events iter.Seq[swar.Event]) error {
	for ev := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.Notes = append(c.Notes, c.Tempo.ToNote(ev))
	}
	return nil
}

// Duration returns the total duration collected so far.
func (c *Collector) Duration() time.Duration {
	return TotalDuration(c.Notes)
}
