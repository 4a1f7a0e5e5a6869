package monitor

import (
	"context"
	"os"
	"time"

	"github.com/rileyhilliard/sidecar/internal/config"
	"github.com/rileyhilliard/sidecar/internal/logger"
	"github.com/rileyhilliard/sidecar/internal/tail"
	"github.com/rileyhilliard/sidecar/internal/term"
)

// Dashboard owns the tick loop. One goroutine runs it; every component
// it touches assumes that.
type Dashboard struct {
	cfg      *config.Config
	log      logger.Logger
	sampler  *Sampler
	ring     *Ring
	watcher  *term.Watcher
	renderer *Renderer
	tailer   *tail.Tailer
}

// NewDashboard assembles a dashboard over the live kernel interfaces,
// rendering to stdout.
func NewDashboard(cfg *config.Config, log logger.Logger) *Dashboard {
	if log == nil {
		log = logger.Noop()
	}
	d := &Dashboard{
		cfg:     cfg,
		log:     log,
		sampler: NewSampler(log),
		ring:    NewRing(cfg.History.Capacity, cfg.History.Divisor),
		watcher: term.NewWatcher(int(os.Stdout.Fd()), term.Bounds{
			Margin: cfg.Graph.Margin,
			Min:    cfg.Graph.MinWidth,
			Max:    cfg.History.Capacity,
		}),
		renderer: NewRenderer(os.Stdout),
	}
	if !cfg.Power.Enabled {
		d.sampler.DisablePower()
	}
	return d
}

// AttachTail adds a file to follow beneath the dashboard. Must be
// called before Run.
func (d *Dashboard) AttachTail(path string) error {
	t, err := tail.Open(path, d.cfg.Debug.MaxLines)
	if err != nil {
		return err
	}
	d.tailer = t
	return nil
}

// Run drives the dashboard until the context is cancelled or a kernel
// source becomes unreadable. The first frame draws immediately; after
// that the loop paces itself on the configured refresh interval.
func (d *Dashboard) Run(ctx context.Context) error {
	if err := d.sampler.Prime(); err != nil {
		return err
	}

	d.watcher.Watch()
	defer d.watcher.Stop()
	if d.tailer != nil {
		defer d.tailer.Close()
	}

	geo := d.watcher.Measure()
	full := true

	ticker := time.NewTicker(d.cfg.Refresh)
	defer ticker.Stop()

	for {
		// Resize handling happens here, at the top of the tick, so the
		// whole frame below sees one consistent geometry.
		if d.watcher.Resized() {
			geo = d.watcher.Measure()
			full = true
		}

		snap, err := d.sampler.Sample()
		if err != nil {
			return err
		}

		if d.tailer != nil {
			newLines, terr := d.tailer.Poll()
			if terr != nil {
				d.log.Warn("tail: %v", terr)
			}
			if newLines {
				// New lines change the bottom of the screen in ways an
				// overwrite cannot be trusted to cover.
				full = true
			}
		}

		d.ring.Record(snap.CPUPercent, snap.MemPercent)

		cpuHist, memHist := d.ring.Window(geo.GraphWidth)
		st := RenderState{
			Geo:     geo,
			Height:  d.cfg.History.Height,
			Snap:    snap,
			CPUHist: cpuHist,
			MemHist: memHist,
		}
		if d.tailer != nil {
			st.TailPath = d.tailer.Path()
			st.TailLines = d.tailer.Last(d.cfg.Debug.MaxLines)
		}

		if err := d.renderer.Draw(st.Compose(), full); err != nil {
			return err
		}
		full = false

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
