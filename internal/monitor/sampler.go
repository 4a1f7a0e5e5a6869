package monitor

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rileyhilliard/sidecar/internal/errors"
	"github.com/rileyhilliard/sidecar/internal/logger"
	"github.com/rileyhilliard/sidecar/internal/monitor/parsers"
	"github.com/rileyhilliard/sidecar/internal/power"
)

// Sampler reads kernel counters and turns them into Snapshots.
//
// Failure severity is graded per source. An unreadable /proc/stat or
// /proc/meminfo is fatal: if those are gone at runtime the process has
// bigger problems than a dashboard. A malformed line is transient and
// keeps the previous value for one tick. Power state is optional
// hardware, so its failures only ever degrade the display.
type Sampler struct {
	procRoot string
	power    *power.Reader
	log      logger.Logger

	prev   parsers.CPUCounters
	primed bool
	last   Snapshot
}

// NewSampler creates a sampler over the live kernel interfaces.
func NewSampler(log logger.Logger) *Sampler {
	return NewSamplerAt("/proc", power.DefaultRoot, log)
}

// NewSamplerAt creates a sampler over alternate kernel roots. Tests
// point this at synthetic trees.
func NewSamplerAt(procRoot, powerRoot string, log logger.Logger) *Sampler {
	if log == nil {
		log = logger.Noop()
	}
	return &Sampler{
		procRoot: procRoot,
		power:    power.NewReaderAt(powerRoot),
		log:      log,
		last:     Snapshot{Power: power.Unknown()},
	}
}

// DisablePower turns off power supply sampling. The dashboard then
// shows the same placeholders as a machine with no battery.
func (s *Sampler) DisablePower() {
	s.power = nil
}

// Prime takes the initial counter readings that the first Sample will
// delta against, and seeds load and power so the first frame shows
// real numbers. Failing to read the CPU counters here is fatal: a
// kernel that does not expose /proc/stat never will.
func (s *Sampler) Prime() error {
	text, err := s.readProc("stat")
	if err != nil {
		return err
	}
	counters, err := parsers.ParseCPUStat(text)
	if err != nil {
		// Malformed rather than missing. With no prior reading to fall
		// back on, the loop cannot start.
		return errors.WrapWithCode(err, errors.ErrParse,
			fmt.Sprintf("Cannot parse %s", filepath.Join(s.procRoot, "stat")),
			"This system's /proc/stat has an unexpected format.")
	}
	s.prev = counters
	s.primed = true

	// Best effort: a failure here just means the first frame shows
	// zeros for one tick.
	if text, err := s.readProc("loadavg"); err == nil {
		if la, perr := parsers.ParseLoadAvg(text); perr == nil {
			s.last.Load = la
		}
	}
	if s.power != nil {
		if st, perr := s.power.Read(); perr == nil {
			s.last.Power = st
		}
	}

	return nil
}

// Sample reads every source and returns the tick's snapshot. A non-nil
// error means a required kernel source disappeared and the dashboard
// cannot continue. Transient problems are logged and papered over with
// the previous tick's values.
func (s *Sampler) Sample() (Snapshot, error) {
	snap := s.last
	snap.Taken = time.Now()

	text, err := s.readProc("stat")
	if err != nil {
		return snap, err
	}
	counters, perr := parsers.ParseCPUStat(text)
	if perr != nil {
		s.log.Warn("transient /proc/stat parse failure: %v", perr)
	} else {
		if s.primed {
			snap.CPUPercent, snap.IOWaitPercent = cpuDelta(s.prev, counters)
		}
		s.prev = counters
		s.primed = true
	}

	text, err = s.readProc("meminfo")
	if err != nil {
		return snap, err
	}
	if info, perr := parsers.ParseMeminfo(text); perr != nil {
		s.log.Warn("transient /proc/meminfo parse failure: %v", perr)
	} else {
		snap.MemPercent = info.UsedPercent()
		snap.SwapPercent = info.SwapUsedPercent()
	}

	// loadavg failures keep the previous reading; the file is tiny and
	// failures are either momentary or permanent, and neither is worth
	// stopping for.
	if text, lerr := s.readProc("loadavg"); lerr != nil {
		s.log.Warn("cannot read loadavg: %v", lerr)
	} else if la, perr := parsers.ParseLoadAvg(text); perr != nil {
		s.log.Warn("transient /proc/loadavg parse failure: %v", perr)
	} else {
		snap.Load = la
	}

	if s.power == nil {
		snap.Power = power.Unknown()
	} else if st, perr := s.power.Read(); perr != nil {
		s.log.Debug("power state unavailable: %v", perr)
		snap.Power = power.Unknown()
	} else {
		snap.Power = st
	}

	s.last = snap
	return snap, nil
}

// cpuDelta computes busy and iowait percentages for the interval
// between two counter readings. A non-advancing or rewinding total
// (counter wrap, clock weirdness) reports zero rather than garbage.
func cpuDelta(prev, cur parsers.CPUCounters) (busyPct, iowaitPct float64) {
	prevTotal, curTotal := prev.Total(), cur.Total()
	if curTotal <= prevTotal {
		return 0, 0
	}
	total := curTotal - prevTotal

	var idle uint64
	if cur.IdleTotal() > prev.IdleTotal() {
		idle = cur.IdleTotal() - prev.IdleTotal()
	}
	if idle > total {
		idle = total
	}

	var iowait uint64
	if cur.IOWait > prev.IOWait {
		iowait = cur.IOWait - prev.IOWait
	}
	if iowait > total {
		iowait = total
	}

	busyPct = float64(total-idle) / float64(total) * 100
	iowaitPct = float64(iowait) / float64(total) * 100
	return busyPct, iowaitPct
}

func (s *Sampler) readProc(name string) (string, error) {
	path := filepath.Join(s.procRoot, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrKernel,
			fmt.Sprintf("Cannot read %s", path),
			"The dashboard needs a Linux /proc filesystem.")
	}
	return string(data), nil
}
