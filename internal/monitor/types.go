package monitor

import (
	"time"

	"github.com/rileyhilliard/sidecar/internal/monitor/parsers"
	"github.com/rileyhilliard/sidecar/internal/power"
)

// Snapshot is one tick's view of the system. Percentages describe the
// interval since the previous sample, not averages since boot.
type Snapshot struct {
	Taken time.Time

	// CPUPercent is the share of the last interval the CPU spent busy.
	CPUPercent float64
	// IOWaitPercent is the share of the last interval spent waiting on
	// I/O. High values with low CPUPercent mean the disk is the
	// bottleneck.
	IOWaitPercent float64

	MemPercent  float64
	SwapPercent float64

	Load  parsers.LoadAvg
	Power power.Status
}
