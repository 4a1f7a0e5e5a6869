package doctor

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/sidecar/internal/monitor/parsers"
	"github.com/shirou/gopsutil/v4/mem"
)

// DefaultProcRoot is where the kernel exposes its stat files.
const DefaultProcRoot = "/proc"

// memCrossTolerance is how far apart (in percentage points) the two memory
// readings may drift before the cross-check warns. The readings happen at
// slightly different instants and gopsutil folds reclaimable slab into its
// cached figure, so small gaps are normal.
const memCrossTolerance = 15.0

// StatCheck verifies /proc/stat is readable and parseable. The dashboard
// cannot run without it.
type StatCheck struct {
	ProcRoot string
}

func (c *StatCheck) Name() string     { return "proc_stat" }
func (c *StatCheck) Category() string { return "KERNEL" }

func (c *StatCheck) Run() CheckResult {
	text, err := readProcFile(c.ProcRoot, "stat")
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot read %s", filepath.Join(c.ProcRoot, "stat")),
			Suggestion: "sidecar needs a Linux /proc filesystem; the dashboard cannot start without it",
		}
	}

	counters, err := parsers.ParseCPUStat(text)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot parse CPU counters: %v", err),
			Suggestion: "This kernel's /proc/stat format is not recognized",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("CPU counters readable (%d jiffies total)", counters.Total()),
	}
}

func (c *StatCheck) Fix() error { return nil }

// MeminfoCheck verifies /proc/meminfo is readable and parseable.
type MeminfoCheck struct {
	ProcRoot string
}

func (c *MeminfoCheck) Name() string     { return "proc_meminfo" }
func (c *MeminfoCheck) Category() string { return "KERNEL" }

func (c *MeminfoCheck) Run() CheckResult {
	text, err := readProcFile(c.ProcRoot, "meminfo")
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot read %s", filepath.Join(c.ProcRoot, "meminfo")),
			Suggestion: "sidecar needs a Linux /proc filesystem; the dashboard cannot start without it",
		}
	}

	info, err := parsers.ParseMeminfo(text)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot parse memory info: %v", err),
			Suggestion: "This kernel's /proc/meminfo format is not recognized",
		}
	}

	totalGiB := float64(info.Total) / (1024 * 1024)
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Memory %.1f%% used of %.1f GiB", info.UsedPercent(), totalGiB),
	}
}

func (c *MeminfoCheck) Fix() error { return nil }

// LoadAvgCheck verifies /proc/loadavg is readable. The dashboard tolerates
// its absence (load lines keep their previous values), so failure here is
// only a warning.
type LoadAvgCheck struct {
	ProcRoot string
}

func (c *LoadAvgCheck) Name() string     { return "proc_loadavg" }
func (c *LoadAvgCheck) Category() string { return "KERNEL" }

func (c *LoadAvgCheck) Run() CheckResult {
	text, err := readProcFile(c.ProcRoot, "loadavg")
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Cannot read %s", filepath.Join(c.ProcRoot, "loadavg")),
			Suggestion: "Load averages and process counts will not update",
		}
	}

	load, err := parsers.ParseLoadAvg(text)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Cannot parse load averages: %v", err),
			Suggestion: "Load averages and process counts will not update",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Load average %.2f %.2f %.2f, %d processes", load.Load1, load.Load5, load.Load15, load.Total),
	}
}

func (c *LoadAvgCheck) Fix() error { return nil }

// MemCrossCheck compares sidecar's own /proc/meminfo arithmetic against an
// independent reading from gopsutil. A large disagreement means one of the
// two is misreading this kernel.
type MemCrossCheck struct {
	ProcRoot string
}

func (c *MemCrossCheck) Name() string     { return "mem_crosscheck" }
func (c *MemCrossCheck) Category() string { return "KERNEL" }

func (c *MemCrossCheck) Run() CheckResult {
	text, err := readProcFile(c.ProcRoot, "meminfo")
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: "Cross-check skipped: cannot read meminfo",
		}
	}

	info, err := parsers.ParseMeminfo(text)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: "Cross-check skipped: cannot parse meminfo",
		}
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: fmt.Sprintf("Cross-check skipped: %v", err),
		}
	}

	ours := info.UsedPercent()
	theirs := vm.UsedPercent
	if math.Abs(ours-theirs) > memCrossTolerance {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Memory readings disagree (sidecar %.1f%%, gopsutil %.1f%%)", ours, theirs),
			Suggestion: "The dashboard may misreport memory usage on this kernel",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Memory readings agree (sidecar %.1f%%, gopsutil %.1f%%)", ours, theirs),
	}
}

func (c *MemCrossCheck) Fix() error { return nil }

// NewKernelChecks creates all kernel source checks. An empty procRoot uses
// the standard /proc location.
func NewKernelChecks(procRoot string) []Check {
	if procRoot == "" {
		procRoot = DefaultProcRoot
	}
	return []Check{
		&StatCheck{ProcRoot: procRoot},
		&MeminfoCheck{ProcRoot: procRoot},
		&LoadAvgCheck{ProcRoot: procRoot},
		&MemCrossCheck{ProcRoot: procRoot},
	}
}

// readProcFile reads a file under the proc root.
func readProcFile(root, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
