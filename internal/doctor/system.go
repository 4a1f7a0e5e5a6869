package doctor

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
)

// HostInfoCheck reports the platform and uptime. Purely informational; it
// only warns when the host cannot be identified at all.
type HostInfoCheck struct{}

func (c *HostInfoCheck) Name() string     { return "host_info" }
func (c *HostInfoCheck) Category() string { return "SYSTEM" }

func (c *HostInfoCheck) Run() CheckResult {
	info, err := host.Info()
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: fmt.Sprintf("Cannot identify host: %v", err),
		}
	}

	return CheckResult{
		Name:   c.Name(),
		Status: StatusPass,
		Message: fmt.Sprintf("%s %s, up %s",
			info.Platform, info.KernelVersion, formatUptime(info.Uptime)),
	}
}

func (c *HostInfoCheck) Fix() error { return nil }

// CPUCountCheck reports the logical CPU count the counters aggregate over.
type CPUCountCheck struct{}

func (c *CPUCountCheck) Name() string     { return "cpu_count" }
func (c *CPUCountCheck) Category() string { return "SYSTEM" }

func (c *CPUCountCheck) Run() CheckResult {
	logical, err := cpu.Counts(true)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: fmt.Sprintf("Cannot count CPUs: %v", err),
		}
	}

	physical, err := cpu.Counts(false)
	if err != nil || physical == 0 || physical == logical {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("%d logical CPU%s", logical, pluralize(logical)),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%d logical CPUs (%d cores)", logical, physical),
	}
}

func (c *CPUCountCheck) Fix() error { return nil }

// NewSystemChecks creates the informational system checks.
func NewSystemChecks() []Check {
	return []Check{
		&HostInfoCheck{},
		&CPUCountCheck{},
	}
}

// formatUptime renders seconds of uptime as a compact duration like "3d 4h"
// or "12m".
func formatUptime(seconds uint64) string {
	d := time.Duration(seconds) * time.Second

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
