package doctor

import (
	"fmt"

	"github.com/rileyhilliard/sidecar/internal/power"
)

// PowerSupplyCheck inspects the kernel's power supply devices. Absence of
// power hardware is normal on desktops and VMs, so nothing here fails hard.
type PowerSupplyCheck struct {
	Root string
}

func (c *PowerSupplyCheck) Name() string     { return "power_supply" }
func (c *PowerSupplyCheck) Category() string { return "POWER" }

func (c *PowerSupplyCheck) Run() CheckResult {
	root := c.Root
	if root == "" {
		root = power.DefaultRoot
	}

	status, err := power.NewReaderAt(root).Read()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Cannot read power supply devices",
			Suggestion: "The dashboard will show battery as 0% on battery power",
		}
	}

	if status.BatteryPercent < 0 {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No battery detected",
		}
	}

	source := "discharging"
	if status.OnAC {
		source = "on AC"
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Battery %d%%, %s", status.BatteryPercent, source),
	}
}

func (c *PowerSupplyCheck) Fix() error { return nil }

// NewPowerChecks creates the power supply checks. An empty root uses the
// standard sysfs location.
func NewPowerChecks(root string) []Check {
	return []Check{
		&PowerSupplyCheck{Root: root},
	}
}
