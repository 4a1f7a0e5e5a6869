// Package power reads battery and AC adapter state from the kernel's
// power supply class. Absence of power hardware is normal (desktops,
// VMs, containers), so callers should treat errors here as a reason to
// show placeholder values, never to stop.
package power

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rileyhilliard/sidecar/internal/errors"
)

// DefaultRoot is where the kernel exposes power supply devices.
const DefaultRoot = "/sys/class/power_supply"

// Status is a point-in-time power reading.
type Status struct {
	// BatteryPercent is the battery charge, or -1 when no battery
	// reported a capacity.
	BatteryPercent int
	// OnAC reports whether an AC adapter is connected.
	OnAC bool
}

// Unknown returns the status shown when power state cannot be read.
func Unknown() Status {
	return Status{BatteryPercent: -1}
}

// Reader scans a power supply directory tree.
type Reader struct {
	root string
}

// NewReader returns a Reader over the standard sysfs location.
func NewReader() *Reader {
	return NewReaderAt(DefaultRoot)
}

// NewReaderAt returns a Reader rooted at an alternate directory.
// Tests use this with a synthetic tree.
func NewReaderAt(root string) *Reader {
	return &Reader{root: root}
}

// Read scans the power supply devices. The first device of type
// Battery supplies the charge percentage; the first Mains/ADP/AC
// device that reports online supplies the AC flag. When no adapter
// device reports online but a battery exists, a battery status of
// "Charging" implies AC power, which covers laptops whose adapter
// never shows up as its own device.
func (r *Reader) Read() (Status, error) {
	status := Unknown()

	entries, err := os.ReadDir(r.root)
	if err != nil {
		return status, errors.WrapWithCode(err, errors.ErrPower,
			"Cannot read power supply devices", "")
	}

	foundBattery := false
	foundAC := false

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		device := filepath.Join(r.root, name)
		kind, ok := readSysString(filepath.Join(device, "type"))
		if !ok {
			continue
		}

		if kind == "Battery" && !foundBattery {
			if pct := readSysInt(filepath.Join(device, "capacity")); pct >= 0 {
				status.BatteryPercent = pct
				foundBattery = true
			}
		} else if isAdapter(name, kind) && !foundAC {
			if readSysInt(filepath.Join(device, "online")) > 0 {
				status.OnAC = true
				foundAC = true
			}
		}
	}

	if !foundAC && foundBattery {
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}

			device := filepath.Join(r.root, name)
			kind, ok := readSysString(filepath.Join(device, "type"))
			if !ok || kind != "Battery" {
				continue
			}

			if state, ok := readSysString(filepath.Join(device, "status")); ok && state == "Charging" {
				status.OnAC = true
			}
			break
		}
	}

	return status, nil
}

// isAdapter reports whether a device looks like an AC adapter, by type
// or by the naming conventions vendors actually use (ADP1, ACAD, AC0).
func isAdapter(name, kind string) bool {
	return kind == "Mains" ||
		kind == "ADP1" ||
		strings.Contains(name, "ADP") ||
		strings.Contains(name, "AC")
}

// readSysInt reads a single integer from a sysfs attribute, returning
// -1 if the attribute is missing or malformed.
func readSysInt(path string) int {
	s, ok := readSysString(path)
	if !ok {
		return -1
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return v
}

// readSysString reads a sysfs attribute and trims the trailing newline.
func readSysString(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}
