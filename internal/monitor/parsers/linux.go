// Package parsers converts raw kernel text sources into typed samples.
// Every function is pure: text in, struct out, no file access. The
// sampler owns reading the files and deciding what a failure means.
package parsers

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// CPUCounters holds the aggregate jiffies counters from the first line
// of /proc/stat. Counters are cumulative since boot; usage percentages
// only make sense as deltas between two readings.
type CPUCounters struct {
	User    uint64
	Nice    uint64
	System  uint64
	Idle    uint64
	IOWait  uint64
	IRQ     uint64
	SoftIRQ uint64
	Steal   uint64
}

// IdleTotal returns the jiffies the CPU spent doing nothing. IOWait
// counts as idle: the CPU was free, it was the disk that was busy.
func (c CPUCounters) IdleTotal() uint64 {
	return c.Idle + c.IOWait
}

// BusyTotal returns the jiffies the CPU spent doing work of any kind.
func (c CPUCounters) BusyTotal() uint64 {
	return c.User + c.Nice + c.System + c.IRQ + c.SoftIRQ + c.Steal
}

// Total returns all counted jiffies.
func (c CPUCounters) Total() uint64 {
	return c.IdleTotal() + c.BusyTotal()
}

// ParseCPUStat extracts the aggregate cpu line from /proc/stat content.
// Per-core lines and the remaining counters (guest, guest_nice) are
// ignored.
func ParseCPUStat(text string) (CPUCounters, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu ") {
			continue
		}

		fields := strings.Fields(line)
		// "cpu" plus the eight counters we track
		if len(fields) < 9 {
			return CPUCounters{}, fmt.Errorf("short cpu line in /proc/stat: %q", line)
		}

		vals := make([]uint64, 8)
		for i := 0; i < 8; i++ {
			v, err := strconv.ParseUint(fields[i+1], 10, 64)
			if err != nil {
				return CPUCounters{}, fmt.Errorf("failed to parse cpu field %d: %w", i+1, err)
			}
			vals[i] = v
		}

		return CPUCounters{
			User:    vals[0],
			Nice:    vals[1],
			System:  vals[2],
			Idle:    vals[3],
			IOWait:  vals[4],
			IRQ:     vals[5],
			SoftIRQ: vals[6],
			Steal:   vals[7],
		}, nil
	}

	if err := scanner.Err(); err != nil {
		return CPUCounters{}, fmt.Errorf("error scanning /proc/stat: %w", err)
	}
	return CPUCounters{}, fmt.Errorf("no aggregate cpu line in /proc/stat")
}

// MemInfo holds the /proc/meminfo fields the dashboard uses, in kB as
// the kernel reports them.
type MemInfo struct {
	Total     uint64
	Free      uint64
	Buffers   uint64
	Cached    uint64
	SwapTotal uint64
	SwapFree  uint64
}

// UsedPercent returns used memory as a percentage of total, where used
// excludes buffers and page cache.
func (m MemInfo) UsedPercent() float64 {
	if m.Total == 0 {
		return 0
	}
	reclaimable := m.Free + m.Buffers + m.Cached
	if reclaimable >= m.Total {
		return 0
	}
	return float64(m.Total-reclaimable) / float64(m.Total) * 100
}

// SwapUsedPercent returns swap usage as a percentage, or 0 on systems
// with no swap configured.
func (m MemInfo) SwapUsedPercent() float64 {
	if m.SwapTotal == 0 {
		return 0
	}
	return float64(m.SwapTotal-m.SwapFree) / float64(m.SwapTotal) * 100
}

// ParseMeminfo extracts memory fields from /proc/meminfo content.
// Lines it does not recognize are skipped. MemTotal is required; the
// rest default to zero when absent.
func ParseMeminfo(text string) (MemInfo, error) {
	var info MemInfo
	foundTotal := false

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		val, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			continue
		}

		switch strings.TrimSuffix(parts[0], ":") {
		case "MemTotal":
			info.Total = val
			foundTotal = true
		case "MemFree":
			info.Free = val
		case "Buffers":
			info.Buffers = val
		case "Cached":
			info.Cached = val
		case "SwapTotal":
			info.SwapTotal = val
		case "SwapFree":
			info.SwapFree = val
		}
	}

	if err := scanner.Err(); err != nil {
		return MemInfo{}, fmt.Errorf("error scanning /proc/meminfo: %w", err)
	}
	if !foundTotal {
		return MemInfo{}, fmt.Errorf("no MemTotal line in /proc/meminfo")
	}
	return info, nil
}

// LoadAvg holds the fields of /proc/loadavg: the three load averages,
// the runnable/total process counts, and the most recent PID.
type LoadAvg struct {
	Load1   float64
	Load5   float64
	Load15  float64
	Running int
	Total   int
	LastPID int
}

// ParseLoadAvg parses /proc/loadavg content, e.g.
// "0.08 0.03 0.05 2/278 1234".
func ParseLoadAvg(text string) (LoadAvg, error) {
	var la LoadAvg

	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) < 5 {
		return la, fmt.Errorf("short /proc/loadavg line: %q", strings.TrimSpace(text))
	}

	loads := []*float64{&la.Load1, &la.Load5, &la.Load15}
	for i, dst := range loads {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return LoadAvg{}, fmt.Errorf("failed to parse load average %d: %w", i+1, err)
		}
		*dst = v
	}

	procs := strings.SplitN(fields[3], "/", 2)
	if len(procs) != 2 {
		return LoadAvg{}, fmt.Errorf("malformed process counts in /proc/loadavg: %q", fields[3])
	}
	running, err := strconv.Atoi(procs[0])
	if err != nil {
		return LoadAvg{}, fmt.Errorf("failed to parse running process count: %w", err)
	}
	total, err := strconv.Atoi(procs[1])
	if err != nil {
		return LoadAvg{}, fmt.Errorf("failed to parse total process count: %w", err)
	}
	la.Running = running
	la.Total = total

	pid, err := strconv.Atoi(fields[4])
	if err != nil {
		return LoadAvg{}, fmt.Errorf("failed to parse last PID: %w", err)
	}
	la.LastPID = pid

	return la, nil
}
