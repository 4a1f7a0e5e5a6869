package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProcStat = `cpu  74608 2520 24433 1117073 6176 0 5546 0 0 0
cpu0 9372 341 3045 139607 780 0 1707 0 0 0
cpu1 9334 301 3055 139671 745 0 633 0 0 0
intr 33124241 117 1131 0 0 0 0 0 0 1 1271
ctxt 23456789
btime 1700000000
processes 12345
procs_running 2
procs_blocked 0
`

func TestParseCPUStat(t *testing.T) {
	counters, err := ParseCPUStat(sampleProcStat)
	require.NoError(t, err)

	assert.Equal(t, uint64(74608), counters.User)
	assert.Equal(t, uint64(2520), counters.Nice)
	assert.Equal(t, uint64(24433), counters.System)
	assert.Equal(t, uint64(1117073), counters.Idle)
	assert.Equal(t, uint64(6176), counters.IOWait)
	assert.Equal(t, uint64(0), counters.IRQ)
	assert.Equal(t, uint64(5546), counters.SoftIRQ)
	assert.Equal(t, uint64(0), counters.Steal)
}

func TestParseCPUStatTotals(t *testing.T) {
	counters := CPUCounters{
		User: 100, Nice: 10, System: 50, Idle: 800,
		IOWait: 40, IRQ: 5, SoftIRQ: 15, Steal: 2,
	}

	assert.Equal(t, uint64(840), counters.IdleTotal(), "idle should include iowait")
	assert.Equal(t, uint64(182), counters.BusyTotal())
	assert.Equal(t, uint64(1022), counters.Total())
}

func TestParseCPUStatErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"no aggregate line", "cpu0 1 2 3 4 5 6 7 8\ncpu1 1 2 3 4 5 6 7 8\n"},
		{"short cpu line", "cpu 1 2 3 4\n"},
		{"non-numeric field", "cpu 1 2 three 4 5 6 7 8\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCPUStat(tt.input)
			assert.Error(t, err)
		})
	}
}

const sampleMeminfo = `MemTotal:       16384000 kB
MemFree:         8192000 kB
MemAvailable:   12288000 kB
Buffers:          512000 kB
Cached:          2048000 kB
SwapCached:            0 kB
SwapTotal:       4096000 kB
SwapFree:        3072000 kB
Dirty:               120 kB
`

func TestParseMeminfo(t *testing.T) {
	info, err := ParseMeminfo(sampleMeminfo)
	require.NoError(t, err)

	assert.Equal(t, uint64(16384000), info.Total)
	assert.Equal(t, uint64(8192000), info.Free)
	assert.Equal(t, uint64(512000), info.Buffers)
	assert.Equal(t, uint64(2048000), info.Cached)
	assert.Equal(t, uint64(4096000), info.SwapTotal)
	assert.Equal(t, uint64(3072000), info.SwapFree)
}

func TestMemInfoUsedPercent(t *testing.T) {
	info := MemInfo{
		Total:   16384000,
		Free:    8192000,
		Buffers: 512000,
		Cached:  2048000,
	}

	// used = total - free - buffers - cached = 5632000
	assert.InDelta(t, 34.375, info.UsedPercent(), 0.001)
}

func TestMemInfoUsedPercentDegenerate(t *testing.T) {
	assert.Equal(t, 0.0, MemInfo{}.UsedPercent(), "zero total must not divide by zero")

	// Reclaimable exceeding total would underflow unsigned math
	info := MemInfo{Total: 100, Free: 80, Buffers: 30, Cached: 10}
	assert.Equal(t, 0.0, info.UsedPercent())
}

func TestMemInfoSwapUsedPercent(t *testing.T) {
	tests := []struct {
		name     string
		info     MemInfo
		expected float64
	}{
		{"quarter used", MemInfo{SwapTotal: 4096000, SwapFree: 3072000}, 25.0},
		{"no swap configured", MemInfo{SwapTotal: 0, SwapFree: 0}, 0.0},
		{"fully used", MemInfo{SwapTotal: 1000, SwapFree: 0}, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.info.SwapUsedPercent(), 0.001)
		})
	}
}

func TestParseMeminfoMissingTotal(t *testing.T) {
	_, err := ParseMeminfo("MemFree: 100 kB\nCached: 50 kB\n")
	assert.Error(t, err)
}

func TestParseMeminfoSkipsMalformedLines(t *testing.T) {
	input := "garbage\nMemTotal: abc kB\nMemTotal: 1000 kB\nMemFree: 250 kB\n"
	info, err := ParseMeminfo(input)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), info.Total)
	assert.Equal(t, uint64(250), info.Free)
}

func TestParseLoadAvg(t *testing.T) {
	la, err := ParseLoadAvg("0.08 0.03 0.05 2/278 1234\n")
	require.NoError(t, err)

	assert.InDelta(t, 0.08, la.Load1, 0.001)
	assert.InDelta(t, 0.03, la.Load5, 0.001)
	assert.InDelta(t, 0.05, la.Load15, 0.001)
	assert.Equal(t, 2, la.Running)
	assert.Equal(t, 278, la.Total)
	assert.Equal(t, 1234, la.LastPID)
}

func TestParseLoadAvgErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too few fields", "0.08 0.03 0.05"},
		{"bad load value", "x 0.03 0.05 2/278 1234"},
		{"missing slash", "0.08 0.03 0.05 2278 1234"},
		{"bad running count", "0.08 0.03 0.05 a/278 1234"},
		{"bad total count", "0.08 0.03 0.05 2/b 1234"},
		{"bad pid", "0.08 0.03 0.05 2/278 pid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLoadAvg(tt.input)
			assert.Error(t, err)
		})
	}
}
