package power

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/sidecar/internal/errors"
)

// writeDevice creates a fake power supply device directory with the
// given attribute files.
func writeDevice(t *testing.T, root, name string, attrs map[string]string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for attr, value := range attrs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, attr), []byte(value+"\n"), 0o644))
	}
}

func TestReadBatteryAndAdapter(t *testing.T) {
	root := t.TempDir()
	writeDevice(t, root, "BAT0", map[string]string{
		"type":     "Battery",
		"capacity": "87",
		"status":   "Discharging",
	})
	writeDevice(t, root, "AC", map[string]string{
		"type":   "Mains",
		"online": "1",
	})

	status, err := NewReaderAt(root).Read()
	require.NoError(t, err)
	assert.Equal(t, 87, status.BatteryPercent)
	assert.True(t, status.OnAC)
}

func TestReadOnBattery(t *testing.T) {
	root := t.TempDir()
	writeDevice(t, root, "BAT0", map[string]string{
		"type":     "Battery",
		"capacity": "42",
		"status":   "Discharging",
	})
	writeDevice(t, root, "AC", map[string]string{
		"type":   "Mains",
		"online": "0",
	})

	status, err := NewReaderAt(root).Read()
	require.NoError(t, err)
	assert.Equal(t, 42, status.BatteryPercent)
	assert.False(t, status.OnAC)
}

func TestReadAdapterByName(t *testing.T) {
	// Some firmware reports the adapter with an unhelpful type but a
	// recognizable name.
	tests := []struct {
		name   string
		device string
	}{
		{"ADP prefix", "ADP1"},
		{"ACAD style", "ACAD"},
		{"plain AC0", "AC0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeDevice(t, root, tt.device, map[string]string{
				"type":   "USB",
				"online": "1",
			})

			status, err := NewReaderAt(root).Read()
			require.NoError(t, err)
			assert.True(t, status.OnAC)
		})
	}
}

func TestReadChargingImpliesAC(t *testing.T) {
	// No adapter device at all, but the battery says it is charging.
	root := t.TempDir()
	writeDevice(t, root, "BAT0", map[string]string{
		"type":     "Battery",
		"capacity": "55",
		"status":   "Charging",
	})

	status, err := NewReaderAt(root).Read()
	require.NoError(t, err)
	assert.Equal(t, 55, status.BatteryPercent)
	assert.True(t, status.OnAC)
}

func TestReadDischargingWithoutAdapter(t *testing.T) {
	root := t.TempDir()
	writeDevice(t, root, "BAT0", map[string]string{
		"type":     "Battery",
		"capacity": "55",
		"status":   "Discharging",
	})

	status, err := NewReaderAt(root).Read()
	require.NoError(t, err)
	assert.False(t, status.OnAC)
}

func TestReadNoDevices(t *testing.T) {
	// Desktops and VMs often expose an empty power_supply directory.
	status, err := NewReaderAt(t.TempDir()).Read()
	require.NoError(t, err)
	assert.Equal(t, -1, status.BatteryPercent)
	assert.False(t, status.OnAC)
}

func TestReadMissingRoot(t *testing.T) {
	status, err := NewReaderAt(filepath.Join(t.TempDir(), "nope")).Read()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrPower))
	assert.Equal(t, Unknown(), status)
}

func TestReadFirstBatteryWins(t *testing.T) {
	root := t.TempDir()
	writeDevice(t, root, "BAT0", map[string]string{
		"type":     "Battery",
		"capacity": "30",
	})
	writeDevice(t, root, "BAT1", map[string]string{
		"type":     "Battery",
		"capacity": "90",
	})

	status, err := NewReaderAt(root).Read()
	require.NoError(t, err)
	assert.Equal(t, 30, status.BatteryPercent)
}

func TestReadSkipsDevicesWithoutType(t *testing.T) {
	root := t.TempDir()
	writeDevice(t, root, "mystery", map[string]string{
		"online": "1",
	})
	writeDevice(t, root, "BAT0", map[string]string{
		"type":     "Battery",
		"capacity": "64",
	})

	status, err := NewReaderAt(root).Read()
	require.NoError(t, err)
	assert.Equal(t, 64, status.BatteryPercent)
	assert.False(t, status.OnAC)
}

func TestUnknown(t *testing.T) {
	u := Unknown()
	assert.Equal(t, -1, u.BatteryPercent)
	assert.False(t, u.OnAC)
}
