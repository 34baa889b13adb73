package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BuiltinsOnly(t *testing.T) {
	table, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "2014-014", table.Version())
	assert.Equal(t, 17, table.ZoneCount())
}

func TestLoad_MissingOverlayDirIsFine(t *testing.T) {
	// A directory with no zoning.yaml loads the built-ins alone.
	table, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 17, table.ZoneCount())
}

func TestLoad_OverlayMergesKeyByKey(t *testing.T) {
	dir := t.TempDir()
	overlay := `
version: "2014-014-am"
residential_zones:
  RL3:
    min_lot_area: 600.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, OverlayFileName), []byte(overlay), 0o644))

	table, err := Load(dir)
	require.NoError(t, err)

	// Overlaid keys win.
	assert.Equal(t, "2014-014-am", table.Version())
	rules := table.BaselineRules("RL3")
	require.NotNil(t, rules)
	require.NotNil(t, rules.MinLotArea)
	assert.InDelta(t, 600.0, *rules.MinLotArea, 1e-9)

	// Untouched keys of the same zone survive the merge.
	require.NotNil(t, rules.MinLotFrontage)
	assert.InDelta(t, 18.0, *rules.MinLotFrontage, 1e-9)

	// Other zones are unaffected.
	rl1 := table.BaselineRules("RL1")
	require.NotNil(t, rl1)
	require.NotNil(t, rl1.MinLotArea)
	assert.InDelta(t, 1393.5, *rl1.MinLotArea, 1e-9)
}

func TestLoad_OverlayCanAddZone(t *testing.T) {
	dir := t.TempDir()
	overlay := `
residential_zones:
  RL12:
    name: "Residential Low 12"
    category: residential_low
    min_lot_area: 200.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, OverlayFileNameAlt), []byte(overlay), 0o644))

	table, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 18, table.ZoneCount())
	assert.NotNil(t, table.BaselineRules("RL12"))
}

func TestLoad_MalformedOverlayFailsStartup(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, OverlayFileName), []byte("residential_zones: ["), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlay")
}

func TestLoad_InvalidOverlayValueFailsStartup(t *testing.T) {
	dir := t.TempDir()
	overlay := `
residential_zones:
  RL3:
    category: commercial_core
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, OverlayFileName), []byte(overlay), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RL3")
}
