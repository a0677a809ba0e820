package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoad_JSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"days": 30, "report_format": "table"}`), 0644))

	yamlPath := filepath.Join(dir, "settings.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("days: 12\nlegendary_names:\n  - Sulfuras\n  - Thunderfury\n"), 0644))

	s, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 30, s.Days)
	assert.Equal(t, "table", s.ReportFormat)
	assert.Equal(t, "Aged Brie", s.AgedBrieName, "unset fields keep defaults")

	s, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 12, s.Days)
	assert.Equal(t, []string{"Sulfuras", "Thunderfury"}, s.LegendaryNames)
}

func TestLoad_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("days = 3"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSave_RoundTrip(t *testing.T) {
	for _, name := range []string{"nested/settings.json", "nested/settings.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			s := DefaultSettings()
			s.Days = 99
			s.ConjuredToken = "enchanted"
			require.NoError(t, s.Save(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, s, loaded)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("GILDEDROSE_REPORT_FORMAT=json\nGILDEDROSE_DAYS=5\n"), 0644))

	t.Setenv("GILDEDROSE_DAYS", "7")
	t.Setenv("GILDEDROSE_LEGENDARY_NAMES", "Sulfuras, Hand of Ragnaros ; Thunderfury")
	t.Setenv("GILDEDROSE_DEV", "true")
	t.Cleanup(func() { os.Unsetenv("GILDEDROSE_REPORT_FORMAT") })

	s := DefaultSettings()
	require.NoError(t, s.ApplyEnv(envFile))

	assert.Equal(t, 7, s.Days, "process env wins over .env")
	assert.Equal(t, "json", s.ReportFormat)
	assert.Equal(t, []string{"Sulfuras, Hand of Ragnaros", "Thunderfury"}, s.LegendaryNames)
	assert.True(t, s.Development)
}

func TestApplyEnv_InvalidNumber(t *testing.T) {
	t.Setenv("GILDEDROSE_PARALLEL", "many")

	err := DefaultSettings().ApplyEnv("")
	assert.Error(t, err)
}

func TestRetryPolicy(t *testing.T) {
	s := DefaultSettings()
	s.FetchMaxRetries = 5
	s.FetchRetryCooldown = 0.5
	s.FetchRetryExponent = 2

	policy := s.RetryPolicy()
	assert.Equal(t, 5, policy.MaxRetries)
	assert.Equal(t, 0.5, policy.Cooldown)
	assert.Equal(t, 2.0, policy.Exponent)
}

func TestApplyEnv_MaxDays(t *testing.T) {
	t.Setenv("GILDEDROSE_MAX_DAYS", "30")

	s := DefaultSettings()
	require.NoError(t, s.ApplyEnv(""))
	assert.Equal(t, 30, s.MaxDays)
}

func TestToRules(t *testing.T) {
	s := DefaultSettings()
	s.BackstageToken = "tickets"

	rules := s.ToRules()
	assert.Equal(t, "tickets", rules.BackstageToken)

	rules.LegendaryNames[0] = "changed"
	assert.Equal(t, "Sulfuras, Hand of Ragnaros", s.LegendaryNames[0], "rules must not alias settings")
}
