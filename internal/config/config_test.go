package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "graybook/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GRAYBOOK_REPORT_PATH", "testdata/graybook.html")
	t.Setenv("GRAYBOOK_DEPARTMENT_CODE", "434")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "testdata/graybook.html", cfg.Report.Path)
	assert.Equal(t, "434", cfg.Department.Code)
	assert.Equal(t, "EXCLUDE", cfg.Roster.ExcludeMarker)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "out", cfg.Export.Dir)
}

func TestLoadMissingReportPath(t *testing.T) {
	t.Setenv("GRAYBOOK_DEPARTMENT_CODE", "434")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
}

func TestLoadMissingDepartmentSelector(t *testing.T) {
	t.Setenv("GRAYBOOK_REPORT_PATH", "testdata/graybook.html")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "department selector")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
report:
  path: reports/graybook.html
department:
  code: "434"
  name: Siebel School
roster:
  path: rosters/cs.yaml
  overrides:
    "Doe, John A": John Doe
    "Smith, Pat": EXCLUDE
server:
  port: 9090
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, "reports/graybook.html", cfg.Report.Path)
	assert.Equal(t, "434", cfg.Department.Code)
	assert.Equal(t, "Siebel School", cfg.Department.Name)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "John Doe", cfg.Roster.Overrides["Doe, John A"])
	assert.Equal(t, "EXCLUDE", cfg.Roster.Overrides["Smith, Pat"])

	// Defaults still fill whatever the file leaves unset.
	assert.Equal(t, "EXCLUDE", cfg.Roster.ExcludeMarker)
	assert.Equal(t, "out", cfg.Export.Dir)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadIgnoresAmbientEnvironment(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
report:
  path: reports/graybook.html
department:
  code: "434"
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	// Unprefixed variables like the shell's PATH must never reach the config.
	t.Setenv("PATH", "/usr/local/bin:/usr/bin")
	t.Setenv("PORT", "1234")

	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, "reports/graybook.html", cfg.Report.Path)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
report:
  path: reports/graybook.html
department:
  code: "434"
server:
  port: 9090
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	t.Setenv("GRAYBOOK_SERVER_PORT", "7070")

	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestDepartmentSelector(t *testing.T) {
	tests := []struct {
		name string
		dept DepartmentConfig
		want string
	}{
		{"code and name", DepartmentConfig{Code: "434", Name: "Siebel School Comp & Data Sci"}, "434 - Siebel School Comp & Data Sci"},
		{"code only", DepartmentConfig{Code: "434"}, "434"},
		{"name only", DepartmentConfig{Name: "Siebel School"}, "Siebel School"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dept.Selector())
		})
	}
}
