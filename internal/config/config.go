package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "graybook/internal/errors"
)

// envPrefix namespaces every environment variable the loader reads.
// Variable names are derived from the field path, never from bare tag
// names, so ambient variables like PATH or PORT can never leak in.
const envPrefix = "GRAYBOOK"

// Config represents the complete application configuration
type Config struct {
	Report     ReportConfig     `yaml:"report"`
	Department DepartmentConfig `yaml:"department"`
	Roster     RosterConfig     `yaml:"roster"`
	Export     ExportConfig     `yaml:"export"`
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ReportConfig locates the Gray Book source document
type ReportConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// DepartmentConfig selects the department the analysis is scoped to.
// Code matches the numeric prefix of the heading ("434"); Name matches a
// substring of the display name. At least one must be set.
type DepartmentConfig struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Selector returns the human-readable form of the department selection
// criteria, used in error messages and logs.
func (d DepartmentConfig) Selector() string {
	if d.Code != "" && d.Name != "" {
		return fmt.Sprintf("%s - %s", d.Code, d.Name)
	}
	if d.Code != "" {
		return d.Code
	}
	return d.Name
}

// RosterConfig carries the authoritative roster and the manual override
// table. Overrides map an exact extracted-name string to either a canonical
// roster name or the exclusion marker.
type RosterConfig struct {
	Path          string            `yaml:"path"`
	Overrides     map[string]string `yaml:"overrides"`
	ExcludeMarker string            `yaml:"exclude_marker" split_words:"true" default:"EXCLUDE"`
}

// ExportConfig contains output paths for the analyze command
type ExportConfig struct {
	Dir          string `yaml:"dir" default:"out"`
	JSONFile     string `yaml:"json_file" split_words:"true" default:"faculty_salaries.json"`
	CSVFile      string `yaml:"csv_file" split_words:"true" default:"faculty_salaries.csv"`
	WorkbookFile string `yaml:"workbook_file" split_words:"true" default:"parity_report.xlsx"`
}

// ServerConfig contains HTTP server configuration for the web command
type ServerConfig struct {
	Port            int           `yaml:"port" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" split_words:"true" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" split_words:"true" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" split_words:"true" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true" default:"30s"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" default:"info"`
	Format   string `yaml:"format" default:"json"`
	Output   string `yaml:"output" default:"console"`
	FilePath string `yaml:"file_path" split_words:"true" default:"logs/graybook.log"`
}

// Load builds the configuration in three layers: struct defaults, then the
// optional YAML file, then GRAYBOOK_* environment variables. Later layers
// win, so an explicitly set variable overrides the file and the file
// overrides the defaults.
func Load(configFile string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileCfg, err := loadFromFile(configFile)
			if err != nil {
				return nil, apperrors.NewConfigError("failed to load config from file", err)
			}
			cfg.mergeFile(fileCfg)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(data, &cfg)
	return cfg, err
}

// mergeFile overlays file values onto cfg. A file value applies only when
// the file actually set it and the matching GRAYBOOK_* variable is absent,
// which keeps envconfig's defaults from clobbering the file and the file
// from clobbering explicit environment overrides.
func (c *Config) mergeFile(file Config) {
	overlay(&c.Report.Path, file.Report.Path, "REPORT_PATH")
	overlay(&c.Department.Code, file.Department.Code, "DEPARTMENT_CODE")
	overlay(&c.Department.Name, file.Department.Name, "DEPARTMENT_NAME")
	overlay(&c.Roster.Path, file.Roster.Path, "ROSTER_PATH")
	overlay(&c.Roster.ExcludeMarker, file.Roster.ExcludeMarker, "ROSTER_EXCLUDE_MARKER")
	if len(file.Roster.Overrides) > 0 && !envSet("ROSTER_OVERRIDES") {
		c.Roster.Overrides = file.Roster.Overrides
	}
	overlay(&c.Export.Dir, file.Export.Dir, "EXPORT_DIR")
	overlay(&c.Export.JSONFile, file.Export.JSONFile, "EXPORT_JSON_FILE")
	overlay(&c.Export.CSVFile, file.Export.CSVFile, "EXPORT_CSV_FILE")
	overlay(&c.Export.WorkbookFile, file.Export.WorkbookFile, "EXPORT_WORKBOOK_FILE")
	overlay(&c.Server.Port, file.Server.Port, "SERVER_PORT")
	overlay(&c.Server.ReadTimeout, file.Server.ReadTimeout, "SERVER_READ_TIMEOUT")
	overlay(&c.Server.WriteTimeout, file.Server.WriteTimeout, "SERVER_WRITE_TIMEOUT")
	overlay(&c.Server.IdleTimeout, file.Server.IdleTimeout, "SERVER_IDLE_TIMEOUT")
	overlay(&c.Server.ShutdownTimeout, file.Server.ShutdownTimeout, "SERVER_SHUTDOWN_TIMEOUT")
	overlay(&c.Logging.Level, file.Logging.Level, "LOGGING_LEVEL")
	overlay(&c.Logging.Format, file.Logging.Format, "LOGGING_FORMAT")
	overlay(&c.Logging.Output, file.Logging.Output, "LOGGING_OUTPUT")
	overlay(&c.Logging.FilePath, file.Logging.FilePath, "LOGGING_FILE_PATH")
}

// overlay writes the file value over dst unless the file left it at the
// zero value or the named GRAYBOOK_* variable overrides it.
func overlay[T comparable](dst *T, fileVal T, key string) {
	var zero T
	if fileVal == zero || envSet(key) {
		return
	}
	*dst = fileVal
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(envPrefix + "_" + key)
	return ok
}

// validate checks structural constraints that the tag-based validator and
// the department selection rule impose.
func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return apperrors.NewValidationError("config validation failed", err)
	}
	if c.Department.Code == "" && c.Department.Name == "" {
		return apperrors.NewValidationError("department selector requires a code or a name", nil)
	}
	return nil
}
