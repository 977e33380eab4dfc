// =============================================================================
// Sales Totals - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file.
//
// CONFIGURATION FILE (salestotals.yaml):
//   stores_dir:    ./stores
//   output_dir:    ./salesTotalDir
//   extension:     .json
//   totals_file:   totals.txt
//   report_file:   salesReport.txt
//   workbook_file: ""              # e.g. salesReport.xlsx, empty disables it
//   log_level:     info
//
// Every key is optional. Relative directories resolve against the process
// working directory.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	DefaultStoresDir  = "stores"
	DefaultOutputDir  = "salesTotalDir"
	DefaultExtension  = ".json"
	DefaultTotalsFile = "totals.txt"
	DefaultReportFile = "salesReport.txt"
	DefaultLogLevel   = "info"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// StoresDir is the root scanned recursively for store files.
	// Default: "stores"
	StoresDir string `yaml:"stores_dir"`

	// OutputDir receives the totals log, the report and the workbook.
	// It is created if missing.
	// Default: "salesTotalDir"
	OutputDir string `yaml:"output_dir"`

	// Extension selects store files, including the leading dot.
	// Default: ".json"
	Extension string `yaml:"extension"`

	// TotalsFile is the name of the append-only totals log inside OutputDir.
	// Default: "totals.txt"
	TotalsFile string `yaml:"totals_file"`

	// ReportFile is the name of the summary report inside OutputDir.
	// Default: "salesReport.txt"
	ReportFile string `yaml:"report_file"`

	// WorkbookFile is the name of the optional .xlsx summary inside OutputDir.
	// Empty disables the workbook.
	WorkbookFile string `yaml:"workbook_file"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - required: When false, a missing file yields the defaults instead of an error.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string, required bool) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.StoresDir == "" {
		config.StoresDir = DefaultStoresDir
	}
	if config.OutputDir == "" {
		config.OutputDir = DefaultOutputDir
	}
	if config.Extension == "" {
		config.Extension = DefaultExtension
	}
	if config.TotalsFile == "" {
		config.TotalsFile = DefaultTotalsFile
	}
	if config.ReportFile == "" {
		config.ReportFile = DefaultReportFile
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
}

// Validate checks the configuration. It never touches the file system.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return fmt.Errorf("extension %q must start with a dot", c.Extension)
	}

	names := map[string]string{
		"totals_file":   c.TotalsFile,
		"report_file":   c.ReportFile,
		"workbook_file": c.WorkbookFile,
	}
	for key, name := range names {
		if name == "" {
			continue
		}
		if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
			return fmt.Errorf("%s %q must be a file name, not a path", key, name)
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	return nil
}

// =============================================================================
// OUTPUT PATHS
// =============================================================================

// TotalsPath returns the full path of the totals log.
func (c *Config) TotalsPath() string {
	return filepath.Join(c.OutputDir, c.TotalsFile)
}

// ReportPath returns the full path of the summary report.
func (c *Config) ReportPath() string {
	return filepath.Join(c.OutputDir, c.ReportFile)
}

// WorkbookPath returns the full path of the summary workbook, or "" when disabled.
func (c *Config) WorkbookPath() string {
	if c.WorkbookFile == "" {
		return ""
	}
	return filepath.Join(c.OutputDir, c.WorkbookFile)
}
