// Package config holds the command-line configuration for the timegrid CLI,
// loaded from flags with environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tsawler/timegrid/model"
	"github.com/tsawler/timegrid/schedule"
)

const (
	// Source formats
	FormatAuto = "auto"
	FormatPDF  = "pdf"
	FormatDump = "dump"
	FormatText = "text"

	// Extraction modes
	ModeAuto     = "auto"
	ModeGeometry = "geometry"
	ModeLine     = "line"

	// Default values
	DefaultFormat = FormatAuto
	DefaultMode   = ModeAuto
	DefaultOutput = "-"
)

// Config holds all configuration for the timegrid CLI.
type Config struct {
	// Input files (positional arguments)
	Inputs []string

	// Source handling
	Format string // "auto", "pdf", "dump", or "text"
	Mode   string // "auto", "geometry", or "line"
	Pages  []int  // 1-indexed page selection, empty means all

	// Output
	Output  string // destination path, "-" for stdout
	DumpDir string // when set, write per-page fragment dumps here

	// Free-room query (all three set together, or none)
	Day  string // canonical day name after validation
	From string // "HH:MM" or "HH.MM"
	To   string

	Verbose bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Format: DefaultFormat,
		Mode:   DefaultMode,
		Output: DefaultOutput,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)
	cfg.Inputs = pflag.Args()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("TIMEGRID")
	viper.AutomaticEnv()

	viper.SetDefault("format", cfg.Format)
	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("output", cfg.Output)
	viper.SetDefault("dumpdir", cfg.DumpDir)
	viper.SetDefault("day", cfg.Day)
	viper.SetDefault("from", cfg.From)
	viper.SetDefault("to", cfg.To)
	viper.SetDefault("verbose", cfg.Verbose)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("format", cfg.Format, "Input format: 'auto' (by extension), 'pdf', 'dump', or 'text'")
	pflag.String("mode", cfg.Mode, "Extraction mode: 'auto', 'geometry', or 'line'")
	pflag.IntSlice("pages", nil, "Pages to extract (1-indexed, comma-separated); default all")
	pflag.String("output", cfg.Output, "Output path for extracted JSON, '-' for stdout")
	pflag.String("dumpdir", cfg.DumpDir, "Directory to write per-page fragment dumps to")
	pflag.String("day", cfg.Day, "Free-room query: day of week (e.g. MON or Monday)")
	pflag.String("from", cfg.From, "Free-room query: range start, e.g. 09:00")
	pflag.String("to", cfg.To, "Free-room query: range end, e.g. 10:50")
	pflag.Bool("verbose", cfg.Verbose, "Log per-page extraction details")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("format", pflag.Lookup("format"))
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("pages", pflag.Lookup("pages"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("dumpdir", pflag.Lookup("dumpdir"))
	_ = viper.BindPFlag("day", pflag.Lookup("day"))
	_ = viper.BindPFlag("from", pflag.Lookup("from"))
	_ = viper.BindPFlag("to", pflag.Lookup("to"))
	_ = viper.BindPFlag("verbose", pflag.Lookup("verbose"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <input>...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nReconstructs timetable sections from rendered timetable documents\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s timetable.pdf                        # extract all sections as JSON\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --pages=1,2 --mode=line notice.pdf   # line mode on selected pages\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --day=MON --from=09:00 --to=10:50 timetable.pdf # rooms free in a range\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dumpdir=./dumps timetable.pdf      # also write fragment dumps\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  TIMEGRID_FORMAT   Input format\n")
		fmt.Fprintf(os.Stderr, "  TIMEGRID_MODE     Extraction mode\n")
		fmt.Fprintf(os.Stderr, "  TIMEGRID_OUTPUT   Output path\n")
		fmt.Fprintf(os.Stderr, "  TIMEGRID_VERBOSE  Per-page logging\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.Format = viper.GetString("format")
	cfg.Mode = viper.GetString("mode")
	cfg.Pages = viper.GetIntSlice("pages")
	cfg.Output = viper.GetString("output")
	cfg.DumpDir = viper.GetString("dumpdir")
	cfg.Day = viper.GetString("day")
	cfg.From = viper.GetString("from")
	cfg.To = viper.GetString("to")
	cfg.Verbose = viper.GetBool("verbose")
}

// Validate checks the configuration and canonicalizes the free-room day.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatAuto, FormatPDF, FormatDump, FormatText:
	default:
		return fmt.Errorf("invalid format: %s (must be one of: auto, pdf, dump, text)", c.Format)
	}

	switch c.Mode {
	case ModeAuto, ModeGeometry, ModeLine:
	default:
		return fmt.Errorf("invalid mode: %s (must be one of: auto, geometry, line)", c.Mode)
	}

	if len(c.Inputs) == 0 {
		return errors.New("at least one input file is required")
	}

	for _, p := range c.Pages {
		if p < 1 {
			return fmt.Errorf("invalid page number: %d", p)
		}
	}

	querySet := 0
	for _, v := range []string{c.Day, c.From, c.To} {
		if v != "" {
			querySet++
		}
	}
	switch querySet {
	case 0:
		return nil
	case 3:
		day, err := canonicalDay(c.Day)
		if err != nil {
			return err
		}
		c.Day = day
		if _, err := schedule.ParseClock(c.From); err != nil {
			return fmt.Errorf("invalid --from: %w", err)
		}
		if _, err := schedule.ParseClock(c.To); err != nil {
			return fmt.Errorf("invalid --to: %w", err)
		}
		return nil
	default:
		return errors.New("--day, --from, and --to must be given together")
	}
}

// IsFreeRoomQuery reports whether a free-room query was requested.
func (c *Config) IsFreeRoomQuery() bool {
	return c.Day != ""
}

// canonicalDay maps a day code or full name to the canonical day name.
func canonicalDay(day string) (string, error) {
	upper := strings.ToUpper(strings.TrimSpace(day))
	if len(upper) >= 3 {
		if name, ok := model.DayFromCode(upper[:3]); ok {
			return name, nil
		}
	}
	return "", fmt.Errorf("invalid day: %s", day)
}
