// Package config loads the settings of the vscale command from flags, the
// environment (prefix VSCALE_, optionally from a .env file) and an
// optional config file.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvPrefix is the prefix of all environment variables read.
const EnvPrefix = "VSCALE"

// Config holds the settings of one vscale run.
type Config struct {
	// Input data
	Column  string   // value column plotted as a line
	OHLC    []string // open, high, low, close columns plotted as candles
	Sep     string   // CSV separator, guessed if empty
	First   int      // first visible record
	Last    int      // last visible record, -1 for the last record
	Height  float64  // panel layer height in points
	Width   float64  // image width in points
	Padding float64  // panel padding top and bottom

	// Scale
	StateFile string // state to load before applying operations
	SaveState string // file the final state is written to
	Locale    string
	Compact   bool    // SI prefixed labels
	Interval  float64 // label interval, 0 picks a nice one
	MaxTicks  int     // ticks a picked interval aims for
	Fixed     int     // use a fixed calibrator with that many ticks if > 1
	Ops       []string

	// Logging
	LogLevel         string
	LogFile          string
	LogRotateMaxSize int
	LogRotateMaxAge  int
	LogRotateBackups int
}

// Flags registers the command line flags of Config on fs. Their names are
// the viper keys.
func Flags(fs *pflag.FlagSet) {
	fs.String("column", "close", "Value column to plot")
	fs.StringSlice("ohlc", nil, "Open, high, low and close columns to plot instead of a single column")
	fs.String("sep", "", "CSV separator (default is guessed)")
	fs.Int("first", 0, "First visible record")
	fs.Int("last", -1, "Last visible record (default is the last record)")
	fs.Float64("height", 400, "Panel height")
	fs.Float64("width", 600, "Image width")
	fs.Float64("padding", 10, "Panel padding at top and bottom")

	fs.String("state", "", "Load the scale state from this JSON file")
	fs.String("save-state", "", "Write the final scale state to this JSON file")
	fs.String("locale", "en", "Locale of value labels")
	fs.Bool("compact", false, "Label values with SI prefixes")
	fs.Float64("interval", 0, "Value interval between labels (default is picked from the visible range)")
	fs.Int("max-ticks", 8, "Number of labels a picked interval aims for")
	fs.Int("fixed", 0, "Place this many evenly spaced labels instead of interval labels")
	fs.StringSlice("op", nil, "Operations applied in order: auto, scroll:PX, zoom:PX, drag:PX, wheel:N, dblclick, visible:MIN:MAX, window:FIRST:LAST")

	fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	fs.String("log-file", "", "Also write log messages to this file")
	fs.Int("log-rotate-max-size", 5, "Log rotate max size in MB")
	fs.Int("log-rotate-max-age", 7, "Log rotate max age in days")
	fs.Int("log-rotate-max-backup", 7, "Log rotate max backups")
}

// Load reads a .env file if present, binds fs to v, merges the config file
// (if not empty) and returns the resulting configuration.
func Load(v *viper.Viper, fs *pflag.FlagSet, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Debug("failed to load .env file")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: bind flags: %w", err)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
		logrus.WithField("file", v.ConfigFileUsed()).Debug("Using config file")
	}

	cfg := &Config{
		Column:  v.GetString("column"),
		OHLC:    v.GetStringSlice("ohlc"),
		Sep:     v.GetString("sep"),
		First:   v.GetInt("first"),
		Last:    v.GetInt("last"),
		Height:  v.GetFloat64("height"),
		Width:   v.GetFloat64("width"),
		Padding: v.GetFloat64("padding"),

		StateFile: v.GetString("state"),
		SaveState: v.GetString("save-state"),
		Locale:    v.GetString("locale"),
		Compact:   v.GetBool("compact"),
		Interval:  v.GetFloat64("interval"),
		MaxTicks:  v.GetInt("max-ticks"),
		Fixed:     v.GetInt("fixed"),
		Ops:       v.GetStringSlice("op"),

		LogLevel:         v.GetString("log-level"),
		LogFile:          v.GetString("log-file"),
		LogRotateMaxSize: v.GetInt("log-rotate-max-size"),
		LogRotateMaxAge:  v.GetInt("log-rotate-max-age"),
		LogRotateBackups: v.GetInt("log-rotate-max-backup"),
	}
	return cfg, cfg.Validate()
}

// Validate checks the values no later stage checks.
func (c *Config) Validate() error {
	if len(c.OHLC) != 0 && len(c.OHLC) != 4 {
		return fmt.Errorf("config: ohlc: need 4 columns, got %d", len(c.OHLC))
	}
	if len(c.Sep) > 1 {
		return fmt.Errorf("config: sep: %q is not a single byte", c.Sep)
	}
	if !(c.Height > 0) || !(c.Width > 0) {
		return fmt.Errorf("config: image size %gx%g is not positive", c.Width, c.Height)
	}
	if c.Padding < 0 || 2*c.Padding >= c.Height {
		return fmt.Errorf("config: padding %g does not fit height %g", c.Padding, c.Height)
	}
	if c.MaxTicks < 2 {
		return fmt.Errorf("config: max-ticks: %d is less than 2", c.MaxTicks)
	}
	return nil
}

// Separator returns the CSV separator byte, 0 to guess it.
func (c *Config) Separator() byte {
	if c.Sep == "" {
		return 0
	}
	return c.Sep[0]
}

// NewLogger returns a logger writing to stderr and, if LogFile is set, to
// a rotated log file. The returned closer closes the log file.
func (c *Config) NewLogger() (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("config: log-level: %w", err)
	}
	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if c.LogFile == "" {
		log.SetOutput(os.Stderr)
		return log, nopCloser{}, nil
	}
	file := &lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    c.LogRotateMaxSize,
		MaxAge:     c.LogRotateMaxAge,
		MaxBackups: c.LogRotateBackups,
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, file))
	return log, file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
