package cmd

import (
	"fmt"
	"strings"

	"github.com/etnz/tvm"
	"github.com/etnz/tvm/date"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the defaults of the command flags.
//
// Values come from TVM_* environment variables, optionally set in a .env file.
type Config struct {
	Precision int    // TVM_PRECISION: fractional digits of displayed amounts
	Rounding  string // TVM_ROUNDING: rounding mode of displayed amounts
	Currency  string // TVM_CURRENCY: ISO 4217 code, overrides the precision
	Holidays  string // TVM_HOLIDAYS: path to a YAML or TOML holiday calendar
	DayCount  string // TVM_DAY_COUNT: day count convention
	LogLevel  string // TVM_LOG_LEVEL: debug, info, warn or error
}

// cfg is the configuration in use, defaults until Setup is called.
var cfg = defaultConfig()

func defaultConfig() *Config {
	return &Config{
		Precision: 2,
		Rounding:  tvm.HalfUp.String(),
		DayCount:  date.Actual365.String(),
		LogLevel:  "warn",
	}
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	def := defaultConfig()
	v := viper.New()
	v.SetEnvPrefix("TVM")
	v.SetDefault("PRECISION", def.Precision)
	v.SetDefault("ROUNDING", def.Rounding)
	v.SetDefault("CURRENCY", "")
	v.SetDefault("HOLIDAYS", "")
	v.SetDefault("DAY_COUNT", def.DayCount)
	v.SetDefault("LOG_LEVEL", def.LogLevel)
	v.AutomaticEnv()

	c := &Config{
		Precision: v.GetInt("PRECISION"),
		Rounding:  v.GetString("ROUNDING"),
		Currency:  strings.ToUpper(v.GetString("CURRENCY")),
		Holidays:  v.GetString("HOLIDAYS"),
		DayCount:  v.GetString("DAY_COUNT"),
		LogLevel:  strings.ToLower(v.GetString("LOG_LEVEL")),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("TVM_PRECISION must not be negative, got %d", c.Precision)
	}
	if _, err := tvm.ParseRoundingMode(c.Rounding); err != nil {
		return fmt.Errorf("TVM_ROUNDING: %w", err)
	}
	if _, err := date.ParseDayCount(c.DayCount); err != nil {
		return fmt.Errorf("TVM_DAY_COUNT: %w", err)
	}
	if c.Currency != "" {
		if _, err := tvm.LookupCurrency(c.Currency); err != nil {
			return fmt.Errorf("TVM_CURRENCY: %w", err)
		}
	}
	return nil
}

// Setup loads the configuration and the logger. It is called once flags are parsed.
func Setup() error {
	c, err := LoadConfig()
	if err != nil {
		return err
	}
	cfg = c
	level := c.LogLevel
	if *Verbose {
		level = "debug"
	}
	logger = newLogger(stderr, level)
	logger.Debug().
		Int("precision", c.Precision).
		Str("rounding", c.Rounding).
		Str("currency", c.Currency).
		Str("holidays", c.Holidays).
		Msg("configuration loaded")
	return nil
}
