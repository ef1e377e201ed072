package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/etnz/pricedb"
	"github.com/etnz/pricedb/binance"
	"github.com/etnz/pricedb/bloomberg"
	"github.com/etnz/pricedb/eodhd"
	"github.com/etnz/pricedb/ledgercli"
	"github.com/etnz/pricedb/yahoo"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Providers lists the supported quote providers.
var Providers = []string{"bloomberg", "eodhd", "yahoo", "binance"}

// Config is the environment of a price update.
type Config struct {
	Database     string `env:"LEDGER_PRICE_DB"`
	History      string `env:"PRICE_HIST"`
	Base         string `env:"LEDGER_BASE_CURRENCY" envDefault:"USD"`
	DateFormat   string `env:"LEDGER_PRICE_DATE_FORMAT" envDefault:"%Y/%m/%d"`
	PriceFormat  string `env:"LEDGER_PRICE_FORMAT" envDefault:"P %{date} %{time} %{symbol} %{price}"`
	Blacklist    string `env:"LEDGER_PRICE_COMMODITY_BLACKLIST"`
	Provider     string `env:"LEDGER_PRICE_PROVIDER" envDefault:"bloomberg"`
	SymbolMap    string `env:"LEDGER_PRICE_SYMBOL_MAP"`
	LogLevel     string `env:"LEDGER_PRICE_LOG_LEVEL" envDefault:"info"`
	Ledger       string `env:"LEDGER_BIN" envDefault:"ledger"`
	Journal      string `env:"LEDGER_FILE"`
	EODHDKey     string `env:"EODHD_API_KEY" envDefault:"demo"`
	BinanceKey   string `env:"BINANCE_API_KEY"`
	BinanceToken string `env:"BINANCE_API_SECRET"`
}

// LoadConfig reads the configuration from the environment, after loading a
// ".env" file from the working directory if there is one.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("could not load .env file: %v", err)
	}
	return ParseConfig(env.Options{})
}

// ParseConfig reads the configuration with opts.
func ParseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Database == "" {
		cfg.Database = cfg.History
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration values that do not depend on the file system.
func (c Config) Validate() error {
	if c.Database == "" {
		return fmt.Errorf("%w: set LEDGER_PRICE_DB or PRICE_HIST", pricedb.ErrNoDatabasePath)
	}
	if c.Base == "" {
		return errors.New("LEDGER_BASE_CURRENCY is empty")
	}
	if err := c.Format().Validate(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LEDGER_PRICE_LOG_LEVEL: %w", err)
	}
	if _, err := c.NewProvider(); err != nil {
		return err
	}
	return nil
}

// Format returns the price line format.
func (c Config) Format() pricedb.Format {
	return pricedb.Format{Template: c.PriceFormat, DateFormat: c.DateFormat}
}

// BlacklistedCommodities returns the configured blacklist, or nil to use the
// provider's default.
func (c Config) BlacklistedCommodities() []string {
	if strings.TrimSpace(c.Blacklist) == "" {
		return nil
	}
	return strings.Fields(c.Blacklist)
}

// NewProvider returns the configured quote provider.
func (c Config) NewProvider() (pricedb.Provider, error) {
	switch strings.ToLower(c.Provider) {
	case "bloomberg":
		return bloomberg.New(), nil
	case "eodhd":
		return eodhd.New(c.EODHDKey), nil
	case "yahoo":
		return yahoo.New(), nil
	case "binance":
		return binance.New(c.BinanceKey, c.BinanceToken), nil
	default:
		return nil, fmt.Errorf("unsupported price provider %q, use one of %s", c.Provider, strings.Join(Providers, ", "))
	}
}

// NewJournal returns the ledger journal to price.
func (c Config) NewJournal() pricedb.Journal {
	return ledgercli.CLI{Bin: c.Ledger, File: c.Journal}
}

// Logger returns a logger at the configured level.
func (c Config) Logger() *log.Logger {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if level, err := log.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// Options returns the options of a run.
func (c Config) Options() (pricedb.Options, error) {
	symbols, err := pricedb.LoadSymbolMap(c.SymbolMap)
	if err != nil {
		return pricedb.Options{}, err
	}
	return pricedb.Options{
		Format:    c.Format(),
		Base:      c.Base,
		Blacklist: c.BlacklistedCommodities(),
		Symbols:   symbols,
	}, nil
}
