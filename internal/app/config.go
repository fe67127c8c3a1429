package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"cointransfer/internal/domain"
	"cointransfer/internal/services/txbuilder"
)

// Network profile defaults (Osmosis testnet).
const (
	DefaultNode             = "https://lcd.osmotest5.osmosis.zone"
	DefaultChainID          = "osmo-test-5"
	DefaultAddressPrefix    = "osmo"
	DefaultGasPrice         = "0.025uosmo"
	DefaultGasAdjustment    = 1.5
	DefaultFallbackGas      = 200000
	DefaultKeyFile          = "wallet/wallet.key"
	DefaultKeyEnv           = "WALLET_MNEMONIC"
	DefaultInclusionTimeout = 60 * time.Second
	DefaultPollInterval     = 2 * time.Second
	DefaultRequestTimeout   = 15 * time.Second
	DefaultLogDir           = "logs"
	DefaultLogLevel         = "info"
)

// DefaultDenoms are the denominations recognized on the default network.
var DefaultDenoms = []string{"uosmo", "uion"}

// Config holds runtime wiring options for building the app. Zero values
// are filled from the defaults above by Default.
type Config struct {
	Node          string   `yaml:"node"`     // REST gateway base URL
	ChainID       string   `yaml:"chain_id"` // signed into every transaction
	AddressPrefix string   `yaml:"address_prefix"`
	Denoms        []string `yaml:"denoms"`
	GasPrice      string   `yaml:"gas_price"`
	GasAdjustment float64  `yaml:"gas_adjustment"`
	FallbackGas   uint64   `yaml:"fallback_gas"`

	KeyFile string `yaml:"key_file"`
	KeyEnv  string `yaml:"key_env"`

	InclusionTimeout time.Duration `yaml:"inclusion_timeout"`
	PollInterval     time.Duration `yaml:"poll_interval"`
	RequestTimeout   time.Duration `yaml:"request_timeout"`

	LogDir   string `yaml:"log_dir"`
	LogLevel string `yaml:"log_level"`

	HTTP *http.Client `yaml:"-"` // optional; defaults to a client with RequestTimeout
}

// Default returns the built-in network profile.
func Default() Config {
	return Config{
		Node:             DefaultNode,
		ChainID:          DefaultChainID,
		AddressPrefix:    DefaultAddressPrefix,
		Denoms:           append([]string(nil), DefaultDenoms...),
		GasPrice:         DefaultGasPrice,
		GasAdjustment:    DefaultGasAdjustment,
		FallbackGas:      DefaultFallbackGas,
		KeyFile:          DefaultKeyFile,
		KeyEnv:           DefaultKeyEnv,
		InclusionTimeout: DefaultInclusionTimeout,
		PollInterval:     DefaultPollInterval,
		RequestTimeout:   DefaultRequestTimeout,
		LogDir:           DefaultLogDir,
		LogLevel:         DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: config: %v", domain.ErrInvalidArgument, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: config %s: %v", domain.ErrInvalidArgument, path, err)
	}
	return cfg, nil
}

// Validate checks cross-field consistency.
func (c Config) Validate() error {
	if c.Node == "" {
		return fmt.Errorf("%w: node URL is empty", domain.ErrInvalidArgument)
	}
	if c.ChainID == "" {
		return fmt.Errorf("%w: chain id is empty", domain.ErrInvalidArgument)
	}
	if c.AddressPrefix == "" {
		return fmt.Errorf("%w: address prefix is empty", domain.ErrInvalidArgument)
	}
	if len(c.Denoms) == 0 {
		return fmt.Errorf("%w: no recognized denominations", domain.ErrInvalidArgument)
	}
	for _, d := range c.Denoms {
		if !txbuilder.ValidDenom(d) {
			return fmt.Errorf("%w: denomination %q", domain.ErrInvalidArgument, d)
		}
	}
	price, err := txbuilder.ParseGasPrice(c.GasPrice)
	if err != nil {
		return err
	}
	known := false
	for _, d := range c.Denoms {
		known = known || d == price.Denom
	}
	if !known {
		return fmt.Errorf("%w: gas price denomination %q is not recognized", domain.ErrInvalidArgument, price.Denom)
	}
	if _, err := price.Fee(c.FallbackGas); err != nil {
		return err
	}
	if c.GasAdjustment < 1 {
		return fmt.Errorf("%w: gas adjustment %v is below 1", domain.ErrInvalidArgument, c.GasAdjustment)
	}
	if c.InclusionTimeout <= 0 || c.PollInterval <= 0 || c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", domain.ErrInvalidArgument)
	}
	if c.PollInterval > c.InclusionTimeout {
		return fmt.Errorf("%w: poll interval %s exceeds inclusion timeout %s", domain.ErrInvalidArgument, c.PollInterval, c.InclusionTimeout)
	}
	return nil
}
