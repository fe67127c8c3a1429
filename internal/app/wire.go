package app

import (
	"net/http"

	"go.uber.org/zap"

	"cointransfer/internal/chain"
	"cointransfer/internal/domain"
	"cointransfer/internal/services/broadcast"
	"cointransfer/internal/services/secret"
	"cointransfer/internal/services/signer"
	"cointransfer/internal/services/transfer"
	"cointransfer/internal/services/txbuilder"
	"cointransfer/internal/services/wallet"
)

// Wire bundles all services and clients for the CLI.
type Wire struct {
	Chain       domain.ChainClient
	Secrets     domain.SecretSource
	Keys        *wallet.Service
	Builder     *txbuilder.Service
	Signer      *signer.Service
	Broadcaster domain.Broadcaster
	Transfer    domain.TransferService
	HTTP        *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	price, err := txbuilder.ParseGasPrice(cfg.GasPrice)
	if err != nil {
		return nil, err
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	rc := chain.NewHTTP(cfg.Node, chain.WithHTTPClient(httpClient), chain.WithLogger(log.Named("chain")))

	secrets := secret.New(cfg.KeyFile, cfg.KeyEnv, secret.WithLogger(log.Named("secret")))
	keys := wallet.New(cfg.AddressPrefix)
	builder := txbuilder.New(cfg.AddressPrefix, cfg.Denoms)
	sig := signer.New(cfg.AddressPrefix, log.Named("signer"))
	bc := broadcast.New(rc, broadcast.Options{
		InclusionTimeout: cfg.InclusionTimeout,
		PollInterval:     cfg.PollInterval,
	}, log.Named("broadcast"))

	xfer := transfer.New(secrets, keys, builder, sig, bc, rc, transfer.Config{
		ChainID:       domain.ChainID(cfg.ChainID),
		GasPrice:      price,
		GasAdjustment: cfg.GasAdjustment,
		FallbackGas:   cfg.FallbackGas,
	}, log.Named("transfer"))

	return &Wire{
		Chain:       rc,
		Secrets:     secrets,
		Keys:        keys,
		Builder:     builder,
		Signer:      sig,
		Broadcaster: bc,
		Transfer:    xfer,
		HTTP:        httpClient,
	}, nil
}
