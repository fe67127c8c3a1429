package secret

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"cointransfer/internal/domain"
	"cointransfer/internal/services/wallet"
)

const (
	// DefaultKeyFile is where the mnemonic is read from by default.
	DefaultKeyFile = "wallet/wallet.key"
	// DefaultEnvVar is the environment variable consulted when the file is absent.
	DefaultEnvVar = "WALLET_MNEMONIC"
)

// Source reads the mnemonic from a key file or, failing that, an
// environment variable.
type Source struct {
	keyFile   string
	envVar    string
	lookupEnv func(string) (string, bool)
	log       *zap.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger used for non-secret diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Source) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(s *Source) {
		if fn != nil {
			s.lookupEnv = fn
		}
	}
}

// New returns a Source for keyFile and envVar. Either may be empty to
// disable that source.
func New(keyFile, envVar string, opts ...Option) *Source {
	s := &Source{
		keyFile:   keyFile,
		envVar:    envVar,
		lookupEnv: os.LookupEnv,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the mnemonic from the first available source. The caller
// owns the result and must Wipe it.
func (s *Source) Load() (*domain.Mnemonic, error) {
	raw, origin, err := s.read()
	if err != nil {
		return nil, err
	}
	m := domain.NewMnemonic(raw)
	m.Normalize()
	if n := m.WordCount(); !wallet.ValidWordCount(n) {
		m.Wipe()
		return nil, fmt.Errorf("%w: %s holds %d words, want one of %v",
			domain.ErrSecretUnavailable, origin, n, wallet.AcceptedWordCounts)
	}
	s.log.Debug("mnemonic loaded", zap.String("source", origin), zap.Int("words", m.WordCount()))
	return m, nil
}

func (s *Source) read() ([]byte, string, error) {
	if s.keyFile != "" {
		b, ok, err := readFile(s.keyFile)
		if err != nil {
			return nil, "", fmt.Errorf("%w: read %s: %v", domain.ErrSecretUnavailable, s.keyFile, err)
		}
		if ok {
			if loosePermissions(s.keyFile) {
				s.log.Warn("key file is readable by other users; consider chmod 600",
					zap.String("path", s.keyFile))
			}
			origin := "file " + s.keyFile
			if len(b) == 0 {
				return nil, "", fmt.Errorf("%w: %s is empty", domain.ErrSecretUnavailable, origin)
			}
			return b, origin, nil
		}
	}
	if s.envVar != "" {
		if v, ok := s.lookupEnv(s.envVar); ok && v != "" {
			b := []byte(v)
			return b, "environment variable " + s.envVar, nil
		}
	}
	return nil, "", fmt.Errorf("%w: neither key file %q nor environment variable %q is set",
		domain.ErrSecretUnavailable, s.keyFile, s.envVar)
}

// Compile-time assertion that Source implements domain.SecretSource.
var _ domain.SecretSource = (*Source)(nil)
