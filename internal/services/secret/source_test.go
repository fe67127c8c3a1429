package secret_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"cointransfer/internal/domain"
	"cointransfer/internal/services/secret"
)

const phrase = "test test test test test test test test test test test junk"

func env(vars map[string]string) secret.Option {
	return secret.WithLookupEnv(func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	})
}

func writeKey(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wallet.key")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeKey(t, phrase+"\n")

	m, err := secret.New(path, "MNEMONIC", env(nil)).Load()
	require.NoError(t, err)
	defer m.Wipe()
	assert.Equal(t, phrase, string(m.Bytes()))
	assert.Equal(t, 12, m.WordCount())
}

func TestLoad_FromEnv(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.key")

	m, err := secret.New(missing, "MNEMONIC", env(map[string]string{"MNEMONIC": phrase})).Load()
	require.NoError(t, err)
	defer m.Wipe()
	assert.Equal(t, phrase, string(m.Bytes()))
}

func TestLoad_FileTakesPrecedence(t *testing.T) {
	other := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	path := writeKey(t, phrase)

	m, err := secret.New(path, "MNEMONIC", env(map[string]string{"MNEMONIC": other})).Load()
	require.NoError(t, err)
	defer m.Wipe()
	assert.Equal(t, phrase, string(m.Bytes()))
}

func TestLoad_NeitherPresent(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.key")

	_, err := secret.New(missing, "MNEMONIC", env(nil)).Load()
	require.ErrorIs(t, err, domain.ErrSecretUnavailable)

	_, err = secret.New(missing, "MNEMONIC", env(map[string]string{"MNEMONIC": ""})).Load()
	require.ErrorIs(t, err, domain.ErrSecretUnavailable)
}

func TestLoad_BadWordCount(t *testing.T) {
	path := writeKey(t, "test test test secretword")

	_, err := secret.New(path, "", env(nil)).Load()
	require.ErrorIs(t, err, domain.ErrSecretUnavailable)
	assert.NotContains(t, err.Error(), "secretword")
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeKey(t, "")

	_, err := secret.New(path, "MNEMONIC", env(map[string]string{"MNEMONIC": phrase})).Load()
	require.ErrorIs(t, err, domain.ErrSecretUnavailable)
}

func TestLoad_UnreadableFileIsUnavailable(t *testing.T) {
	dir := t.TempDir()

	// A directory cannot be read as a file.
	_, err := secret.New(dir, "", env(nil)).Load()
	require.ErrorIs(t, err, domain.ErrSecretUnavailable)
}

func TestLoad_NeverLogsThePhrase(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	path := writeKey(t, phrase)
	require.NoError(t, os.Chmod(path, 0o644))

	m, err := secret.New(path, "", env(nil), secret.WithLogger(zap.New(core))).Load()
	require.NoError(t, err)
	defer m.Wipe()

	require.NotZero(t, logs.Len())
	for _, entry := range logs.All() {
		assert.NotContains(t, entry.Message, "junk")
		for _, f := range entry.Context {
			assert.NotContains(t, f.String, "junk")
		}
	}
	assert.Equal(t, 1, logs.FilterMessageSnippet("readable by other users").Len())
}

func TestMnemonic_RedactedFormatting(t *testing.T) {
	m := domain.NewMnemonic([]byte(phrase))
	assert.Equal(t, "[REDACTED]", m.String())
	assert.Equal(t, "[REDACTED]", m.GoString())

	buf := m.Bytes()
	m.Wipe()
	assert.Equal(t, make([]byte, len(buf)), buf)
	assert.Empty(t, m.Bytes())
}
