package interfaces

import domaintypes "cointransfer/internal/domain/types"

// SecretSource produces the wallet mnemonic. Callers own the result and
// must Wipe it.
type SecretSource interface {
	Load() (*domaintypes.Mnemonic, error)
}
