package crypto

import "encoding/base64"

// B64 encodes raw transaction bytes for the REST gateway's tx_bytes field.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// FromB64 decodes a tx_bytes field.
func FromB64(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }
