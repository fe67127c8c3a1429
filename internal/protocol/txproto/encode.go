package txproto

import "google.golang.org/protobuf/encoding/protowire"

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// appendMessage always writes the field, an empty embedded message included.
func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// Marshal encodes c.
func (c Coin) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, c.Denom)
	b = appendString(b, 2, c.Amount)
	return b
}

// Marshal encodes m.
func (m MsgSend) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.FromAddress)
	b = appendString(b, 2, m.ToAddress)
	for _, c := range m.Amount {
		b = appendMessage(b, 3, c.Marshal())
	}
	return b
}

// Marshal encodes a.
func (a Any) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, a.TypeURL)
	b = appendBytes(b, 2, a.Value)
	return b
}

// Marshal encodes t.
func (t TxBody) Marshal() []byte {
	var b []byte
	for _, m := range t.Messages {
		b = appendMessage(b, 1, m.Marshal())
	}
	b = appendString(b, 2, t.Memo)
	b = appendUint(b, 3, t.TimeoutHeight)
	return b
}

// MarshalPubKey encodes a cosmos.crypto.secp256k1.PubKey.
func MarshalPubKey(key []byte) []byte {
	return appendBytes(nil, 1, key)
}

// PubKeyAny wraps a compressed secp256k1 public key in an Any.
func PubKeyAny(key []byte) Any {
	return Any{TypeURL: Secp256k1PubKeyTypeURL, Value: MarshalPubKey(key)}
}

// Marshal encodes s.
func (s SignerInfo) Marshal() []byte {
	var b []byte
	if s.PublicKey != nil {
		b = appendMessage(b, 1, s.PublicKey.Marshal())
	}
	single := appendUint(nil, 1, s.Mode)
	b = appendMessage(b, 2, appendMessage(nil, 1, single))
	b = appendUint(b, 3, s.Sequence)
	return b
}

// Marshal encodes f.
func (f Fee) Marshal() []byte {
	var b []byte
	for _, c := range f.Amount {
		b = appendMessage(b, 1, c.Marshal())
	}
	b = appendUint(b, 2, f.GasLimit)
	b = appendString(b, 3, f.Payer)
	b = appendString(b, 4, f.Granter)
	return b
}

// Marshal encodes a.
func (a AuthInfo) Marshal() []byte {
	var b []byte
	for _, s := range a.SignerInfos {
		b = appendMessage(b, 1, s.Marshal())
	}
	b = appendMessage(b, 2, a.Fee.Marshal())
	return b
}

// Marshal encodes d. The result is the exact byte string that is signed.
func (d SignDoc) Marshal() []byte {
	var b []byte
	b = appendBytes(b, 1, d.BodyBytes)
	b = appendBytes(b, 2, d.AuthInfoBytes)
	b = appendString(b, 3, d.ChainID)
	b = appendUint(b, 4, d.AccountNumber)
	return b
}

// Marshal encodes t.
func (t TxRaw) Marshal() []byte {
	var b []byte
	b = appendBytes(b, 1, t.BodyBytes)
	b = appendBytes(b, 2, t.AuthInfoBytes)
	for _, s := range t.Signatures {
		// repeated bytes keep empty elements
		b = appendMessage(b, 3, s)
	}
	return b
}
