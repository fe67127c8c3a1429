package txproto

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrMalformed reports bytes that are not a valid encoding of the expected message.
var ErrMalformed = errors.New("txproto: malformed message")

// field is one decoded (number, value) pair. Only varint and length-delimited
// wire types occur in the messages of this package.
type field struct {
	num    protowire.Number
	typ    protowire.Type
	varint uint64
	bytes  []byte
}

func fields(b []byte, msg string) ([]field, error) {
	var out []field
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, msg, protowire.ParseError(n))
		}
		b = b[n:]
		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return nil, fmt.Errorf("%w: %s field %d: %v", ErrMalformed, msg, num, protowire.ParseError(m))
			}
			f.varint, n = v, m
		case protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return nil, fmt.Errorf("%w: %s field %d: %v", ErrMalformed, msg, num, protowire.ParseError(m))
			}
			f.bytes, n = v, m
		default:
			return nil, fmt.Errorf("%w: %s field %d: unexpected wire type %d", ErrMalformed, msg, num, typ)
		}
		b = b[n:]
		out = append(out, f)
	}
	return out, nil
}

func unknown(msg string, f field) error {
	return fmt.Errorf("%w: %s: unknown field %d", ErrMalformed, msg, f.num)
}

func wantType(msg string, f field, typ protowire.Type) error {
	if f.typ != typ {
		return fmt.Errorf("%w: %s field %d: wire type %d, want %d", ErrMalformed, msg, f.num, f.typ, typ)
	}
	return nil
}

func clone(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return append([]byte(nil), b...)
}

// UnmarshalCoin decodes a Coin.
func UnmarshalCoin(b []byte) (Coin, error) {
	const msg = "Coin"
	fs, err := fields(b, msg)
	if err != nil {
		return Coin{}, err
	}
	var c Coin
	for _, f := range fs {
		if err := wantType(msg, f, protowire.BytesType); err != nil {
			return Coin{}, err
		}
		switch f.num {
		case 1:
			c.Denom = string(f.bytes)
		case 2:
			c.Amount = string(f.bytes)
		default:
			return Coin{}, unknown(msg, f)
		}
	}
	return c, nil
}

// UnmarshalMsgSend decodes a MsgSend.
func UnmarshalMsgSend(b []byte) (MsgSend, error) {
	const msg = "MsgSend"
	fs, err := fields(b, msg)
	if err != nil {
		return MsgSend{}, err
	}
	var m MsgSend
	for _, f := range fs {
		if err := wantType(msg, f, protowire.BytesType); err != nil {
			return MsgSend{}, err
		}
		switch f.num {
		case 1:
			m.FromAddress = string(f.bytes)
		case 2:
			m.ToAddress = string(f.bytes)
		case 3:
			c, err := UnmarshalCoin(f.bytes)
			if err != nil {
				return MsgSend{}, err
			}
			m.Amount = append(m.Amount, c)
		default:
			return MsgSend{}, unknown(msg, f)
		}
	}
	return m, nil
}

// UnmarshalAny decodes an Any.
func UnmarshalAny(b []byte) (Any, error) {
	const msg = "Any"
	fs, err := fields(b, msg)
	if err != nil {
		return Any{}, err
	}
	var a Any
	for _, f := range fs {
		if err := wantType(msg, f, protowire.BytesType); err != nil {
			return Any{}, err
		}
		switch f.num {
		case 1:
			a.TypeURL = string(f.bytes)
		case 2:
			a.Value = clone(f.bytes)
		default:
			return Any{}, unknown(msg, f)
		}
	}
	return a, nil
}

// UnmarshalTxBody decodes a TxBody.
func UnmarshalTxBody(b []byte) (TxBody, error) {
	const msg = "TxBody"
	fs, err := fields(b, msg)
	if err != nil {
		return TxBody{}, err
	}
	var t TxBody
	for _, f := range fs {
		switch f.num {
		case 1:
			if err := wantType(msg, f, protowire.BytesType); err != nil {
				return TxBody{}, err
			}
			a, err := UnmarshalAny(f.bytes)
			if err != nil {
				return TxBody{}, err
			}
			t.Messages = append(t.Messages, a)
		case 2:
			if err := wantType(msg, f, protowire.BytesType); err != nil {
				return TxBody{}, err
			}
			t.Memo = string(f.bytes)
		case 3:
			if err := wantType(msg, f, protowire.VarintType); err != nil {
				return TxBody{}, err
			}
			t.TimeoutHeight = f.varint
		default:
			return TxBody{}, unknown(msg, f)
		}
	}
	return t, nil
}

// UnmarshalPubKey decodes a cosmos.crypto.secp256k1.PubKey and returns its key bytes.
func UnmarshalPubKey(b []byte) ([]byte, error) {
	const msg = "PubKey"
	fs, err := fields(b, msg)
	if err != nil {
		return nil, err
	}
	var key []byte
	for _, f := range fs {
		if f.num != 1 {
			return nil, unknown(msg, f)
		}
		if err := wantType(msg, f, protowire.BytesType); err != nil {
			return nil, err
		}
		key = clone(f.bytes)
	}
	return key, nil
}

func unmarshalModeInfo(b []byte) (uint64, error) {
	const msg = "ModeInfo"
	fs, err := fields(b, msg)
	if err != nil {
		return 0, err
	}
	var mode uint64
	for _, f := range fs {
		if f.num != 1 {
			// multi-signer modes are not supported
			return 0, unknown(msg, f)
		}
		if err := wantType(msg, f, protowire.BytesType); err != nil {
			return 0, err
		}
		inner, err := fields(f.bytes, "ModeInfo.Single")
		if err != nil {
			return 0, err
		}
		for _, g := range inner {
			if g.num != 1 {
				return 0, unknown("ModeInfo.Single", g)
			}
			if err := wantType("ModeInfo.Single", g, protowire.VarintType); err != nil {
				return 0, err
			}
			mode = g.varint
		}
	}
	return mode, nil
}

// UnmarshalSignerInfo decodes a SignerInfo.
func UnmarshalSignerInfo(b []byte) (SignerInfo, error) {
	const msg = "SignerInfo"
	fs, err := fields(b, msg)
	if err != nil {
		return SignerInfo{}, err
	}
	var s SignerInfo
	for _, f := range fs {
		switch f.num {
		case 1:
			if err := wantType(msg, f, protowire.BytesType); err != nil {
				return SignerInfo{}, err
			}
			a, err := UnmarshalAny(f.bytes)
			if err != nil {
				return SignerInfo{}, err
			}
			s.PublicKey = &a
		case 2:
			if err := wantType(msg, f, protowire.BytesType); err != nil {
				return SignerInfo{}, err
			}
			if s.Mode, err = unmarshalModeInfo(f.bytes); err != nil {
				return SignerInfo{}, err
			}
		case 3:
			if err := wantType(msg, f, protowire.VarintType); err != nil {
				return SignerInfo{}, err
			}
			s.Sequence = f.varint
		default:
			return SignerInfo{}, unknown(msg, f)
		}
	}
	return s, nil
}

// UnmarshalFee decodes a Fee.
func UnmarshalFee(b []byte) (Fee, error) {
	const msg = "Fee"
	fs, err := fields(b, msg)
	if err != nil {
		return Fee{}, err
	}
	var fee Fee
	for _, f := range fs {
		switch f.num {
		case 1:
			if err := wantType(msg, f, protowire.BytesType); err != nil {
				return Fee{}, err
			}
			c, err := UnmarshalCoin(f.bytes)
			if err != nil {
				return Fee{}, err
			}
			fee.Amount = append(fee.Amount, c)
		case 2:
			if err := wantType(msg, f, protowire.VarintType); err != nil {
				return Fee{}, err
			}
			fee.GasLimit = f.varint
		case 3:
			if err := wantType(msg, f, protowire.BytesType); err != nil {
				return Fee{}, err
			}
			fee.Payer = string(f.bytes)
		case 4:
			if err := wantType(msg, f, protowire.BytesType); err != nil {
				return Fee{}, err
			}
			fee.Granter = string(f.bytes)
		default:
			return Fee{}, unknown(msg, f)
		}
	}
	return fee, nil
}

// UnmarshalAuthInfo decodes an AuthInfo.
func UnmarshalAuthInfo(b []byte) (AuthInfo, error) {
	const msg = "AuthInfo"
	fs, err := fields(b, msg)
	if err != nil {
		return AuthInfo{}, err
	}
	var a AuthInfo
	for _, f := range fs {
		if err := wantType(msg, f, protowire.BytesType); err != nil {
			return AuthInfo{}, err
		}
		switch f.num {
		case 1:
			s, err := UnmarshalSignerInfo(f.bytes)
			if err != nil {
				return AuthInfo{}, err
			}
			a.SignerInfos = append(a.SignerInfos, s)
		case 2:
			if a.Fee, err = UnmarshalFee(f.bytes); err != nil {
				return AuthInfo{}, err
			}
		default:
			return AuthInfo{}, unknown(msg, f)
		}
	}
	return a, nil
}

// UnmarshalTxRaw decodes a TxRaw.
func UnmarshalTxRaw(b []byte) (TxRaw, error) {
	const msg = "TxRaw"
	fs, err := fields(b, msg)
	if err != nil {
		return TxRaw{}, err
	}
	var t TxRaw
	for _, f := range fs {
		if err := wantType(msg, f, protowire.BytesType); err != nil {
			return TxRaw{}, err
		}
		switch f.num {
		case 1:
			t.BodyBytes = clone(f.bytes)
		case 2:
			t.AuthInfoBytes = clone(f.bytes)
		case 3:
			t.Signatures = append(t.Signatures, append([]byte{}, f.bytes...))
		default:
			return TxRaw{}, unknown(msg, f)
		}
	}
	return t, nil
}

// DecodedTx is a TxRaw with its body and auth info decoded.
type DecodedTx struct {
	Raw      TxRaw
	Body     TxBody
	AuthInfo AuthInfo
}

// DecodeTx decodes transaction bytes as produced by TxRaw.Marshal.
func DecodeTx(txBytes []byte) (DecodedTx, error) {
	raw, err := UnmarshalTxRaw(txBytes)
	if err != nil {
		return DecodedTx{}, err
	}
	body, err := UnmarshalTxBody(raw.BodyBytes)
	if err != nil {
		return DecodedTx{}, err
	}
	auth, err := UnmarshalAuthInfo(raw.AuthInfoBytes)
	if err != nil {
		return DecodedTx{}, err
	}
	return DecodedTx{Raw: raw, Body: body, AuthInfo: auth}, nil
}

// SignDoc rebuilds the sign document for tx under the given chain and account.
func (tx DecodedTx) SignDoc(chainID string, accountNumber uint64) SignDoc {
	return SignDoc{
		BodyBytes:     tx.Raw.BodyBytes,
		AuthInfoBytes: tx.Raw.AuthInfoBytes,
		ChainID:       chainID,
		AccountNumber: accountNumber,
	}
}
