package txproto_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cointransfer/internal/protocol/txproto"
)

func TestCoin_Marshal(t *testing.T) {
	got := txproto.Coin{Denom: "uosmo", Amount: "1000"}.Marshal()
	assert.Equal(t, "0a05756f736d6f120431303030", hex.EncodeToString(got))
}

func TestMarshal_OmitsDefaults(t *testing.T) {
	assert.Empty(t, txproto.Coin{}.Marshal())
	assert.Empty(t, txproto.TxBody{}.Marshal())
	assert.Empty(t, txproto.SignDoc{}.Marshal())

	// fee is always present, even when empty
	assert.Equal(t, "1200", hex.EncodeToString(txproto.AuthInfo{}.Marshal()))
}

func TestSignerInfo_Marshal(t *testing.T) {
	si := txproto.SignerInfo{Mode: txproto.SignModeDirect, Sequence: 5}
	assert.Equal(t, "12040a0208011805", hex.EncodeToString(si.Marshal()))

	pk := txproto.PubKeyAny([]byte{0x02, 0xaa})
	si = txproto.SignerInfo{PublicKey: &pk, Mode: txproto.SignModeDirect}
	b := si.Marshal()
	// 0a <len> (0a 1f "/cosmos.crypto.secp256k1.PubKey" 12 04 0a 02 02 aa)
	assert.Equal(t, byte(0x0a), b[0])
	assert.Equal(t, byte(2+len(txproto.Secp256k1PubKeyTypeURL)+6), b[1])
	assert.Equal(t, "12040a020801", hex.EncodeToString(b[len(b)-6:]))
}

func TestSignDoc_Marshal(t *testing.T) {
	doc := txproto.SignDoc{
		BodyBytes:     []byte{0x01},
		AuthInfoBytes: []byte{0x02, 0x03},
		ChainID:       "c",
		AccountNumber: 300,
	}
	assert.Equal(t, "0a0101120202031a016320ac02", hex.EncodeToString(doc.Marshal()))
}

func TestTxRaw_KeepsEmptySignature(t *testing.T) {
	raw := txproto.TxRaw{BodyBytes: []byte{1}, Signatures: [][]byte{{}}}
	assert.Equal(t, "0a01011a00", hex.EncodeToString(raw.Marshal()))
}

func sampleTx() (txproto.TxBody, txproto.AuthInfo) {
	send := txproto.MsgSend{
		FromAddress: "osmo15yk64u7zc9g9k2yr2wmzeva5qgwxps6ywful0v",
		ToAddress:   "osmo19rl4cm2hmr8afy4kldpxz3fka4jguq0a5m7df8",
		Amount:      []txproto.Coin{{Denom: "uosmo", Amount: "1000"}},
	}
	body := txproto.TxBody{
		Messages: []txproto.Any{{TypeURL: txproto.MsgSendTypeURL, Value: send.Marshal()}},
		Memo:     "hello",
	}
	pk := txproto.PubKeyAny(make([]byte, 33))
	auth := txproto.AuthInfo{
		SignerInfos: []txproto.SignerInfo{{PublicKey: &pk, Mode: txproto.SignModeDirect, Sequence: 7}},
		Fee:         txproto.Fee{Amount: []txproto.Coin{{Denom: "uosmo", Amount: "5000"}}, GasLimit: 200000},
	}
	return body, auth
}

func TestDecodeTx(t *testing.T) {
	body, auth := sampleTx()
	raw := txproto.TxRaw{
		BodyBytes:     body.Marshal(),
		AuthInfoBytes: auth.Marshal(),
		Signatures:    [][]byte{make([]byte, 64)},
	}

	tx, err := txproto.DecodeTx(raw.Marshal())
	require.NoError(t, err)
	assert.Equal(t, body, tx.Body)
	assert.Equal(t, auth, tx.AuthInfo)
	require.Len(t, tx.Raw.Signatures, 1)
	assert.Len(t, tx.Raw.Signatures[0], 64)

	send, err := txproto.UnmarshalMsgSend(tx.Body.Messages[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "osmo19rl4cm2hmr8afy4kldpxz3fka4jguq0a5m7df8", send.ToAddress)

	key, err := txproto.UnmarshalPubKey(tx.AuthInfo.SignerInfos[0].PublicKey.Value)
	require.NoError(t, err)
	assert.Len(t, key, 33)

	doc := tx.SignDoc("osmo-test-5", 12)
	assert.Equal(t, raw.BodyBytes, doc.BodyBytes)
	assert.Equal(t, uint64(12), doc.AccountNumber)
}

func TestDecode_RejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"truncated length":  "0a05756f",
		"unknown field":     "2a0161",
		"wrong wire type":   "0801",
		"fixed64 wire type": "09" + "0000000000000000",
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			b, err := hex.DecodeString(h)
			require.NoError(t, err)
			_, err = txproto.UnmarshalCoin(b)
			assert.ErrorIs(t, err, txproto.ErrMalformed)
		})
	}

	_, err := txproto.DecodeTx([]byte{0x0a, 0x02, 0x42, 0x00})
	assert.ErrorIs(t, err, txproto.ErrMalformed)
}
