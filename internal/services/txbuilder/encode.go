package txbuilder

import (
	"cointransfer/internal/domain"
	"cointransfer/internal/protocol/txproto"
)

func protoCoins(c domain.Coin) []txproto.Coin {
	if !c.IsPositive() {
		return nil
	}
	return []txproto.Coin{{Denom: c.Denom, Amount: c.AmountString()}}
}

// BodyBytes returns the canonical TxBody encoding of tx: one MsgSend and
// the memo.
func BodyBytes(tx domain.UnsignedTransaction) []byte {
	send := txproto.MsgSend{
		FromAddress: tx.Sender.String(),
		ToAddress:   tx.Recipient.String(),
		Amount:      protoCoins(tx.Amount),
	}
	body := txproto.TxBody{
		Messages: []txproto.Any{{TypeURL: txproto.MsgSendTypeURL, Value: send.Marshal()}},
		Memo:     tx.Memo,
	}
	return body.Marshal()
}

// AuthInfoBytes returns the canonical AuthInfo encoding of tx signed by pub
// in SIGN_MODE_DIRECT.
func AuthInfoBytes(tx domain.UnsignedTransaction, pub domain.Secp256k1Public) []byte {
	pk := txproto.PubKeyAny(pub[:])
	auth := txproto.AuthInfo{
		SignerInfos: []txproto.SignerInfo{{
			PublicKey: &pk,
			Mode:      txproto.SignModeDirect,
			Sequence:  tx.Sequence,
		}},
		Fee: txproto.Fee{
			Amount:   protoCoins(tx.Fee.Amount),
			GasLimit: tx.Fee.GasLimit,
		},
	}
	return auth.Marshal()
}

// SignDocBytes returns the bytes a signer signs for tx.
func SignDocBytes(tx domain.UnsignedTransaction, bodyBytes, authInfoBytes []byte) []byte {
	doc := txproto.SignDoc{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		ChainID:       tx.ChainID.String(),
		AccountNumber: tx.AccountNumber,
	}
	return doc.Marshal()
}

// TxBytes returns the broadcast encoding of a transaction with the given
// signature. An empty signature yields the form accepted by simulation.
func TxBytes(bodyBytes, authInfoBytes, signature []byte) []byte {
	raw := txproto.TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		Signatures:    [][]byte{signature},
	}
	return raw.Marshal()
}
