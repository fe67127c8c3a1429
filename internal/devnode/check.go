package devnode

import (
	"fmt"
	"slices"

	"github.com/holiman/uint256"

	"cointransfer/internal/crypto"
	"cointransfer/internal/domain"
	"cointransfer/internal/protocol/txproto"
)

// CodeInvalidPubKey is reported when the signer key does not match the sender.
const CodeInvalidPubKey uint32 = 8

// parsedTx is a decoded single-MsgSend transaction.
type parsedTx struct {
	raw      txproto.DecodedTx
	signer   domain.Address
	to       domain.Address
	amount   []domain.Coin
	fee      *domain.Coin
	gasLimit uint64
	sequence uint64
	pubKey   domain.Secp256k1Public
}

func reject(code uint32, format string, args ...any) *domain.RejectedError {
	return &domain.RejectedError{Codespace: "sdk", Code: code, Log: fmt.Sprintf(format, args...)}
}

func (n *Node) coins(in []txproto.Coin) ([]domain.Coin, *domain.RejectedError) {
	out := make([]domain.Coin, 0, len(in))
	for _, c := range in {
		if !slices.Contains(n.opts.Denoms, c.Denom) {
			return nil, reject(CodeInvalidCoins, "%s%s: invalid coins", c.Amount, c.Denom)
		}
		amt, err := uint256.FromDecimal(c.Amount)
		if err != nil || amt.IsZero() {
			return nil, reject(CodeInvalidCoins, "%s%s: invalid coins", c.Amount, c.Denom)
		}
		out = append(out, domain.Coin{Denom: c.Denom, Amount: *amt})
	}
	return out, nil
}

// checkLocked decodes txBytes and runs the admission checks. The signature
// is verified only when verifySig is set; simulation sends none. Simulation
// also checks that the amount is spendable, while admission only checks the
// fee, as the send itself executes in the block.
func (n *Node) checkLocked(txBytes []byte, verifySig bool) (parsedTx, *domain.RejectedError) {
	dec, err := txproto.DecodeTx(txBytes)
	if err != nil {
		return parsedTx{}, reject(CodeTxDecode, "%v: tx parse error", err)
	}
	if len(dec.Body.Messages) != 1 || dec.Body.Messages[0].TypeURL != txproto.MsgSendTypeURL {
		return parsedTx{}, reject(CodeTxDecode, "expected exactly one %s: tx parse error", txproto.MsgSendTypeURL)
	}
	send, err := txproto.UnmarshalMsgSend(dec.Body.Messages[0].Value)
	if err != nil {
		return parsedTx{}, reject(CodeTxDecode, "%v: tx parse error", err)
	}
	tx := parsedTx{raw: dec, signer: domain.Address(send.FromAddress), to: domain.Address(send.ToAddress)}
	for _, a := range []domain.Address{tx.signer, tx.to} {
		if err := crypto.ValidateAddress(a, n.opts.Prefix); err != nil {
			return parsedTx{}, reject(CodeInvalidAddress, "invalid address %q: invalid address", a)
		}
	}
	if len(send.Amount) == 0 {
		return parsedTx{}, reject(CodeInvalidCoins, "empty amount: invalid coins")
	}
	var rej *domain.RejectedError
	if tx.amount, rej = n.coins(send.Amount); rej != nil {
		return parsedTx{}, rej
	}

	auth := dec.AuthInfo
	if len(auth.SignerInfos) != 1 {
		return parsedTx{}, reject(CodeUnauthorized, "wrong number of signers; expected 1, got %d: unauthorized", len(auth.SignerInfos))
	}
	si := auth.SignerInfos[0]
	if si.Mode != txproto.SignModeDirect {
		return parsedTx{}, reject(CodeUnauthorized, "unsupported sign mode %d: unauthorized", si.Mode)
	}
	if si.PublicKey == nil || si.PublicKey.TypeURL != txproto.Secp256k1PubKeyTypeURL {
		return parsedTx{}, reject(CodeInvalidPubKey, "missing or unsupported public key: invalid pubkey")
	}
	keyBytes, err := txproto.UnmarshalPubKey(si.PublicKey.Value)
	if err != nil {
		return parsedTx{}, reject(CodeInvalidPubKey, "%v: invalid pubkey", err)
	}
	if tx.pubKey, err = crypto.ParsePublicKey(keyBytes); err != nil {
		return parsedTx{}, reject(CodeInvalidPubKey, "%v: invalid pubkey", err)
	}
	if addr, err := crypto.AddressFromPublicKey(n.opts.Prefix, tx.pubKey); err != nil || addr != tx.signer {
		return parsedTx{}, reject(CodeInvalidPubKey, "pubKey does not match signer address %s with signer index: 0: invalid pubkey", tx.signer)
	}
	tx.sequence = si.Sequence
	tx.gasLimit = auth.Fee.GasLimit

	if len(auth.Fee.Amount) > 1 {
		return parsedTx{}, reject(CodeInvalidCoins, "fee must be a single coin: invalid coins")
	}
	if len(auth.Fee.Amount) == 1 {
		fee, rej := n.coins(auth.Fee.Amount)
		if rej != nil {
			return parsedTx{}, rej
		}
		tx.fee = &fee[0]
	}

	acc, ok := n.accounts[tx.signer]
	if !ok {
		return parsedTx{}, reject(CodeUnknownAddress, "account %s does not exist: unknown address", tx.signer)
	}
	if tx.sequence != acc.checkSeq {
		return parsedTx{}, reject(CodeInvalidSequence, "account sequence mismatch, expected %d, got %d: incorrect account sequence", acc.checkSeq, tx.sequence)
	}

	if verifySig {
		if len(dec.Raw.Signatures) != 1 || len(dec.Raw.Signatures[0]) != len(domain.Signature{}) {
			return parsedTx{}, reject(CodeUnauthorized, "invalid signature: unauthorized")
		}
		doc := dec.SignDoc(n.opts.ChainID, acc.number).Marshal()
		if !crypto.VerifySHA256(tx.pubKey, doc, domain.Signature(dec.Raw.Signatures[0])) {
			return parsedTx{}, reject(CodeUnauthorized,
				"signature verification failed; please verify account number (%d) and chain-id (%s): unauthorized",
				acc.number, n.opts.ChainID)
		}
	}

	need := map[string]*uint256.Int{}
	add := func(c domain.Coin) {
		if _, ok := need[c.Denom]; !ok {
			need[c.Denom] = new(uint256.Int)
		}
		need[c.Denom].Add(need[c.Denom], &c.Amount)
	}
	if tx.fee != nil {
		add(*tx.fee)
	}
	if !verifySig {
		for _, c := range tx.amount {
			add(c)
		}
	}
	for denom, amt := range need {
		if have := acc.balance(denom); have.Lt(amt) {
			return parsedTx{}, reject(CodeInsufficientFunds, "spendable balance %s%s is smaller than %s%s: insufficient funds", have.Dec(), denom, amt.Dec(), denom)
		}
	}
	return tx, nil
}
