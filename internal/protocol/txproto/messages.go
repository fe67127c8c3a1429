package txproto

// Type URLs of the Any-wrapped messages.
const (
	MsgSendTypeURL         = "/cosmos.bank.v1beta1.MsgSend"
	Secp256k1PubKeyTypeURL = "/cosmos.crypto.secp256k1.PubKey"
)

// SignModeDirect is cosmos.tx.signing.v1beta1.SignMode SIGN_MODE_DIRECT.
const SignModeDirect uint64 = 1

// Coin is cosmos.base.v1beta1.Coin. Amount is a base-10 integer string.
type Coin struct {
	Denom  string
	Amount string
}

// MsgSend is cosmos.bank.v1beta1.MsgSend.
type MsgSend struct {
	FromAddress string
	ToAddress   string
	Amount      []Coin
}

// Any is google.protobuf.Any.
type Any struct {
	TypeURL string
	Value   []byte
}

// TxBody is cosmos.tx.v1beta1.TxBody (extension options are not used).
type TxBody struct {
	Messages      []Any
	Memo          string
	TimeoutHeight uint64
}

// SignerInfo is cosmos.tx.v1beta1.SignerInfo with a single-signer mode.
type SignerInfo struct {
	PublicKey *Any
	Mode      uint64
	Sequence  uint64
}

// Fee is cosmos.tx.v1beta1.Fee.
type Fee struct {
	Amount   []Coin
	GasLimit uint64
	Payer    string
	Granter  string
}

// AuthInfo is cosmos.tx.v1beta1.AuthInfo.
type AuthInfo struct {
	SignerInfos []SignerInfo
	Fee         Fee
}

// SignDoc is cosmos.tx.v1beta1.SignDoc.
type SignDoc struct {
	BodyBytes     []byte
	AuthInfoBytes []byte
	ChainID       string
	AccountNumber uint64
}

// TxRaw is cosmos.tx.v1beta1.TxRaw.
type TxRaw struct {
	BodyBytes     []byte
	AuthInfoBytes []byte
	Signatures    [][]byte
}
