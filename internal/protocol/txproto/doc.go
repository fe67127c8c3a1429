// Package txproto encodes and decodes the Cosmos SDK transaction messages
// needed for a bank transfer signed in SIGN_MODE_DIRECT.
//
// # Messages
//
//	cosmos.base.v1beta1.Coin           denom=1 amount=2
//	cosmos.bank.v1beta1.MsgSend        from_address=1 to_address=2 amount=3
//	google.protobuf.Any                type_url=1 value=2
//	cosmos.tx.v1beta1.TxBody           messages=1 memo=2 timeout_height=3
//	cosmos.crypto.secp256k1.PubKey     key=1
//	cosmos.tx.v1beta1.ModeInfo         single=1 { mode=1 }
//	cosmos.tx.v1beta1.SignerInfo       public_key=1 mode_info=2 sequence=3
//	cosmos.tx.v1beta1.Fee              amount=1 gas_limit=2 payer=3 granter=4
//	cosmos.tx.v1beta1.AuthInfo         signer_infos=1 fee=2
//	cosmos.tx.v1beta1.SignDoc          body_bytes=1 auth_info_bytes=2 chain_id=3 account_number=4
//	cosmos.tx.v1beta1.TxRaw            body_bytes=1 auth_info_bytes=2 signatures=3
//
// # Encoding rules
//
// Fields are written in ascending field-number order and proto3 default
// values (empty strings, zero integers, empty bytes) are omitted, which is
// the canonical form the network re-derives when verifying signatures.
// Decoding rejects unknown fields in the messages it understands, so a
// node built on this package sees exactly what was signed.
package txproto
