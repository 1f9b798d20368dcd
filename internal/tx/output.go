package tx

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/txscript"
)

const hash160Size = 20

// Output carries an amount in the smallest currency unit and the locking
// script that encumbers it. Outputs are never mutated after construction.
type Output struct {
	Amount   uint64
	PKScript []byte
}

// PayToAddressOutput builds an output locking amount to the holder of the
// given base58check address, using the standard pay-to-pubkey-hash template
// OP_DUP OP_HASH160 <hash160> OP_EQUALVERIFY OP_CHECKSIG.
func PayToAddressOutput(amount uint64, address string) (Output, error) {
	hash160, _, err := base58.CheckDecode(address)
	if err != nil {
		return Output{}, fmt.Errorf("decode address %q: %w", address, err)
	}
	if len(hash160) != hash160Size {
		return Output{}, fmt.Errorf("address %q payload is %d bytes, want %d",
			address, len(hash160), hash160Size)
	}
	script, err := txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).
		AddData(hash160).
		AddOp(txscript.OP_EQUALVERIFY).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		return Output{}, fmt.Errorf("build p2pkh script: %w", err)
	}
	return Output{Amount: amount, PKScript: script}, nil
}
