package tx

import "github.com/btcsuite/btcd/txscript"

// PushScript encodes each value as a minimal data push and concatenates the
// pushes. Values -1 and 1 through 16 use the small-integer opcodes.
func PushScript(items ...int64) ([]byte, error) {
	b := txscript.NewScriptBuilder()
	for _, item := range items {
		b.AddInt64(item)
	}
	return b.Script()
}

// SigOpCount returns the number of signature operations in a script, with
// multisig opcodes weighted at their maximum key count.
func SigOpCount(script []byte) int {
	return txscript.GetSigOpCount(script)
}
