package tx

import (
	"fmt"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// nullPrevOut is the all-zero previous-output hash that marks a coinbase
// input.
var nullPrevOut chainhash.Hash

// Input references one spent output of a prior transaction together with the
// unlocking script and sequence number. PrevOutHash holds the bytes exactly
// as they appear on the wire. Inputs are never mutated after construction.
type Input struct {
	PrevOutHash  chainhash.Hash
	PrevOutIndex uint32
	ScriptSig    []byte
	Sequence     uint32
}

// CoinbaseInput builds the block-reward input for a block at the given
// height. BIP 34 requires the height to be the first pushed script element;
// extraPush values are pushed after it and extraScriptSig is appended
// verbatim. The input references the null prevout with index 0xFFFFFFFF and
// sequence 0.
func CoinbaseInput(height int64, extraPush []int64, extraScriptSig []byte) (Input, error) {
	script, err := PushScript(append([]int64{height}, extraPush...)...)
	if err != nil {
		return Input{}, fmt.Errorf("coinbase script: %w", err)
	}
	return Input{
		PrevOutHash:  nullPrevOut,
		PrevOutIndex: math.MaxUint32,
		ScriptSig:    append(script, extraScriptSig...),
		Sequence:     0,
	}, nil
}
