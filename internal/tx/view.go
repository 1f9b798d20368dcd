package tx

import "encoding/hex"

// View is a plain snapshot of a transaction for display and logging, with
// hashes and scripts hex-encoded. It is not used for round-tripping and
// carries no invariants beyond reflecting the current field values.
type View struct {
	Inputs   []InputView  `json:"inputs"`
	Outputs  []OutputView `json:"outputs"`
	Data     string       `json:"data"`
	LockTime uint32       `json:"locktime"`
	Version  uint32       `json:"version"`
	Hash     string       `json:"hash"`
}

// InputView mirrors Input with hex-encoded byte fields.
type InputView struct {
	PrevOutHash  string `json:"prevout_hash"`
	PrevOutIndex uint32 `json:"prevout_idx"`
	ScriptSig    string `json:"script_sig"`
	Sequence     uint32 `json:"seqno"`
}

// OutputView mirrors Output with a hex-encoded script.
type OutputView struct {
	Amount   uint64 `json:"amount"`
	PKScript string `json:"script_pub_key"`
}

// View builds the snapshot, assembling the raw bytes and hash as needed.
func (t *Transaction) View() (View, error) {
	raw, err := t.Raw()
	if err != nil {
		return View{}, err
	}
	hash, err := t.LEHexHash()
	if err != nil {
		return View{}, err
	}

	v := View{
		Inputs:   make([]InputView, 0, len(t.Inputs)),
		Outputs:  make([]OutputView, 0, len(t.Outputs)),
		Data:     hex.EncodeToString(raw),
		LockTime: t.LockTime,
		Version:  t.version,
		Hash:     hash,
	}
	for _, in := range t.Inputs {
		v.Inputs = append(v.Inputs, InputView{
			PrevOutHash:  hex.EncodeToString(in.PrevOutHash[:]),
			PrevOutIndex: in.PrevOutIndex,
			ScriptSig:    hex.EncodeToString(in.ScriptSig),
			Sequence:     in.Sequence,
		})
	}
	for _, out := range t.Outputs {
		v.Outputs = append(v.Outputs, OutputView{
			Amount:   out.Amount,
			PKScript: hex.EncodeToString(out.PKScript),
		})
	}
	return v, nil
}
