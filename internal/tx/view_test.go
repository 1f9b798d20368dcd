package tx

import (
	"testing"
)

func TestTransaction_View(t *testing.T) {
	tr, err := Parse(mustHex(t, coinbaseTxHex), Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	v, err := tr.View()
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}

	if v.Data != coinbaseTxHex {
		t.Errorf("data = %s, want %s", v.Data, coinbaseTxHex)
	}
	if v.Version != 1 {
		t.Errorf("version = %d, want 1", v.Version)
	}
	if v.LockTime != 0 {
		t.Errorf("locktime = %d, want 0", v.LockTime)
	}
	wantHash, err := tr.LEHexHash()
	if err != nil {
		t.Fatalf("LEHexHash() error = %v", err)
	}
	if v.Hash != wantHash {
		t.Errorf("hash = %s, want %s", v.Hash, wantHash)
	}

	if len(v.Inputs) != 1 {
		t.Fatalf("inputs = %d, want 1", len(v.Inputs))
	}
	in := v.Inputs[0]
	if in.PrevOutHash != "0000000000000000000000000000000000000000000000000000000000000000" {
		t.Errorf("prevout hash = %s, want null", in.PrevOutHash)
	}
	if in.ScriptSig != "5100" {
		t.Errorf("script sig = %s, want 5100", in.ScriptSig)
	}
	if in.PrevOutIndex != 0xffffffff || in.Sequence != 0xffffffff {
		t.Errorf("prevout idx/seqno = %d/%d, want max", in.PrevOutIndex, in.Sequence)
	}

	if len(v.Outputs) != 1 {
		t.Fatalf("outputs = %d, want 1", len(v.Outputs))
	}
	if v.Outputs[0].Amount != 0 || v.Outputs[0].PKScript != "" {
		t.Errorf("output = %+v, want zero amount and empty script", v.Outputs[0])
	}
}
