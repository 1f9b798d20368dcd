// Package tx implements the bit-exact binary codec for cryptocurrency
// transactions: parsing raw bytes into structured inputs and outputs, and
// serializing them back into the canonical layout used for hashing, signing
// and relay.
package tx

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/txkit7000-backend/pkg/safe"
)

const (
	// minInputPayload is the smallest possible encoded input: prevout hash,
	// prevout index, a one-byte script length and the sequence number.
	minInputPayload = chainhash.HashSize + 4 + 1 + 4
	// minOutputPayload is the smallest possible encoded output: amount plus
	// a one-byte script length.
	minOutputPayload = 8 + 1
)

var (
	// ErrTrailingData reports bytes left over after the locktime field.
	ErrTrailingData = errors.New("trailing data after locktime")
	// ErrNoRawData reports a disassembly attempt with no raw bytes present.
	ErrNoRawData = errors.New("no raw transaction data")
	// ErrNoInputs reports a split assembly of a transaction without inputs.
	ErrNoInputs = errors.New("transaction has no inputs")
)

// Options selects which optional wire fields a Transaction carries.
// ProofOfStake enables the 4-byte timestamp emitted after the version field;
// Messages enables the length-prefixed message emitted after locktime.
type Options struct {
	ProofOfStake bool
	Messages     bool
}

// Transaction is a mutable aggregate over ordered inputs and outputs plus the
// fixed header fields. It owns the raw byte buffer and the transaction hash,
// both derived lazily and cached; Disassemble and Assemble invalidate the
// hash. Instances are not safe for concurrent use.
type Transaction struct {
	Inputs   []Input
	Outputs  []Output
	LockTime uint32

	// NTime is the proof-of-stake timestamp, non-nil only when the
	// transaction was created with Options.ProofOfStake.
	NTime *int32
	// Message is the optional trailing message, non-nil only when the
	// transaction was created with Options.Messages. An empty non-nil
	// message is still emitted.
	Message []byte
	// Fees is informational only and never serialized.
	Fees *int64

	version    uint32
	versionSet bool

	raw  []byte
	hash []byte
}

// New returns an empty Transaction with the optional wire fields selected by
// opts enabled.
func New(opts Options) *Transaction {
	t := &Transaction{}
	if opts.ProofOfStake {
		t.NTime = new(int32)
	}
	if opts.Messages {
		t.Message = []byte{}
	}
	return t
}

// Parse disassembles raw into a fresh Transaction.
func Parse(raw []byte, opts Options) (*Transaction, error) {
	t := New(opts)
	if err := t.Disassemble(raw); err != nil {
		return nil, err
	}
	return t, nil
}

// SetVersion pins the transaction version, overriding the lazy default.
func (t *Transaction) SetVersion(v uint32) {
	t.version = v
	t.versionSet = true
}

// Version reports the transaction version and whether one has been set.
// Before parsing, assembly or SetVersion the version is unset.
func (t *Transaction) Version() (uint32, bool) {
	return t.version, t.versionSet
}

// Disassemble parses raw into the structured fields, replacing any previous
// contents. Passing nil reuses the stored raw buffer. The buffer must end
// exactly at the locktime field; a violation leaves the Transaction partially
// populated and it must be discarded.
//
// The optional timestamp and message fields are never parsed, only written by
// Assemble: transactions carrying them are built in memory rather than
// round-tripped through the parser.
func (t *Transaction) Disassemble(raw []byte) error {
	if raw != nil {
		t.raw = append([]byte(nil), raw...)
	}
	if t.raw == nil {
		return ErrNoRawData
	}
	r := bytes.NewReader(t.raw)

	version, err := readUint32(r)
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}
	t.version = version
	t.versionSet = true

	inputCount, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return fmt.Errorf("read input count: %w", err)
	}
	if inputCount > uint64(r.Len())/minInputPayload {
		return fmt.Errorf("input count %d exceeds remaining %d bytes", inputCount, r.Len())
	}
	t.Inputs = make([]Input, 0, inputCount)
	for i := uint64(0); i < inputCount; i++ {
		var in Input
		if _, err := io.ReadFull(r, in.PrevOutHash[:]); err != nil {
			return fmt.Errorf("input %d: read prevout hash: %w", i, err)
		}
		if in.PrevOutIndex, err = readUint32(r); err != nil {
			return fmt.Errorf("input %d: read prevout index: %w", i, err)
		}
		scriptLen, err := wire.ReadVarInt(r, 0)
		if err != nil {
			return fmt.Errorf("input %d: read script length: %w", i, err)
		}
		if scriptLen > uint64(r.Len()) {
			return fmt.Errorf("input %d: script length %d exceeds remaining %d bytes", i, scriptLen, r.Len())
		}
		in.ScriptSig = make([]byte, scriptLen)
		if _, err := io.ReadFull(r, in.ScriptSig); err != nil {
			return fmt.Errorf("input %d: read script: %w", i, err)
		}
		if in.Sequence, err = readUint32(r); err != nil {
			return fmt.Errorf("input %d: read sequence: %w", i, err)
		}
		t.Inputs = append(t.Inputs, in)
	}

	outputCount, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return fmt.Errorf("read output count: %w", err)
	}
	if outputCount > uint64(r.Len())/minOutputPayload {
		return fmt.Errorf("output count %d exceeds remaining %d bytes", outputCount, r.Len())
	}
	t.Outputs = make([]Output, 0, outputCount)
	for i := uint64(0); i < outputCount; i++ {
		var out Output
		if out.Amount, err = readUint64(r); err != nil {
			return fmt.Errorf("output %d: read amount: %w", i, err)
		}
		scriptLen, err := wire.ReadVarInt(r, 0)
		if err != nil {
			return fmt.Errorf("output %d: read script length: %w", i, err)
		}
		if scriptLen > uint64(r.Len()) {
			return fmt.Errorf("output %d: script length %d exceeds remaining %d bytes", i, scriptLen, r.Len())
		}
		out.PKScript = make([]byte, scriptLen)
		if _, err := io.ReadFull(r, out.PKScript); err != nil {
			return fmt.Errorf("output %d: read script: %w", i, err)
		}
		t.Outputs = append(t.Outputs, out)
	}

	if t.LockTime, err = readUint32(r); err != nil {
		return fmt.Errorf("read locktime: %w", err)
	}
	t.hash = nil
	if r.Len() != 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailingData, r.Len())
	}
	return nil
}

// ReleaseRaw drops the owned raw buffer to reclaim memory. The structured
// fields remain authoritative; the next Raw or Hash call reassembles.
func (t *Transaction) ReleaseRaw() {
	t.raw = nil
}

// Assemble serializes the structured fields into the canonical byte layout,
// stores the result as the raw buffer and invalidates the cached hash. When
// no version has been set it defaults to 2 for message-carrying transactions
// and 1 otherwise.
func (t *Transaction) Assemble() ([]byte, error) {
	raw, _, err := t.assemble()
	return raw, err
}

// AssembleSplit assembles like Assemble but returns the buffer in two parts,
// cut immediately before the final input's sequence number. Mining workflows
// use the boundary to rewrite the coinbase script without reserializing the
// remainder.
func (t *Transaction) AssembleSplit() ([]byte, []byte, error) {
	if len(t.Inputs) == 0 {
		return nil, nil, ErrNoInputs
	}
	raw, splitPoint, err := t.assemble()
	if err != nil {
		return nil, nil, err
	}
	return raw[:splitPoint], raw[splitPoint:], nil
}

func (t *Transaction) assemble() ([]byte, int, error) {
	if !t.versionSet {
		if t.Message != nil {
			t.version = 2
		} else {
			t.version = 1
		}
		t.versionSet = true
	}

	var buf bytes.Buffer
	writeUint32(&buf, t.version)
	if t.NTime != nil {
		writeUint32(&buf, uint32(*t.NTime))
	}

	inputCount, err := safe.Uint64(len(t.Inputs))
	if err != nil {
		return nil, 0, fmt.Errorf("input count: %w", err)
	}
	if err := wire.WriteVarInt(&buf, 0, inputCount); err != nil {
		return nil, 0, fmt.Errorf("write input count: %w", err)
	}
	splitPoint := 0
	for i, in := range t.Inputs {
		buf.Write(in.PrevOutHash[:])
		writeUint32(&buf, in.PrevOutIndex)
		if err := wire.WriteVarInt(&buf, 0, uint64(len(in.ScriptSig))); err != nil {
			return nil, 0, fmt.Errorf("input %d: write script length: %w", i, err)
		}
		buf.Write(in.ScriptSig)
		splitPoint = buf.Len()
		writeUint32(&buf, in.Sequence)
	}

	outputCount, err := safe.Uint64(len(t.Outputs))
	if err != nil {
		return nil, 0, fmt.Errorf("output count: %w", err)
	}
	if err := wire.WriteVarInt(&buf, 0, outputCount); err != nil {
		return nil, 0, fmt.Errorf("write output count: %w", err)
	}
	for i, out := range t.Outputs {
		writeUint64(&buf, out.Amount)
		if err := wire.WriteVarInt(&buf, 0, uint64(len(out.PKScript))); err != nil {
			return nil, 0, fmt.Errorf("output %d: write script length: %w", i, err)
		}
		buf.Write(out.PKScript)
	}

	writeUint32(&buf, t.LockTime)

	if t.Message != nil {
		if err := wire.WriteVarBytes(&buf, 0, t.Message); err != nil {
			return nil, 0, fmt.Errorf("write message: %w", err)
		}
	}

	t.raw = buf.Bytes()
	t.hash = nil
	return t.raw, splitPoint, nil
}

// Raw returns the canonical bytes, assembling them first when absent.
func (t *Transaction) Raw() ([]byte, error) {
	if t.raw == nil {
		return t.Assemble()
	}
	return t.raw, nil
}

// IsCoinbase reports whether the first input spends the null previous output.
// Like bitcoind, only the first input's hash is checked; the prevout index is
// ignored.
func (t *Transaction) IsCoinbase() bool {
	return len(t.Inputs) > 0 && t.Inputs[0].PrevOutHash == nullPrevOut
}

// Hash returns the transaction identifier: the double-SHA256 of the raw bytes
// with the digest reversed into display order. Computed lazily on first
// access and cached until the next disassembly or assembly; assembles the raw
// buffer first when absent.
func (t *Transaction) Hash() ([]byte, error) {
	if t.hash == nil {
		raw, err := t.Raw()
		if err != nil {
			return nil, err
		}
		digest := chainhash.DoubleHashB(raw)
		reverseBytes(digest)
		t.hash = digest
	}
	return t.hash, nil
}

// BEHash returns the identifier in internal digest byte order, the reverse
// of Hash.
func (t *Transaction) BEHash() ([]byte, error) {
	h, err := t.Hash()
	if err != nil {
		return nil, err
	}
	be := append([]byte(nil), h...)
	reverseBytes(be)
	return be, nil
}

// LEHexHash returns the hex encoding of Hash.
func (t *Transaction) LEHexHash() (string, error) {
	h, err := t.Hash()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h), nil
}

// BEHexHash returns the hex encoding of BEHash.
func (t *Transaction) BEHexHash() (string, error) {
	h, err := t.BEHash()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h), nil
}

func readUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func readUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
