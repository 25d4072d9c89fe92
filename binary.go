package fixbv

import (
	"bytes"
	"math/big"

	"github.com/calebcase/fixbv/control"
	"github.com/calebcase/fixbv/fixed"
	"github.com/calebcase/fixbv/integer"
)

var boundSchema = integer.Schema{
	Signed:   true,
	Nullable: true,
}

func boundBlock(b *big.Int) *integer.Block {
	if b == nil {
		return nil
	}

	return integer.FromInt(b)
}

// EncodeTo writes n as a fixed block followed by its lower and upper
// bounds. Missing bounds are written as Null. Flags are not persisted.
func (n *Number) EncodeTo(ce control.Encoder) error {
	err := fixed.NewEncoder(ce).Encode(fixed.New(n.si, n.shift))
	if err != nil {
		return err
	}

	ie := integer.NewEncoder(boundSchema, ce)

	err = ie.Encode(boundBlock(n.min))
	if err != nil {
		return err
	}

	return ie.Encode(boundBlock(n.max))
}

// DecodeFrom reads a number written by EncodeTo. The decoded value is
// validated against its decoded bounds.
func DecodeFrom(cd control.Decoder, opts ...Option) (*Number, error) {
	fb := &fixed.Block{}

	err := fixed.NewDecoder(cd).Decode(fb)
	if err != nil {
		return nil, err
	}

	si, shift, err := fb.Parts()
	if err != nil {
		return nil, err
	}

	id := integer.NewDecoder(boundSchema, cd)

	var lo, hi integer.Block

	err = id.Decode(&lo)
	if err != nil {
		return nil, err
	}

	err = id.Decode(&hi)
	if err != nil {
		return nil, err
	}

	n, err := New(si, shift, opts...)
	if err != nil {
		return nil, err
	}

	switch {
	case lo.Value == nil && hi.Value == nil:
		return n, nil
	case lo.Value == nil || hi.Value == nil:
		return nil, UsageError.New("invalid: only one bound present")
	}

	err = n.SetBounds(lo.Int(), hi.Int())
	if err != nil {
		return nil, err
	}

	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (n *Number) MarshalBinary() ([]byte, error) {
	buf := &bytes.Buffer{}

	err := n.EncodeTo(control.NewEncoder(buf))
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The flags of n are
// kept.
func (n *Number) UnmarshalBinary(data []byte) error {
	d, err := DecodeFrom(control.NewDecoder(bytes.NewReader(data)))
	if err != nil {
		return err
	}

	n.si, n.shift = d.si, d.shift
	n.min, n.max = d.min, d.max

	return nil
}
