package integer

import (
	"math/big"

	"github.com/calebcase/fixbv/control"
)

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// FromInt returns the block holding i.
func FromInt(i *big.Int) *Block {
	value := new(big.Int).Abs(i).Bytes()
	if len(value) == 0 {
		value = []byte{0}
	}

	return &Block{
		Value:    value,
		Negative: i.Sign() < 0,
	}
}

// Int returns the block's value.
func (b Block) Int() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// zigzag returns the magnitude shifted left with the sign in bit 0.
func (b Block) zigzag() *big.Int {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	return i
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	data = b.zigzag().Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("invalid: size=0")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}

// Schema for an integer.
type Schema struct {
	Signed   bool
	Nullable bool
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode parses a block from the reader. A Null field leaves b.Value nil.
func (d *Decoder) Decode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return d.cd.Err()
		}

		return Error.New("unexpected end of input")
	}

	switch t := d.cd.Type(); {
	case t == control.Null && d.schema.Nullable:
		b.Value = nil
		b.Negative = false

		return nil
	case !control.IsData(t):
		return Error.New("unexpected field: %s", t.Abbr)
	}

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	if d.schema.Signed {
		return b.UnmarshalBinary(data)
	}

	b.Value = append([]byte(nil), data...)
	b.Negative = false

	return nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes a block to the writer. A nil block (or one with a nil
// value) is written as Null.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b == nil || b.Value == nil {
		if !e.schema.Nullable {
			return Error.New("invalid: null value for non-nullable schema")
		}

		return e.ce.Null()
	}

	if !e.schema.Signed && b.Negative {
		return Error.New("invalid: negative value for unsigned schema")
	}

	var data []byte

	if e.schema.Signed {
		data, err = b.MarshalBinary()
		if err != nil {
			return err
		}
	} else {
		data = new(big.Int).SetBytes(b.Value).Bytes()
		if len(data) == 0 {
			data = []byte{0}
		}
	}

	return e.ce.Data(data)
}
