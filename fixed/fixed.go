package fixed

import (
	"math/big"

	"github.com/calebcase/fixbv/control"
	"github.com/calebcase/fixbv/integer"
)

// maxShiftSize is the largest shift size code.
const maxShiftSize = 0b11

// Block is a fixed point base 2 number.
type Block struct {
	Value     *integer.Block
	Shift     *integer.Block
	ShiftSize uint8
}

// New returns the block for value * 2^shift.
func New(value *big.Int, shift int) *Block {
	return &Block{
		Value: integer.FromInt(value),
		Shift: integer.FromInt(big.NewInt(int64(shift))),
	}
}

// Parts returns the stored integer and shift held by the block.
func (b Block) Parts() (value *big.Int, shift int, err error) {
	if b.Value == nil {
		return nil, 0, Error.New("invalid: missing value")
	}

	value = b.Value.Int()

	if b.Shift == nil {
		return value, 0, nil
	}

	s := b.Shift.Int()
	if !s.IsInt64() || s.BitLen() > 8*maxShiftSize-3 {
		return nil, 0, Error.New("invalid: shift=%s out of range", s)
	}

	return value, int(s.Int64()), nil
}

func zigzag(b *integer.Block) (*big.Int, error) {
	data, err := b.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetBytes(data), nil
}

func unzigzag(i *big.Int) (*integer.Block, error) {
	b := &integer.Block{}

	data := i.Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}

	err := b.UnmarshalBinary(data)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler. ShiftSize is
// recomputed from the shift.
func (b *Block) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	if b.Value == nil {
		return nil, Error.New("invalid: missing value")
	}

	v, err := zigzag(b.Value)
	if err != nil {
		return nil, err
	}

	s := new(big.Int)
	if b.Shift != nil {
		s, err = zigzag(b.Shift)
		if err != nil {
			return nil, err
		}
	}

	// A shift size of n holds 8n - 2 bits of shift.
	size := uint8(0)
	for s.Sign() != 0 && s.BitLen() > 8*int(size)-2 {
		size++
		if size > maxShiftSize {
			return nil, Error.New("too large: shift=%s", b.Shift.Int())
		}
	}
	b.ShiftSize = size

	t := new(big.Int)
	if size == 0 {
		t.Lsh(v, 2)
	} else {
		t.Lsh(v, 8*uint(size))
		t.Or(t, new(big.Int).Lsh(s, 2))
		t.Or(t, big.NewInt(int64(size)))
	}

	data = t.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return Error.New("invalid: size=0")
	}

	t := new(big.Int).SetBytes(data)

	b.ShiftSize = uint8(t.Bit(0) | t.Bit(1)<<1)

	v := new(big.Int)
	s := new(big.Int)

	if b.ShiftSize == 0 {
		v.Rsh(t, 2)
	} else {
		bits := 8 * uint(b.ShiftSize)

		mask := new(big.Int).Lsh(big.NewInt(1), bits-2)
		mask.Sub(mask, big.NewInt(1))

		s.Rsh(t, 2)
		s.And(s, mask)
		v.Rsh(t, bits)
	}

	b.Value, err = unzigzag(v)
	if err != nil {
		return err
	}

	b.Shift, err = unzigzag(s)
	if err != nil {
		return err
	}

	return nil
}

// Decoder is a decoder.
type Decoder struct {
	cd control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(cd control.Decoder) *Decoder {
	return &Decoder{
		cd: cd,
	}
}

// Decode parses a block from the reader.
func (d *Decoder) Decode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return d.cd.Err()
		}

		return Error.New("unexpected end of input")
	}

	if t := d.cd.Type(); !control.IsData(t) {
		return Error.New("unexpected field: %s", t.Abbr)
	}

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	return b.UnmarshalBinary(data)
}

// Encoder is an encoder.
type Encoder struct {
	ce control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(ce control.Encoder) *Encoder {
	return &Encoder{
		ce: ce,
	}
}

// Encode writes a block to the writer.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	data, err := b.MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}
