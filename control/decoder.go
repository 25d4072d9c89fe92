package control

import (
	"errors"
	"io"
	"math/big"

	"github.com/calebcase/oops"
)

var ErrInvalidOperation = Error.New("invalid operation")

type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader
	s io.Seeker

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r: r,
	}

	d.s, _ = r.(io.Seeker)

	return d
}

// seek moves the input stream's current position using an io.Seeker if
// available otherwise it falls back to a discarding copy.
func (d *decoder) seek(size uint64) (err error) {
	var n int64

	if d.s != nil {
		_, err = d.s.Seek(int64(size), io.SeekCurrent)
		n = int64(size)
	} else {
		n, err = io.CopyN(io.Discard, d.r, int64(size))
	}
	if err != nil {
		return Error.Wrap(err)
	}

	d.consumed += uint64(n)

	return nil
}

// skip moves the reading position to the end of the current field.
func (d *decoder) skip() (err error) {
	if d.finished || d.consumed == 0 {
		return nil
	}

	switch d.t {
	case Data1, Data2:
		// Small enough to just read directly.
		_, err = d.Data()

		return err
	case DataSize, DataSizeSize:
		size, err := d.Size()
		if err != nil {
			return err
		}

		return d.seek(size)
	}

	return nil
}

func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	d.err = d.skip()
	if d.err != nil {
		return false
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown

	d.size = 0
	d.data = nil
	d.finished = false

	// Read the field control block.
	_, d.err = io.ReadFull(d.r, d.value[:])
	if d.err != nil {
		if errors.Is(d.err, io.EOF) {
			d.err = nil
			return false
		}

		d.err = Error.Wrap(d.err)

		return false
	}

	d.consumed += 1

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeSize := uint64(d.value[0]&d.t.Mask) + 1

		sizeBytes := make([]byte, sizeSize)
		_, err = io.ReadFull(d.r, sizeBytes)
		if err != nil {
			return 0, Error.Wrap(err)
		}

		d.consumed += sizeSize

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size.Uint64()
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if !IsData(d.t) {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.data != nil {
		return d.data, nil
	}

	if d.finished && d.t != Data {
		return nil, Error.New("invalid: field already skipped")
	}

	_, err = d.Size()
	if err != nil {
		return nil, err
	}

	switch d.t {
	case Data:
		d.data = []byte{d.value[0] & d.t.Mask}
	case Data1, Data2:
		d.data = make([]byte, d.size)
		d.data[0] = d.value[0] & d.t.Mask

		_, err = io.ReadFull(d.r, d.data[1:])
		if err != nil {
			return nil, Error.Wrap(err)
		}

		d.consumed += d.size - 1
	case DataSize, DataSizeSize:
		d.data = make([]byte, d.size)

		_, err = io.ReadFull(d.r, d.data)
		if err != nil {
			return nil, Error.Wrap(err)
		}

		d.consumed += d.size
	}

	d.finished = true

	return d.data, nil
}
