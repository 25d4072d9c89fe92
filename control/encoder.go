package control

import (
	"io"
	"math/big"
)

type Encoder interface {
	Data(data []byte) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) Encoder {
	e := &encoder{
		w: w,
	}

	return e
}

func (e *encoder) write(bs ...[]byte) (err error) {
	for _, b := range bs {
		_, err = e.w.Write(b)
		if err != nil {
			return Error.Wrap(err)
		}
	}

	return nil
}

// Data writes data using the smallest control block able to hold it.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write([]byte{Data.Prefix | data[0]})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write([]byte{Data1.Prefix | data[0], data[1]})
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write([]byte{Data2.Prefix | data[0], data[1], data[2]})
	case size <= 64:
		return e.write([]byte{DataSize.Prefix | byte(size-1)}, data)
	}

	s := new(big.Int).SetUint64(uint64(size - 1))
	sb := s.Bytes()
	if len(sb) > 8 {
		return Error.New("unimplemented: size>2^64")
	}

	return e.write([]byte{DataSizeSize.Prefix | byte(len(sb)-1)}, sb, data)
}

func (e *encoder) Empty() (err error) {
	return e.write([]byte{Empty.Prefix})
}

func (e *encoder) Null() (err error) {
	return e.write([]byte{Null.Prefix})
}
