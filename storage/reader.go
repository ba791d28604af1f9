// Package storage provides the buffered reader used by all media packages
// for unpacking dumped drive responses and structure files.
//
// Multi-byte values in MMC response buffers are stored in big endian
// (MSB first) order, so the word/long helpers read big endian.
package storage

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Reader wraps a bufio.Reader with helpers for the fixed-size reads the
// response parsers need.
type Reader struct {
	*bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{bufio.NewReader(r)}
}

// ReadBytes reads exactly count bytes, failing on a short read.
func (r *Reader) ReadBytes(count int) ([]byte, error) {
	data := make([]byte, count)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, errors.Wrapf(err, "error reading %d bytes", count)
	}
	return data, nil
}

// ReadShort reads a big endian WORD.
func (r *Reader) ReadShort() (uint16, error) {
	data, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(data[0])<<8 | uint16(data[1]), nil
}

// ReadLong reads a big endian DWORD.
func (r *Reader) ReadLong() (uint32, error) {
	data, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3]), nil
}
