package dvd

import (
	"github.com/pkg/errors"

	"dvdio/dvd/css"
	"dvdio/storage"
)

// Response sizes for the key-carrying REPORT KEY / READ DISC KEY dumps.
const (
	DiscKeyResponseSize  = 4 + css.SectorSize
	TitleKeyResponseSize = 12
)

// ReadDiscKeyResponse reads a dumped READ DISC KEY response and strips the bus
// key obfuscation, yielding the 409-slot disc key block.
func ReadDiscKeyResponse(reader *storage.Reader, busKey []byte) (*css.DiscKey, error) {
	response, err := reader.ReadBytes(DiscKeyResponseSize)
	if err != nil {
		return nil, errors.Wrap(err, "error reading the disc key response")
	}
	return css.DecodeDiscKey(response, busKey)
}

// ReadTitleKeyResponse reads a dumped REPORT KEY title key response and strips
// the bus key obfuscation. The returned key is still encrypted with the
// disc key.
func ReadTitleKeyResponse(reader *storage.Reader, busKey []byte) (*css.TitleKey, error) {
	response, err := reader.ReadBytes(TitleKeyResponseSize)
	if err != nil {
		return nil, errors.Wrap(err, "error reading the title key response")
	}
	return css.DecodeTitleKey(response, busKey)
}

// ReadDiscKeyBlock reads a raw disc key block dump, one that was already
// descrambled or captured without bus obfuscation.
func ReadDiscKeyBlock(reader *storage.Reader) ([]byte, error) {
	block, err := reader.ReadBytes(css.SectorSize)
	if err != nil {
		return nil, errors.Wrap(err, "error reading the disc key block")
	}
	return block, nil
}
