// Package dvd implements reading DVD-Video copy protection structures
// from dumped drive responses.
//
// Rules and definitions
//
//  * A DVD-Video sector is 2048 bytes: a 128-byte MPEG-PS pack/system
//    header followed by the payload, which may be CSS scrambled.
//  * Structures returned by READ DVD STRUCTURE and REPORT KEY carry a
//    2-byte big endian data length followed by two reserved bytes.
//  * Region management uses one bit per region, regions 1..8 in bits 0..7.
//    Drive side (RPC phase II): a set bit blocks the region. Disc side:
//    a set bit codes the disc for the region.
//  * Key material (player, bus, disc and title keys) is always 40 bits.
//
// The cryptography itself lives in the css subpackage; this package holds
// the structured records around it.
package dvd

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"dvdio/dvd/css"
	"dvdio/storage"
)

// Copyright protection system types reported in the lead-in.
const (
	ProtectionNone uint8 = 0x00
	ProtectionCSS  uint8 = 0x01 // CSS on DVD-Video, CPPM on DVD-Audio
	ProtectionCPRM uint8 = 0x02
	ProtectionAACS uint8 = 0x03
)

// LeadInCopyright is the copyright structure from the disc lead-in,
// READ DVD STRUCTURE format 0x01.
type LeadInCopyright struct {
	DataLength        uint16  // WORD    Length of the structure data
	Reserved1         [2]byte // BYTE[2] Reserved
	CopyrightType     uint8   // BYTE    Copyright protection system type
	RegionInformation uint8   // BYTE    Region management information, 1 bit per region, set = coded for the region
	Reserved2         [2]byte // BYTE[2] Reserved
}

// Read the copyright structure from a dumped response.
func (c *LeadInCopyright) Read(reader *storage.Reader) error {
	if err := binary.Read(reader, binary.BigEndian, c); err != nil {
		return errors.Wrap(err, "error reading the lead-in copyright structure")
	}
	return nil
}

func (c LeadInCopyright) String() string {
	str := ""
	str += fmt.Sprintf("Protection: %s\n", c.protectionName())
	str += fmt.Sprintf("Regions:    %s\n", discRegions(c.RegionInformation))
	return str
}

func (c LeadInCopyright) protectionName() string {
	switch c.CopyrightType {
	case ProtectionNone:
		return "none"
	case ProtectionCSS:
		return "CSS/CPPM"
	case ProtectionCPRM:
		return "CPRM"
	case ProtectionAACS:
		return "AACS"
	default:
		return fmt.Sprintf("unknown (0x%02X)", c.CopyrightType)
	}
}

// RPCState is the drive's region playback control record,
// REPORT KEY format 0x08.
type RPCState struct {
	DataLength uint16  // WORD    Length of the structure data
	Reserved1  [2]byte // BYTE[2] Reserved
	TypeCode   uint8   // BYTE    Bits 6-7 type code, bits 3-5 vendor resets, bits 0-2 user changes
	RegionMask uint8   // BYTE    Drive region mask, 1 bit per region, set = blocked
	RPCScheme  uint8   // BYTE    0 = no scheme, 1 = RPC phase II
	Reserved2  uint8   // BYTE    Reserved
}

// Read the RPC structure from a dumped response.
func (r *RPCState) Read(reader *storage.Reader) error {
	if err := binary.Read(reader, binary.BigEndian, r); err != nil {
		return errors.Wrap(err, "error reading the RPC state structure")
	}
	return nil
}

// VendorResets returns how many vendor region resets remain.
func (r RPCState) VendorResets() uint8 {
	return r.TypeCode >> 3 & 7
}

// UserChanges returns how many user region changes remain.
func (r RPCState) UserChanges() uint8 {
	return r.TypeCode & 7
}

func (r RPCState) String() string {
	str := ""
	str += fmt.Sprintf("Scheme:         %d\n", r.RPCScheme)
	str += fmt.Sprintf("Regions:        %s\n", driveRegions(r.RegionMask))
	str += fmt.Sprintf("Vendor resets:  %d\n", r.VendorResets())
	str += fmt.Sprintf("User changes:   %d\n", r.UserChanges())
	return str
}

// RegionCompatible reports whether the disc's region coding permits
// playback on the drive.
func RegionCompatible(disc LeadInCopyright, drive RPCState) bool {
	return css.RegionAllowed(drive.RegionMask, disc.RegionInformation)
}

// discRegions formats the regions a disc is coded for.
func discRegions(information uint8) string {
	if information == 0x00 {
		return "none (region free)"
	}
	if information == 0xff {
		return "all"
	}
	return regionList(information)
}

// driveRegions formats the regions a drive permits.
func driveRegions(mask uint8) string {
	if mask == 0x00 {
		return "all"
	}
	if mask == 0xff {
		return "none"
	}
	return regionList(^mask)
}

// regionList formats the set bits of an enabled-region byte as "1, 2, 8".
func regionList(enabled uint8) string {
	var regions []string
	for bit := uint(0); bit < 8; bit++ {
		if enabled>>bit&1 == 1 {
			regions = append(regions, fmt.Sprintf("%d", bit+1))
		}
	}
	return strings.Join(regions, ", ")
}
