package css

// The CSS substitution tables. All of them are fixed by the format and
// embedded verbatim rather than generated at startup, so a hexdump of the
// binary can be checked against the published values.
//
// Structure worth knowing when auditing:
//
//  * cssTab2 is linear over GF(2): each index bit contributes a fixed mask,
//    the masks being one byte-step of the 17-bit register feedback.
//  * cssTab3 is a repeating 8-byte pattern replicated 64 times; only the
//    low three bits of the 9-bit index contribute.
//  * cssTab4 is bit-reversal within a byte; cssTab5 is its complement.
//    The key cipher finishes its register output through cssTab4, the
//    sector cipher through cssTab5.
//  * cssTab1 is the mangling permutation shared by the key cipher output
//    mix and the sector descrambler.

var cssTab1 = [256]byte{
	0x33, 0x73, 0x3b, 0x26, 0x63, 0x23, 0x6b, 0x76,
	0x3e, 0x7e, 0x36, 0x2b, 0x6e, 0x2e, 0x66, 0x7b,
	0xd3, 0x93, 0xdb, 0x06, 0x43, 0x03, 0x4b, 0x96,
	0xde, 0x9e, 0xd6, 0x0b, 0x4e, 0x0e, 0x46, 0x9b,
	0x57, 0x17, 0x5f, 0x02, 0x47, 0x07, 0x4f, 0x12,
	0x5a, 0x1a, 0x52, 0x0f, 0x4a, 0x0a, 0x42, 0x1f,
	0xd7, 0x97, 0xdf, 0x22, 0x67, 0x27, 0x6f, 0x32,
	0xda, 0x9a, 0xd2, 0x2f, 0x6a, 0x2a, 0x62, 0x3f,
	0xf3, 0x58, 0x29, 0xa9, 0xf0, 0x79, 0xe3, 0x53,
	0x54, 0xb8, 0xe8, 0x08, 0x84, 0xed, 0x09, 0xca,
	0x9d, 0xab, 0x19, 0x45, 0xd4, 0x99, 0x59, 0xc1,
	0xf4, 0x90, 0x37, 0x1e, 0x80, 0xfa, 0xfe, 0xd5,
	0x75, 0x16, 0x5c, 0x25, 0x8b, 0x6c, 0x3c, 0xfb,
	0xac, 0x1b, 0xf2, 0x88, 0xc5, 0x21, 0x24, 0x10,
	0xc3, 0xc2, 0x3d, 0xa0, 0xd1, 0xa2, 0xc0, 0x34,
	0xb2, 0x72, 0x7f, 0xcd, 0x50, 0x64, 0x2c, 0x01,
	0x86, 0xbd, 0x78, 0xff, 0x28, 0x4d, 0xe4, 0xd9,
	0x60, 0xc8, 0xe6, 0x87, 0xbc, 0xf7, 0x51, 0xbe,
	0x1c, 0x71, 0x7c, 0xb7, 0x00, 0x48, 0x9f, 0xfd,
	0x05, 0xf6, 0x69, 0xbf, 0xaf, 0x3a, 0xbb, 0x85,
	0xcb, 0xe7, 0xcf, 0x7a, 0xc7, 0xf1, 0x2d, 0x91,
	0xb0, 0xfc, 0x8c, 0xb9, 0xba, 0x49, 0xa3, 0xee,
	0xaa, 0xdc, 0x55, 0xc4, 0xb6, 0x04, 0x15, 0x14,
	0xb5, 0x74, 0x98, 0xa8, 0xec, 0xe2, 0x8f, 0xe9,
	0xea, 0x95, 0x40, 0xe1, 0xf9, 0xa5, 0x1d, 0x7d,
	0x8d, 0x35, 0xae, 0xc9, 0x31, 0x94, 0xd0, 0x0c,
	0xad, 0x5d, 0xb3, 0x68, 0x5e, 0x70, 0xb1, 0x44,
	0x4c, 0x83, 0xa7, 0x92, 0x18, 0xdd, 0xa4, 0x82,
	0x89, 0xb4, 0x65, 0x30, 0xf5, 0xef, 0xe0, 0xe5,
	0x0d, 0x8a, 0x81, 0x6d, 0x13, 0xd8, 0x61, 0xf8,
	0x8e, 0x56, 0xa1, 0xa6, 0xeb, 0x39, 0xc6, 0x77,
	0x41, 0x38, 0x5b, 0x20, 0xce, 0x11, 0xcc, 0x9c,
}

var cssTab2 = [256]byte{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x09, 0x08, 0x0b, 0x0a, 0x0d, 0x0c, 0x0f, 0x0e,
	0x12, 0x13, 0x10, 0x11, 0x16, 0x17, 0x14, 0x15,
	0x1b, 0x1a, 0x19, 0x18, 0x1f, 0x1e, 0x1d, 0x1c,
	0x24, 0x25, 0x26, 0x27, 0x20, 0x21, 0x22, 0x23,
	0x2d, 0x2c, 0x2f, 0x2e, 0x29, 0x28, 0x2b, 0x2a,
	0x36, 0x37, 0x34, 0x35, 0x32, 0x33, 0x30, 0x31,
	0x3f, 0x3e, 0x3d, 0x3c, 0x3b, 0x3a, 0x39, 0x38,
	0x49, 0x48, 0x4b, 0x4a, 0x4d, 0x4c, 0x4f, 0x4e,
	0x40, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47,
	0x5b, 0x5a, 0x59, 0x58, 0x5f, 0x5e, 0x5d, 0x5c,
	0x52, 0x53, 0x50, 0x51, 0x56, 0x57, 0x54, 0x55,
	0x6d, 0x6c, 0x6f, 0x6e, 0x69, 0x68, 0x6b, 0x6a,
	0x64, 0x65, 0x66, 0x67, 0x60, 0x61, 0x62, 0x63,
	0x7f, 0x7e, 0x7d, 0x7c, 0x7b, 0x7a, 0x79, 0x78,
	0x76, 0x77, 0x74, 0x75, 0x72, 0x73, 0x70, 0x71,
	0x92, 0x93, 0x90, 0x91, 0x96, 0x97, 0x94, 0x95,
	0x9b, 0x9a, 0x99, 0x98, 0x9f, 0x9e, 0x9d, 0x9c,
	0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87,
	0x89, 0x88, 0x8b, 0x8a, 0x8d, 0x8c, 0x8f, 0x8e,
	0xb6, 0xb7, 0xb4, 0xb5, 0xb2, 0xb3, 0xb0, 0xb1,
	0xbf, 0xbe, 0xbd, 0xbc, 0xbb, 0xba, 0xb9, 0xb8,
	0xa4, 0xa5, 0xa6, 0xa7, 0xa0, 0xa1, 0xa2, 0xa3,
	0xad, 0xac, 0xaf, 0xae, 0xa9, 0xa8, 0xab, 0xaa,
	0xdb, 0xda, 0xd9, 0xd8, 0xdf, 0xde, 0xdd, 0xdc,
	0xd2, 0xd3, 0xd0, 0xd1, 0xd6, 0xd7, 0xd4, 0xd5,
	0xc9, 0xc8, 0xcb, 0xca, 0xcd, 0xcc, 0xcf, 0xce,
	0xc0, 0xc1, 0xc2, 0xc3, 0xc4, 0xc5, 0xc6, 0xc7,
	0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa, 0xf9, 0xf8,
	0xf6, 0xf7, 0xf4, 0xf5, 0xf2, 0xf3, 0xf0, 0xf1,
	0xed, 0xec, 0xef, 0xee, 0xe9, 0xe8, 0xeb, 0xea,
	0xe4, 0xe5, 0xe6, 0xe7, 0xe0, 0xe1, 0xe2, 0xe3,
}

var cssTab3 = [512]byte{
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
}

var cssTab4 = [256]byte{
	0x00, 0x80, 0x40, 0xc0, 0x20, 0xa0, 0x60, 0xe0,
	0x10, 0x90, 0x50, 0xd0, 0x30, 0xb0, 0x70, 0xf0,
	0x08, 0x88, 0x48, 0xc8, 0x28, 0xa8, 0x68, 0xe8,
	0x18, 0x98, 0x58, 0xd8, 0x38, 0xb8, 0x78, 0xf8,
	0x04, 0x84, 0x44, 0xc4, 0x24, 0xa4, 0x64, 0xe4,
	0x14, 0x94, 0x54, 0xd4, 0x34, 0xb4, 0x74, 0xf4,
	0x0c, 0x8c, 0x4c, 0xcc, 0x2c, 0xac, 0x6c, 0xec,
	0x1c, 0x9c, 0x5c, 0xdc, 0x3c, 0xbc, 0x7c, 0xfc,
	0x02, 0x82, 0x42, 0xc2, 0x22, 0xa2, 0x62, 0xe2,
	0x12, 0x92, 0x52, 0xd2, 0x32, 0xb2, 0x72, 0xf2,
	0x0a, 0x8a, 0x4a, 0xca, 0x2a, 0xaa, 0x6a, 0xea,
	0x1a, 0x9a, 0x5a, 0xda, 0x3a, 0xba, 0x7a, 0xfa,
	0x06, 0x86, 0x46, 0xc6, 0x26, 0xa6, 0x66, 0xe6,
	0x16, 0x96, 0x56, 0xd6, 0x36, 0xb6, 0x76, 0xf6,
	0x0e, 0x8e, 0x4e, 0xce, 0x2e, 0xae, 0x6e, 0xee,
	0x1e, 0x9e, 0x5e, 0xde, 0x3e, 0xbe, 0x7e, 0xfe,
	0x01, 0x81, 0x41, 0xc1, 0x21, 0xa1, 0x61, 0xe1,
	0x11, 0x91, 0x51, 0xd1, 0x31, 0xb1, 0x71, 0xf1,
	0x09, 0x89, 0x49, 0xc9, 0x29, 0xa9, 0x69, 0xe9,
	0x19, 0x99, 0x59, 0xd9, 0x39, 0xb9, 0x79, 0xf9,
	0x05, 0x85, 0x45, 0xc5, 0x25, 0xa5, 0x65, 0xe5,
	0x15, 0x95, 0x55, 0xd5, 0x35, 0xb5, 0x75, 0xf5,
	0x0d, 0x8d, 0x4d, 0xcd, 0x2d, 0xad, 0x6d, 0xed,
	0x1d, 0x9d, 0x5d, 0xdd, 0x3d, 0xbd, 0x7d, 0xfd,
	0x03, 0x83, 0x43, 0xc3, 0x23, 0xa3, 0x63, 0xe3,
	0x13, 0x93, 0x53, 0xd3, 0x33, 0xb3, 0x73, 0xf3,
	0x0b, 0x8b, 0x4b, 0xcb, 0x2b, 0xab, 0x6b, 0xeb,
	0x1b, 0x9b, 0x5b, 0xdb, 0x3b, 0xbb, 0x7b, 0xfb,
	0x07, 0x87, 0x47, 0xc7, 0x27, 0xa7, 0x67, 0xe7,
	0x17, 0x97, 0x57, 0xd7, 0x37, 0xb7, 0x77, 0xf7,
	0x0f, 0x8f, 0x4f, 0xcf, 0x2f, 0xaf, 0x6f, 0xef,
	0x1f, 0x9f, 0x5f, 0xdf, 0x3f, 0xbf, 0x7f, 0xff,
}

var cssTab5 = [256]byte{
	0xff, 0x7f, 0xbf, 0x3f, 0xdf, 0x5f, 0x9f, 0x1f,
	0xef, 0x6f, 0xaf, 0x2f, 0xcf, 0x4f, 0x8f, 0x0f,
	0xf7, 0x77, 0xb7, 0x37, 0xd7, 0x57, 0x97, 0x17,
	0xe7, 0x67, 0xa7, 0x27, 0xc7, 0x47, 0x87, 0x07,
	0xfb, 0x7b, 0xbb, 0x3b, 0xdb, 0x5b, 0x9b, 0x1b,
	0xeb, 0x6b, 0xab, 0x2b, 0xcb, 0x4b, 0x8b, 0x0b,
	0xf3, 0x73, 0xb3, 0x33, 0xd3, 0x53, 0x93, 0x13,
	0xe3, 0x63, 0xa3, 0x23, 0xc3, 0x43, 0x83, 0x03,
	0xfd, 0x7d, 0xbd, 0x3d, 0xdd, 0x5d, 0x9d, 0x1d,
	0xed, 0x6d, 0xad, 0x2d, 0xcd, 0x4d, 0x8d, 0x0d,
	0xf5, 0x75, 0xb5, 0x35, 0xd5, 0x55, 0x95, 0x15,
	0xe5, 0x65, 0xa5, 0x25, 0xc5, 0x45, 0x85, 0x05,
	0xf9, 0x79, 0xb9, 0x39, 0xd9, 0x59, 0x99, 0x19,
	0xe9, 0x69, 0xa9, 0x29, 0xc9, 0x49, 0x89, 0x09,
	0xf1, 0x71, 0xb1, 0x31, 0xd1, 0x51, 0x91, 0x11,
	0xe1, 0x61, 0xa1, 0x21, 0xc1, 0x41, 0x81, 0x01,
	0xfe, 0x7e, 0xbe, 0x3e, 0xde, 0x5e, 0x9e, 0x1e,
	0xee, 0x6e, 0xae, 0x2e, 0xce, 0x4e, 0x8e, 0x0e,
	0xf6, 0x76, 0xb6, 0x36, 0xd6, 0x56, 0x96, 0x16,
	0xe6, 0x66, 0xa6, 0x26, 0xc6, 0x46, 0x86, 0x06,
	0xfa, 0x7a, 0xba, 0x3a, 0xda, 0x5a, 0x9a, 0x1a,
	0xea, 0x6a, 0xaa, 0x2a, 0xca, 0x4a, 0x8a, 0x0a,
	0xf2, 0x72, 0xb2, 0x32, 0xd2, 0x52, 0x92, 0x12,
	0xe2, 0x62, 0xa2, 0x22, 0xc2, 0x42, 0x82, 0x02,
	0xfc, 0x7c, 0xbc, 0x3c, 0xdc, 0x5c, 0x9c, 0x1c,
	0xec, 0x6c, 0xac, 0x2c, 0xcc, 0x4c, 0x8c, 0x0c,
	0xf4, 0x74, 0xb4, 0x34, 0xd4, 0x54, 0x94, 0x14,
	0xe4, 0x64, 0xa4, 0x24, 0xc4, 0x44, 0x84, 0x04,
	0xf8, 0x78, 0xb8, 0x38, 0xd8, 0x58, 0x98, 0x18,
	0xe8, 0x68, 0xa8, 0x28, 0xc8, 0x48, 0x88, 0x08,
	0xf0, 0x70, 0xb0, 0x30, 0xd0, 0x50, 0x90, 0x10,
	0xe0, 0x60, 0xa0, 0x20, 0xc0, 0x40, 0x80, 0x00,
}

// Authentication cipher tables. cryptTab1 feeds the round substitution,
// cryptTab2 doubles as the seed mask and the variant whitening, cryptTab0
// and cryptTab3 shape the two round forms.

var cryptTab0 = [256]byte{
	0xb7, 0xf4, 0x82, 0x57, 0xda, 0x4d, 0xdb, 0xe2,
	0x2f, 0x52, 0x1a, 0xa8, 0x68, 0x5a, 0x8a, 0xff,
	0xfb, 0x0e, 0x6d, 0x35, 0xf7, 0x5c, 0x76, 0x12,
	0xce, 0x25, 0x79, 0x29, 0x39, 0x62, 0x08, 0x24,
	0xc1, 0xb4, 0x32, 0xa4, 0x16, 0xe0, 0x8b, 0xd9,
	0xbb, 0x88, 0x6a, 0xbd, 0xb2, 0xee, 0xad, 0x22,
	0x07, 0x9e, 0x80, 0x49, 0x42, 0x03, 0xd6, 0x2b,
	0xd2, 0xa1, 0xe3, 0x74, 0x40, 0x87, 0xf6, 0xeb,
	0xc7, 0xfc, 0xf3, 0x72, 0x45, 0xd7, 0x47, 0x5b,
	0xb8, 0xbe, 0xfa, 0xef, 0xa6, 0xb1, 0xfe, 0x8f,
	0x3a, 0x06, 0x0f, 0x04, 0xa5, 0x30, 0xe5, 0x4f,
	0x89, 0x05, 0x38, 0x4b, 0x93, 0x9c, 0xa7, 0x63,
	0x41, 0x73, 0xfd, 0x4a, 0x19, 0x8e, 0x4c, 0x9a,
	0xc0, 0xa0, 0xf9, 0xaf, 0x1e, 0xb3, 0x9b, 0x78,
	0xec, 0x1b, 0x8c, 0x85, 0x31, 0x70, 0xd8, 0x7d,
	0x55, 0xaa, 0x96, 0xd0, 0x4e, 0x3e, 0xa3, 0x1f,
	0xdc, 0x81, 0x18, 0x0c, 0x1d, 0xc8, 0xf0, 0x5f,
	0xb9, 0xca, 0x09, 0xd3, 0x94, 0x69, 0x61, 0x6b,
	0xa9, 0x01, 0x50, 0x13, 0x34, 0xc2, 0x36, 0x48,
	0x3c, 0x91, 0xe1, 0x3b, 0x66, 0x11, 0xde, 0x53,
	0xe9, 0x60, 0x51, 0x9d, 0x43, 0xb5, 0x6e, 0xbf,
	0xf2, 0x86, 0xcf, 0x2e, 0x14, 0xcd, 0x98, 0x83,
	0xc9, 0x2c, 0x92, 0xe4, 0x46, 0x00, 0xd4, 0x7a,
	0x9f, 0xcc, 0x27, 0xd1, 0xe8, 0xc3, 0xd5, 0x6c,
	0x7c, 0x3d, 0xf8, 0x77, 0x84, 0xab, 0x21, 0x28,
	0xae, 0x65, 0x54, 0x10, 0xb0, 0x33, 0x75, 0x59,
	0x17, 0x23, 0xdf, 0xcb, 0x56, 0x37, 0xc6, 0x3f,
	0xdd, 0xf1, 0x90, 0x8d, 0x0d, 0x15, 0x20, 0x0b,
	0xe7, 0xac, 0xc5, 0x99, 0x7e, 0x1c, 0x67, 0xc4,
	0x7b, 0x71, 0x64, 0xbc, 0xba, 0x02, 0xa2, 0x58,
	0x44, 0x97, 0x0a, 0x95, 0xe6, 0x26, 0x7f, 0x5e,
	0x5d, 0xb6, 0x6f, 0x2d, 0xf5, 0xed, 0x2a, 0xea,
}

var cryptTab1 = [256]byte{
	0x77, 0xa9, 0xcb, 0xaa, 0xc3, 0x11, 0x54, 0xce,
	0xb0, 0xf3, 0x71, 0x0d, 0xc9, 0xad, 0x72, 0xa2,
	0x7c, 0xd0, 0x27, 0xda, 0x3d, 0xa4, 0xb2, 0x7f,
	0xdd, 0x9a, 0x14, 0xc1, 0xe0, 0x74, 0xd6, 0x6a,
	0x0b, 0xac, 0xf4, 0x0f, 0x19, 0x23, 0x55, 0x0a,
	0x4c, 0xc8, 0x7b, 0xec, 0x01, 0x43, 0xf0, 0x68,
	0x30, 0xa8, 0x48, 0x2d, 0xaf, 0x9c, 0x24, 0x38,
	0xb1, 0x99, 0xcc, 0xdb, 0x9b, 0xc5, 0xfc, 0x04,
	0x4d, 0x95, 0xd2, 0x52, 0xc2, 0xe2, 0x16, 0x06,
	0x61, 0x8b, 0x51, 0xae, 0x4a, 0xea, 0x1e, 0xf9,
	0x45, 0x13, 0xf6, 0xcd, 0xdc, 0x00, 0x41, 0xd5,
	0x87, 0x62, 0x0c, 0x1a, 0x88, 0xe1, 0xfa, 0xba,
	0x42, 0x44, 0x59, 0xa7, 0x17, 0xa5, 0x9d, 0x49,
	0xa0, 0x47, 0x60, 0x50, 0x5b, 0xe3, 0x5d, 0xa6,
	0x15, 0xc4, 0xcf, 0x6c, 0x37, 0xd4, 0x3f, 0x81,
	0x2c, 0x36, 0x20, 0xe6, 0xbb, 0x2b, 0xe8, 0x58,
	0x4f, 0x75, 0xef, 0xe5, 0xb8, 0x6b, 0x94, 0x25,
	0x63, 0xfb, 0x69, 0x9e, 0x21, 0xca, 0x2f, 0x34,
	0x5e, 0xee, 0x7a, 0xfe, 0x83, 0xbc, 0x79, 0x28,
	0xeb, 0xd3, 0x6f, 0x78, 0xb7, 0xdf, 0x53, 0x3a,
	0x92, 0x4b, 0x67, 0x8f, 0x2e, 0xb3, 0x3e, 0x3b,
	0x5a, 0x40, 0x1b, 0x8c, 0xf7, 0x8a, 0xf5, 0x66,
	0x8d, 0xab, 0x18, 0xb9, 0x76, 0x09, 0x33, 0x73,
	0x98, 0xd8, 0x35, 0x1d, 0x29, 0xa3, 0xff, 0x80,
	0x0e, 0xf1, 0x3c, 0x22, 0xbf, 0x31, 0x86, 0x65,
	0x70, 0xd9, 0x05, 0xb6, 0xf8, 0x57, 0x4e, 0xb4,
	0x07, 0x5f, 0x82, 0x5c, 0x8e, 0x7d, 0x10, 0x56,
	0x9f, 0x26, 0x32, 0x02, 0x2a, 0x03, 0x08, 0xc7,
	0x90, 0x6d, 0x97, 0x7e, 0xfd, 0xe4, 0xf2, 0x12,
	0xc6, 0x84, 0x85, 0xde, 0xd1, 0xd7, 0x89, 0x1f,
	0x91, 0x1c, 0xe7, 0x64, 0xe9, 0xb5, 0xbe, 0xbd,
	0x96, 0x39, 0xc0, 0x93, 0xa1, 0x6e, 0x46, 0xed,
}

var cryptTab2 = [256]byte{
	0x65, 0x3f, 0xf2, 0x0b, 0x8c, 0x99, 0x2e, 0xba,
	0xf6, 0x6e, 0x74, 0x33, 0xe5, 0x1a, 0xe0, 0x19,
	0x4a, 0xc8, 0xcb, 0xa1, 0x46, 0x2d, 0xec, 0x91,
	0x09, 0xd4, 0x4a, 0x78, 0x4f, 0x2d, 0x4b, 0xf9,
	0xd3, 0xdb, 0x93, 0x2e, 0xe4, 0xb1, 0x17, 0x42,
	0x35, 0x1f, 0xdb, 0x81, 0x81, 0x35, 0xd0, 0x52,
	0xf9, 0x83, 0x30, 0xa6, 0x1d, 0xe3, 0xcd, 0x02,
	0x15, 0x66, 0xf9, 0x5d, 0xee, 0x55, 0x0b, 0x04,
	0x2d, 0xb3, 0xed, 0x2e, 0x9b, 0x89, 0xa2, 0x77,
	0xfd, 0xb4, 0x84, 0x07, 0xb5, 0xc9, 0x7e, 0x0d,
	0xf9, 0xfa, 0xb2, 0x2d, 0x9a, 0xab, 0x1c, 0xc6,
	0xab, 0x7a, 0x51, 0x54, 0xf2, 0x0d, 0x44, 0x47,
	0xfb, 0x35, 0xb7, 0x61, 0xe7, 0xf3, 0xf7, 0xfb,
	0x85, 0x76, 0xa1, 0x3d, 0x1f, 0x5e, 0x69, 0x28,
	0xec, 0xb6, 0xb8, 0xc1, 0x1c, 0x6f, 0x34, 0x57,
	0x3f, 0x73, 0xce, 0x21, 0x54, 0x20, 0x1e, 0x8e,
	0x6f, 0x02, 0xfe, 0xba, 0x06, 0x7a, 0xb2, 0xac,
	0x1a, 0x80, 0xd0, 0x05, 0x4b, 0x41, 0x89, 0x3d,
	0xde, 0xab, 0x1f, 0x4c, 0x8d, 0xa6, 0x3a, 0xf7,
	0x7a, 0xbc, 0x61, 0x18, 0x07, 0x93, 0x84, 0x93,
	0x25, 0x37, 0x30, 0xcc, 0xf3, 0xbe, 0xa1, 0xbe,
	0xb2, 0xc7, 0x0d, 0x40, 0x2f, 0x17, 0x6d, 0x3e,
	0x39, 0x70, 0x41, 0x68, 0xbc, 0xb2, 0x6f, 0x32,
	0x6a, 0x86, 0xd9, 0xa3, 0x3b, 0x03, 0x0c, 0xe1,
	0x5c, 0x9e, 0xbe, 0x14, 0x43, 0xa5, 0x8a, 0x0e,
	0xb2, 0xd7, 0xe2, 0xc3, 0x71, 0xb0, 0x45, 0x53,
	0x8d, 0xa2, 0x40, 0xbc, 0x8b, 0x8f, 0x51, 0xe3,
	0x09, 0x20, 0x6c, 0x05, 0x6b, 0x46, 0x11, 0xfb,
	0x90, 0xfc, 0x1a, 0x27, 0x50, 0xbd, 0x56, 0xe8,
	0x45, 0xf8, 0xc3, 0x1d, 0xb2, 0xf2, 0xc0, 0xbf,
	0x39, 0x88, 0xc0, 0x70, 0x7f, 0x4d, 0x97, 0x98,
	0x43, 0x33, 0xe7, 0x8f, 0x04, 0x49, 0x62, 0xf7,
}

var cryptTab3 = [256]byte{
	0x13, 0x13, 0xc2, 0x08, 0xef, 0x7f, 0x49, 0x6b,
	0x98, 0x6c, 0x8d, 0x3a, 0xf1, 0x92, 0x3a, 0xb0,
	0xe6, 0x8b, 0xdd, 0x3a, 0x5f, 0xde, 0x08, 0x9b,
	0xbd, 0xbd, 0xb8, 0x4e, 0x91, 0x75, 0xa1, 0xe4,
	0x3c, 0x37, 0xef, 0x17, 0xed, 0xbc, 0x07, 0x22,
	0xc9, 0x02, 0x68, 0xd7, 0x54, 0x7c, 0xc3, 0x82,
	0x56, 0x55, 0xa1, 0x4a, 0x9a, 0x9f, 0x7d, 0xd2,
	0xc3, 0x90, 0x61, 0xb2, 0x08, 0x6e, 0x05, 0xf1,
	0xa2, 0xf6, 0xb1, 0x1a, 0xda, 0xb1, 0x08, 0x71,
	0x61, 0xb3, 0xbf, 0x76, 0x5b, 0xf2, 0xb0, 0x5f,
	0x20, 0x1a, 0xbb, 0xa1, 0xe8, 0x9a, 0xe9, 0x57,
	0x4e, 0x45, 0xcc, 0x24, 0xbc, 0x34, 0x20, 0xf6,
	0x65, 0x61, 0x55, 0xd4, 0x7c, 0xb1, 0x7e, 0xc5,
	0xd1, 0x8e, 0xe3, 0x1e, 0xe9, 0xa4, 0xff, 0xe0,
	0x5a, 0x75, 0x88, 0xf5, 0x21, 0x62, 0xab, 0x3d,
	0x46, 0x56, 0x09, 0xb9, 0xe1, 0xbf, 0x1f, 0x1e,
	0x52, 0x2a, 0x2d, 0x63, 0x38, 0xd7, 0x53, 0xbd,
	0x14, 0x62, 0xf4, 0x23, 0x3e, 0x9a, 0x9e, 0xe5,
	0xf6, 0xb2, 0x61, 0x4d, 0x0d, 0xcf, 0xd7, 0xfd,
	0x4e, 0x61, 0xcb, 0x54, 0xa8, 0x63, 0x17, 0xa3,
	0x52, 0xcc, 0x8f, 0xaf, 0x3e, 0xb0, 0x1d, 0xd9,
	0x96, 0xee, 0x68, 0xa3, 0x6b, 0x22, 0x2b, 0xf1,
	0xff, 0xcc, 0x31, 0xca, 0x08, 0x4b, 0x85, 0xfc,
	0xc3, 0x93, 0xb3, 0x5f, 0xe7, 0xcb, 0xc9, 0x40,
	0x92, 0xbc, 0x7c, 0xc7, 0x1d, 0xea, 0xce, 0x64,
	0x19, 0xbb, 0xec, 0x98, 0x33, 0x0f, 0x8d, 0x15,
	0xdd, 0x74, 0x57, 0x64, 0x36, 0x28, 0x16, 0x1d,
	0x90, 0xf0, 0x50, 0xcb, 0x34, 0x0d, 0xf7, 0x20,
	0xa0, 0x32, 0xdc, 0xc8, 0x0c, 0xa8, 0x82, 0x76,
	0x59, 0xce, 0xd5, 0x3e, 0xf6, 0x47, 0xab, 0xad,
	0xee, 0xbb, 0x5f, 0x60, 0x03, 0x9e, 0x66, 0x9d,
	0x22, 0x9a, 0x73, 0x32, 0x7b, 0xed, 0x83, 0x07,
}

// Challenge permutation, one row per key type.
var permChallenge = [3][10]byte{
	{1, 3, 0, 7, 5, 2, 9, 6, 4, 8},
	{6, 1, 9, 3, 8, 5, 7, 4, 0, 2},
	{4, 0, 3, 5, 7, 2, 8, 6, 1, 9},
}

// Variant permutation for the two bus key types. The authentication key
// type uses the variant index unpermuted.
var permVariant = [2][32]byte{
	{
		0x0a, 0x08, 0x0e, 0x0c, 0x0b, 0x09, 0x0f, 0x0d,
		0x1a, 0x18, 0x1e, 0x1c, 0x1b, 0x19, 0x1f, 0x1d,
		0x02, 0x00, 0x06, 0x04, 0x03, 0x01, 0x07, 0x05,
		0x12, 0x10, 0x16, 0x14, 0x13, 0x11, 0x17, 0x15,
	},
	{
		0x12, 0x1a, 0x16, 0x1e, 0x02, 0x0a, 0x06, 0x0e,
		0x10, 0x18, 0x14, 0x1c, 0x00, 0x08, 0x04, 0x0c,
		0x13, 0x1b, 0x17, 0x1f, 0x03, 0x0b, 0x07, 0x0f,
		0x11, 0x19, 0x15, 0x1d, 0x01, 0x09, 0x05, 0x0d,
	},
}

var variants = [32]byte{
	0xb7, 0x74, 0x85, 0xd0, 0xcc, 0xdb, 0xca, 0x73,
	0x03, 0xfe, 0x31, 0x03, 0x52, 0xe0, 0xb7, 0x42,
	0x63, 0x16, 0xf2, 0x2a, 0x79, 0x52, 0xff, 0x1b,
	0x7a, 0x11, 0xca, 0x1a, 0x9b, 0x40, 0xad, 0x01,
}

var secret = [5]byte{0x55, 0xd6, 0xc4, 0xc5, 0x28}

// playerKeys holds the publicly known player keys tried by
// DecryptDiscKey. The disc key block has slots for 409 keys, so further
// leaked keys can simply be appended here.
var playerKeys = [][KeySize]byte{
	{0x01, 0xaf, 0xe3, 0x12, 0x80},
	{0x12, 0x11, 0xca, 0x04, 0x3b},
	{0x14, 0x0c, 0x9e, 0xd0, 0x09},
	{0x14, 0x71, 0x35, 0xba, 0xe2},
	{0x1a, 0xa4, 0x33, 0x21, 0xa6},
	{0x26, 0xec, 0xc4, 0xa7, 0x4e},
	{0x2c, 0xb2, 0xc9, 0x29, 0x3e},
	{0x2f, 0x25, 0x9e, 0x96, 0xdd},
	{0x33, 0x2f, 0x49, 0x6c, 0xe0},
	{0x35, 0x5b, 0xc1, 0x31, 0x0f},
	{0x36, 0x67, 0xb2, 0xe3, 0x85},
	{0x39, 0x3d, 0xf1, 0xf1, 0xbd},
	{0x3b, 0x31, 0x34, 0x0d, 0x91},
	{0x45, 0xed, 0x28, 0xeb, 0xd3},
	{0x48, 0xb7, 0x6c, 0xce, 0x69},
	{0x4b, 0x65, 0x0d, 0xc1, 0xee},
	{0x4c, 0xbb, 0xf5, 0x5b, 0x23},
	{0x51, 0x67, 0x67, 0xc5, 0xe0},
	{0x53, 0x94, 0xe1, 0x75, 0xbf},
	{0x57, 0x2c, 0x8b, 0x31, 0xae},
	{0x63, 0xdb, 0x4c, 0x5b, 0x4a},
	{0x7b, 0x1e, 0x5e, 0x2b, 0x57},
	{0x81, 0x87, 0x34, 0x85, 0xd7},
	{0x85, 0xf3, 0x85, 0xa0, 0xe0},
	{0xab, 0x1e, 0xe7, 0x7b, 0x72},
	{0xab, 0x36, 0xe3, 0xeb, 0x76},
	{0xb1, 0xb8, 0xf9, 0x38, 0x03},
	{0xb8, 0x5d, 0xd8, 0x53, 0xbd},
	{0xbf, 0x92, 0xc3, 0xb0, 0xe2},
	{0xcf, 0x1a, 0xb2, 0xf8, 0x0a},
	{0xec, 0xa0, 0xcf, 0xb3, 0xff},
	{0xfc, 0x95, 0xa9, 0x87, 0x35},
}
