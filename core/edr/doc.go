// Package edr reads and writes EDR spectral exchange files.
//
// An EDR file is a fixed 600-byte header followed by one record per spectral
// set. Each record is a display-data sub-header, a spectral-data sub-header
// carrying the sample count, and the samples as float64 values in W/nm/m².
// Every multi-byte field is little-endian.
//
// File header:
//
//	0x000  [16]   signature "EDR DATA1"
//	0x010  [128]  display description
//	0x090  [128]  creation tool
//	0x110  int64  creation time, seconds since the epoch
//	0x118  [16]   display manufacturer id
//	0x128  [128]  display manufacturer
//	0x1A8  uint16 technology type code
//	0x1AA  uint16 spectral data flag (1)
//	0x1AC  [4]    reserved
//	0x1B0  f64    spectral start, nm
//	0x1B8  f64    spectral end, nm
//	0x1C0  f64    spectral norm
//	0x1C8  uint32 number of sets
//	0x1CC  [140]  reserved
//
// Display-data sub-header (128 bytes): signature "DISPLAY DATA", reserved.
// Spectral-data sub-header (32 bytes): signature "SPECTRAL DATA", uint32
// sample count, reserved.
//
// Strings are NUL padded. Longer strings are truncated so that at least one
// NUL remains.
package edr
