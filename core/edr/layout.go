package edr

import (
	"bytes"
	"encoding/binary"
)

// Record sizes in bytes.
const (
	HeaderSize         = 600
	DisplayHeaderSize  = 128
	SpectralHeaderSize = 32
)

const (
	fileSignature     = "EDR DATA1"
	displaySignature  = "DISPLAY DATA"
	spectralSignature = "SPECTRAL DATA"

	spectralDataPresent = 1
)

// maxSamples bounds the sample count accepted by the decoder.
const maxSamples = 1 << 16

var byteOrder = binary.LittleEndian

type fileHeader struct {
	Signature             [16]byte
	DisplayDescription    [128]byte
	CreationTool          [128]byte
	CreationTime          int64
	DisplayManufacturerID [16]byte
	DisplayManufacturer   [128]byte
	TechType              uint16
	SpectralFlag          uint16
	_                     [4]byte
	SpectralStartNM       float64
	SpectralEndNM         float64
	SpectralNorm          float64
	NumSets               uint32
	_                     [140]byte
}

type displayHeader struct {
	Signature [16]byte
	_         [112]byte
}

type spectralHeader struct {
	Signature  [16]byte
	NumSamples uint32
	_          [12]byte
}

// putString copies s into dst, truncating so the last byte stays NUL.
// It reports whether s had to be truncated.
func putString(dst []byte, s string) bool {
	n := copy(dst[:len(dst)-1], s)
	return n < len(s)
}

func getString(src []byte) string {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	return string(src)
}

func newDisplayHeader() displayHeader {
	var h displayHeader
	putString(h.Signature[:], displaySignature)
	return h
}

func newSpectralHeader(samples int) spectralHeader {
	h := spectralHeader{NumSamples: uint32(samples)}
	putString(h.Signature[:], spectralSignature)
	return h
}
