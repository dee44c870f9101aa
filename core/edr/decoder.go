package edr

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/FocuswithJustin/ccss2edr/core/errors"
)

// Decoder reads EDR files written by Encoder.
type Decoder struct {
	r          *bufio.Reader
	headerRead bool
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

func parseErr(msg string, err error) *errors.ParseError {
	return &errors.ParseError{Format: "EDR", Message: msg, Err: err}
}

func checkSignature(got []byte, want string) error {
	if s := getString(got); s != want {
		return parseErr(fmt.Sprintf("bad signature %q, want %q", s, want), nil)
	}
	return nil
}

// ReadHeader reads the file header. It must be called once, before ReadSet.
func (d *Decoder) ReadHeader() (Header, error) {
	if d.headerRead {
		return Header{}, errors.NewValidation("header", "already read")
	}
	var fh fileHeader
	if err := binary.Read(d.r, byteOrder, &fh); err != nil {
		return Header{}, parseErr("short file header", err)
	}
	if err := checkSignature(fh.Signature[:], fileSignature); err != nil {
		return Header{}, err
	}
	d.headerRead = true
	return headerFromRecord(fh), nil
}

// ReadSet reads the next set. It returns io.EOF when no sets remain.
func (d *Decoder) ReadSet() ([]float64, error) {
	if !d.headerRead {
		if _, err := d.ReadHeader(); err != nil {
			return nil, err
		}
	}

	var dh displayHeader
	if err := binary.Read(d.r, byteOrder, &dh); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, parseErr("short display record", err)
	}
	if err := checkSignature(dh.Signature[:], displaySignature); err != nil {
		return nil, err
	}

	var sh spectralHeader
	if err := binary.Read(d.r, byteOrder, &sh); err != nil {
		return nil, parseErr("short spectral record", err)
	}
	if err := checkSignature(sh.Signature[:], spectralSignature); err != nil {
		return nil, err
	}
	if sh.NumSamples > maxSamples {
		return nil, parseErr(fmt.Sprintf("sample count %d exceeds %d", sh.NumSamples, maxSamples), nil)
	}

	samples := make([]float64, sh.NumSamples)
	if err := binary.Read(d.r, byteOrder, samples); err != nil {
		return nil, parseErr("short sample data", err)
	}
	return samples, nil
}

// Decode reads the header and the number of sets it declares.
func (d *Decoder) Decode() (Header, [][]float64, error) {
	h, err := d.ReadHeader()
	if err != nil {
		return Header{}, nil, err
	}
	sets := make([][]float64, 0, h.NumSets)
	for i := 0; i < h.NumSets; i++ {
		s, err := d.ReadSet()
		if err == io.EOF {
			return h, sets, errors.NewInconsistent("EDR sets", h.NumSets, i)
		}
		if err != nil {
			return h, sets, errors.Wrapf(err, "set %d", i)
		}
		sets = append(sets, s)
	}
	return h, sets, nil
}
