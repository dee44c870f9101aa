package edr

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/FocuswithJustin/ccss2edr/core/errors"
	"github.com/FocuswithJustin/ccss2edr/core/spectral"
)

// Encoder writes EDR files.
type Encoder struct {
	w *bufio.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Encode writes h followed by every set of ds, then flushes. Samples are
// written as stored in ds, which must already be in W/nm/m².
func (e *Encoder) Encode(h Header, ds *spectral.DataSet) error {
	if ds.Unit() != spectral.UnitWatt {
		return errors.NewValidation("unit", "EDR samples must be in "+spectral.UnitWatt.String()+", got "+ds.Unit().String())
	}
	if h.NumSets != ds.NumSets() {
		return errors.NewInconsistent("header sets", h.NumSets, ds.NumSets())
	}
	if h.SpectralStartNM != ds.StartNM() || h.SpectralEndNM != ds.EndNM() {
		return &errors.ConsistencyError{
			What: "header spectral range",
			Want: int(h.SpectralEndNM - h.SpectralStartNM),
			Got:  int(ds.EndNM() - ds.StartNM()),
		}
	}

	if err := e.WriteHeader(h); err != nil {
		return err
	}
	for i := 0; i < ds.NumSets(); i++ {
		if err := e.WriteSet(ds.Set(i)); err != nil {
			return errors.Wrapf(err, "set %d", i)
		}
	}
	return e.Flush()
}

// WriteHeader writes the 600-byte file header.
func (e *Encoder) WriteHeader(h Header) error {
	if err := binary.Write(e.w, byteOrder, h.record()); err != nil {
		return errors.NewIO("write", "EDR header", err)
	}
	return nil
}

// WriteSet writes one display record, one spectral record and the samples.
func (e *Encoder) WriteSet(samples []float64) error {
	if err := binary.Write(e.w, byteOrder, newDisplayHeader()); err != nil {
		return errors.NewIO("write", "display record", err)
	}
	if err := binary.Write(e.w, byteOrder, newSpectralHeader(len(samples))); err != nil {
		return errors.NewIO("write", "spectral record", err)
	}
	if err := binary.Write(e.w, byteOrder, samples); err != nil {
		return errors.NewIO("write", "samples", err)
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (e *Encoder) Flush() error {
	if err := e.w.Flush(); err != nil {
		return errors.NewIO("flush", "EDR output", err)
	}
	return nil
}

// Truncated lists the string fields of h that will not fit in the file
// header and will be cut short on encoding.
func Truncated(h Header) []string {
	return h.truncated()
}
