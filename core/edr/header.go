package edr

import (
	"github.com/FocuswithJustin/ccss2edr/core/spectral"
)

// DefaultCreationTool names this converter in the creation tool field.
const DefaultCreationTool = "ccss2edr"

// Header holds the fields of the EDR file header.
type Header struct {
	DisplayDescription    string
	CreationTool          string
	CreationTime          int64 // seconds since the epoch
	DisplayManufacturerID string
	DisplayManufacturer   string

	// TechType is only meaningful when HasTechType is set. Unset technology
	// is written as code 0; a decoded header always reports HasTechType.
	TechType    TechType
	HasTechType bool

	SpectralStartNM float64
	SpectralEndNM   float64
	SpectralNorm    float64
	NumSets         int
}

// WithSpectral returns a copy of h carrying the grid bounds, norm and set
// count of ds.
func (h Header) WithSpectral(ds *spectral.DataSet) Header {
	h.SpectralStartNM = ds.StartNM()
	h.SpectralEndNM = ds.EndNM()
	h.SpectralNorm = ds.Norm()
	h.NumSets = ds.NumSets()
	return h
}

// truncated lists the header string fields that do not fit their buffers.
func (h Header) truncated() []string {
	var fh fileHeader
	var out []string
	if putString(fh.DisplayDescription[:], h.DisplayDescription) {
		out = append(out, "display_description")
	}
	if putString(fh.CreationTool[:], h.CreationTool) {
		out = append(out, "creation_tool")
	}
	if putString(fh.DisplayManufacturerID[:], h.DisplayManufacturerID) {
		out = append(out, "display_manufacturer_id")
	}
	if putString(fh.DisplayManufacturer[:], h.DisplayManufacturer) {
		out = append(out, "display_manufacturer")
	}
	return out
}

func (h Header) record() fileHeader {
	var fh fileHeader
	putString(fh.Signature[:], fileSignature)
	putString(fh.DisplayDescription[:], h.DisplayDescription)
	putString(fh.CreationTool[:], h.CreationTool)
	fh.CreationTime = h.CreationTime
	putString(fh.DisplayManufacturerID[:], h.DisplayManufacturerID)
	putString(fh.DisplayManufacturer[:], h.DisplayManufacturer)
	if h.HasTechType {
		fh.TechType = uint16(h.TechType)
	}
	fh.SpectralFlag = spectralDataPresent
	fh.SpectralStartNM = h.SpectralStartNM
	fh.SpectralEndNM = h.SpectralEndNM
	fh.SpectralNorm = h.SpectralNorm
	fh.NumSets = uint32(h.NumSets)
	return fh
}

func headerFromRecord(fh fileHeader) Header {
	return Header{
		DisplayDescription:    getString(fh.DisplayDescription[:]),
		CreationTool:          getString(fh.CreationTool[:]),
		CreationTime:          fh.CreationTime,
		DisplayManufacturerID: getString(fh.DisplayManufacturerID[:]),
		DisplayManufacturer:   getString(fh.DisplayManufacturer[:]),
		TechType:              TechType(fh.TechType),
		HasTechType:           true,
		SpectralStartNM:       fh.SpectralStartNM,
		SpectralEndNM:         fh.SpectralEndNM,
		SpectralNorm:          fh.SpectralNorm,
		NumSets:               int(fh.NumSets),
	}
}
