// Package metadata maps calibration source fields onto EDR header fields.
package metadata

import (
	"log/slog"
	"strings"
	"time"

	"github.com/FocuswithJustin/ccss2edr/core/edr"
	"github.com/FocuswithJustin/ccss2edr/core/errors"
	"github.com/FocuswithJustin/ccss2edr/internal/logging"
)

// Source keywords read by FieldsFromMap.
const (
	KeyDescriptor     = "DESCRIPTOR"
	KeyDisplay        = "DISPLAY"
	KeyOriginator     = "ORIGINATOR"
	KeyCreated        = "CREATED"
	KeyManufacturerID = "MANUFACTURER_ID"
	KeyManufacturer   = "MANUFACTURER"
	KeyTechnology     = "TECHNOLOGY"
)

// notSpecified is the placeholder some tools write for an absent descriptor.
const notSpecified = "Not specified"

// CreatedLayout is the asctime layout of the CREATED field after runs of
// whitespace have been collapsed.
const CreatedLayout = "Mon Jan 2 15:04:05 2006"

// Fields holds the optional descriptive fields of a source. Empty means absent.
type Fields struct {
	Descriptor     string
	Display        string
	Originator     string
	Created        string
	ManufacturerID string
	Manufacturer   string
	Technology     string
}

// FieldsFromMap picks the known keywords out of m.
func FieldsFromMap(m map[string]string) Fields {
	return Fields{
		Descriptor:     m[KeyDescriptor],
		Display:        m[KeyDisplay],
		Originator:     m[KeyOriginator],
		Created:        m[KeyCreated],
		ManufacturerID: m[KeyManufacturerID],
		Manufacturer:   m[KeyManufacturer],
		Technology:     m[KeyTechnology],
	}
}

// Overrides replace source fields. Empty strings and a nil TechType leave
// the source value in place.
type Overrides struct {
	TechType       *edr.TechType
	ManufacturerID string
	Manufacturer   string
	Description    string
	Originator     string
}

// Mapper builds EDR headers from source fields.
type Mapper struct {
	// Tool is the creation tool name, edr.DefaultCreationTool when empty.
	Tool string
	// Now supplies the creation time when the source has none.
	Now func() time.Time
	// Location interprets CREATED timestamps, time.Local when nil.
	Location *time.Location
	Logger   *slog.Logger
}

// Header maps f and o onto an EDR header. Spectral fields are left zero;
// callers fill them with Header.WithSpectral.
func (m *Mapper) Header(f Fields, o Overrides) (edr.Header, error) {
	log := logging.Or(m.Logger)

	if o.ManufacturerID != "" {
		f.ManufacturerID = o.ManufacturerID
	}
	if o.Manufacturer != "" {
		f.Manufacturer = o.Manufacturer
	}
	if o.Description != "" {
		f.Descriptor = o.Description
	}
	if o.Originator != "" {
		f.Originator = o.Originator
	}

	h := edr.Header{
		DisplayDescription:    description(f),
		CreationTool:          m.tool(f.Originator),
		DisplayManufacturerID: f.ManufacturerID,
		DisplayManufacturer:   f.Manufacturer,
	}

	if f.Created == "" {
		h.CreationTime = m.now().Unix()
	} else {
		t, err := ParseCreated(f.Created, m.Location)
		if err != nil {
			return edr.Header{}, err
		}
		h.CreationTime = t.Unix()
	}

	switch {
	case o.TechType != nil:
		h.TechType, h.HasTechType = *o.TechType, true
	case f.Technology != "":
		code, name, ok := edr.LookupTech(f.Technology)
		if ok {
			h.TechType, h.HasTechType = code, true
		} else {
			log.Warn("unknown technology", "technology", f.Technology, "looked_up", name)
		}
	}

	for _, field := range edr.Truncated(h) {
		log.Warn("header field truncated", "field", field)
	}
	return h, nil
}

func description(f Fields) string {
	if f.Descriptor != "" && f.Descriptor != notSpecified {
		return f.Descriptor
	}
	return f.Display
}

func (m *Mapper) tool(originator string) string {
	tool := m.Tool
	if tool == "" {
		tool = edr.DefaultCreationTool
	}
	if originator != "" {
		tool += " (" + originator + ")"
	}
	return tool
}

func (m *Mapper) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// ParseCreated parses an asctime timestamp such as
// "Wed Jun  5 10:22:41 2019" in loc. A nil loc means time.Local.
func ParseCreated(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	collapsed := strings.Join(strings.Fields(s), " ")
	t, err := time.ParseInLocation(CreatedLayout, collapsed, loc)
	if err != nil {
		return time.Time{}, &errors.ParseError{
			Format:  "CREATED timestamp",
			Message: "malformed value " + `"` + s + `"`,
			Err:     err,
		}
	}
	return t, nil
}
