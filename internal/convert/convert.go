// Package convert implements the conversion pipelines behind the command
// line tools: calibration file to EDR, calibration file to CSV and
// correlation matrix to EDR.
package convert

import (
	"io"
	"log/slog"
	"time"

	"github.com/FocuswithJustin/ccss2edr/core/edr"
	"github.com/FocuswithJustin/ccss2edr/core/errors"
	"github.com/FocuswithJustin/ccss2edr/core/metadata"
	"github.com/FocuswithJustin/ccss2edr/core/spectral"
	"github.com/FocuswithJustin/ccss2edr/internal/correlation"
	"github.com/FocuswithJustin/ccss2edr/internal/csvout"
	"github.com/FocuswithJustin/ccss2edr/internal/fileutil"
	"github.com/FocuswithJustin/ccss2edr/internal/logging"
)

// CorrelationOriginator is the creation tool suffix of EDR files made from
// correlation matrices.
const CorrelationOriginator = "CSV Correlation File"

// Converter runs conversions. The zero value is ready to use.
type Converter struct {
	// Name identifies the command in log events.
	Name string
	// Tool is the EDR creation tool, edr.DefaultCreationTool when empty.
	Tool string
	// Now and Location feed the metadata mapper; see metadata.Mapper.
	Now      func() time.Time
	Location *time.Location
	Logger   *slog.Logger
}

func (c *Converter) log() *slog.Logger {
	return logging.Or(c.Logger)
}

func (c *Converter) name() string {
	if c.Name == "" {
		return edr.DefaultCreationTool
	}
	return c.Name
}

func (c *Converter) mapper() *metadata.Mapper {
	return &metadata.Mapper{Tool: c.Tool, Now: c.Now, Location: c.Location, Logger: c.Logger}
}

// CalibrationToEDR converts a calibration file to an EDR file in W/nm/m².
// A non-nil tech replaces the technology named by the source.
func (c *Converter) CalibrationToEDR(input, output string, tech *edr.TechType) (*fileutil.Written, error) {
	start := time.Now()
	logging.ConversionStart(c.name(), input, output)

	cal, err := LoadCalibration(input)
	if err != nil {
		return nil, err
	}
	ds, err := spectral.Normalize(cal.Raw, spectral.WithLogger(c.Logger))
	if err != nil {
		return nil, errors.Wrapf(err, "normalize %s", input)
	}
	h, err := c.mapper().Header(cal.Fields, metadata.Overrides{TechType: tech})
	if err != nil {
		return nil, errors.Wrapf(err, "header for %s", input)
	}

	w, err := c.writeEDR(output, h, ds.InWatts())
	if err != nil {
		return nil, err
	}
	c.done(output, w, start, ds)
	return w, nil
}

// CalibrationToCSV writes the normalized calibration data as diagnostic CSV
// in the source units.
func (c *Converter) CalibrationToCSV(input, output string, normalize bool) (*fileutil.Written, error) {
	start := time.Now()
	logging.ConversionStart(c.name(), input, output, "normalize", normalize)

	cal, err := LoadCalibration(input)
	if err != nil {
		return nil, err
	}
	ds, err := spectral.Normalize(cal.Raw, spectral.WithLogger(c.Logger))
	if err != nil {
		return nil, errors.Wrapf(err, "normalize %s", input)
	}

	w, err := fileutil.WriteFile(output, func(out io.Writer) error {
		return csvout.Write(out, ds, normalize)
	})
	if err != nil {
		return nil, err
	}
	c.done(output, w, start, ds)
	return w, nil
}

// CorrelationRequest carries the metadata a correlation matrix lacks.
type CorrelationRequest struct {
	Technology     string
	ManufacturerID string
	Manufacturer   string
}

// CorrelationToEDR converts a correlation matrix to an EDR file. The matrix
// is already in W/nm/m² and is written unchanged.
func (c *Converter) CorrelationToEDR(input, output string, req CorrelationRequest) (*fileutil.Written, error) {
	start := time.Now()
	logging.ConversionStart(c.name(), input, output, "technology", req.Technology)

	grid, err := correlation.Read(input)
	if err != nil {
		return nil, err
	}
	ds, err := grid.DataSet()
	if err != nil {
		return nil, errors.Wrapf(err, "correlation %s", input)
	}
	h, err := c.mapper().Header(
		metadata.Fields{Technology: req.Technology},
		metadata.Overrides{
			ManufacturerID: req.ManufacturerID,
			Manufacturer:   req.Manufacturer,
			Description:    grid.Descriptor,
			Originator:     CorrelationOriginator,
		},
	)
	if err != nil {
		return nil, err
	}

	w, err := c.writeEDR(output, h, ds)
	if err != nil {
		return nil, err
	}
	c.done(output, w, start, ds)
	return w, nil
}

func (c *Converter) writeEDR(output string, h edr.Header, ds *spectral.DataSet) (*fileutil.Written, error) {
	h = h.WithSpectral(ds)
	return fileutil.WriteFile(output, func(out io.Writer) error {
		return edr.NewEncoder(out).Encode(h, ds)
	})
}

func (c *Converter) done(output string, w *fileutil.Written, start time.Time, ds *spectral.DataSet) {
	logging.ConversionDone(c.name(), output, w.Size, w.BLAKE3, time.Since(start),
		"sets", ds.NumSets(), "bands", ds.NumBands())
	c.log().Debug("spectral grid", "start_nm", ds.StartNM(), "end_nm", ds.EndNM(), "norm", ds.Norm())
}
