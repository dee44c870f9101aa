// Command ccss2edr converts a CCSS colorimeter calibration file to an EDR
// spectral file.
//
// Usage:
//
//	ccss2edr [--tech-type=<code>] <ccss> <out>
package main

import (
	"fmt"
	"math"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/ccss2edr/core/edr"
	"github.com/FocuswithJustin/ccss2edr/core/errors"
	"github.com/FocuswithJustin/ccss2edr/internal/cli"
	"github.com/FocuswithJustin/ccss2edr/internal/convert"
	"github.com/FocuswithJustin/ccss2edr/internal/validation"
)

const name = "ccss2edr"

// CLI defines the command-line interface for ccss2edr.
type CLI struct {
	cli.Globals

	Input    string `arg:"" name:"ccss" help:"Input .ccss file (.xz and .gz are decompressed)." type:"existingfile"`
	Output   string `arg:"" name:"out" help:"Output .edr file." type:"path"`
	TechType int    `name:"tech-type" help:"Technology type code written instead of the source's TECHNOLOGY (0 keeps it)."`
}

// Run performs the conversion.
func (c *CLI) Run() error {
	log := c.Logger()

	if err := validation.ValidateInputFile(c.Input); err != nil {
		return err
	}
	if err := validation.ValidateOutput(c.Input, c.Output); err != nil {
		return err
	}

	tech, err := techOverride(c.TechType)
	if err != nil {
		return err
	}
	if tech != nil && edr.TechName(*tech) == "" {
		log.Warn("technology code not in table", "tech_type", c.TechType)
	}

	conv := &convert.Converter{Name: name, Logger: log}
	_, err = conv.CalibrationToEDR(c.Input, c.Output, tech)
	return err
}

// techOverride maps the --tech-type flag onto an override; 0 means none.
func techOverride(code int) (*edr.TechType, error) {
	if code == 0 {
		return nil, nil
	}
	if code < 0 || code > math.MaxUint16 {
		return nil, errors.NewValidation("tech-type", fmt.Sprintf("%d is outside 0..%d", code, math.MaxUint16))
	}
	t := edr.TechType(code)
	return &t, nil
}

func main() {
	var c CLI
	ctx := kong.Parse(&c, cli.Options(name, "Convert a .ccss calibration file to .edr")...)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
