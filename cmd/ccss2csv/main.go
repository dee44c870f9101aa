// Command ccss2csv writes the spectral sets of a CCSS calibration file as
// CSV, one row per nanometer, for inspection.
package main

import (
	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/ccss2edr/internal/cli"
	"github.com/FocuswithJustin/ccss2edr/internal/convert"
	"github.com/FocuswithJustin/ccss2edr/internal/validation"
)

const name = "ccss2csv"

// CLI defines the command-line interface for ccss2csv.
type CLI struct {
	cli.Globals

	Input  string `arg:"" name:"ccss" help:"Input .ccss file (.xz and .gz are decompressed)." type:"existingfile"`
	Output string `arg:"" name:"out" help:"Output .csv file." type:"path"`
	Norm   bool   `name:"norm" short:"n" help:"Scale each set so its peak is 1."`
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

	conv := &convert.Converter{Name: name, Logger: log}
	_, err := conv.CalibrationToCSV(c.Input, c.Output, c.Norm)
	return err
}

func main() {
	var c CLI
	ctx := kong.Parse(&c, cli.Options(name, "Convert a .ccss calibration file to .csv")...)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
