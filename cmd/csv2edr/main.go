// Command csv2edr converts a 380-780 nm correlation matrix in CSV form to an
// EDR spectral file.
package main

import (
	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/ccss2edr/internal/cli"
	"github.com/FocuswithJustin/ccss2edr/internal/convert"
	"github.com/FocuswithJustin/ccss2edr/internal/validation"
)

const name = "csv2edr"

// CLI defines the command-line interface for csv2edr.
type CLI struct {
	cli.Globals

	Input    string `arg:"" name:"csv" help:"Input .csv correlation file (.xz and .gz are decompressed)." type:"existingfile"`
	Output   string `arg:"" name:"out" help:"Output .edr file." type:"path"`
	TechType string `name:"tech-type" required:"" help:"Technology type name, e.g. \"LCD White LED IPS\"."`
	ManuID   string `name:"manu-id" required:"" help:"Display manufacturer id."`
	ManuName string `name:"manu-name" required:"" help:"Display manufacturer name."`
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
	_, err := conv.CorrelationToEDR(c.Input, c.Output, convert.CorrelationRequest{
		Technology:     c.TechType,
		ManufacturerID: c.ManuID,
		Manufacturer:   c.ManuName,
	})
	return err
}

func main() {
	var c CLI
	ctx := kong.Parse(&c, cli.Options(name, "Convert a .csv correlation file to .edr")...)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
