// Package cli holds the flags, configuration loading and logger setup
// shared by the converter commands.
package cli

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/ccss2edr/internal/logging"
)

// Version is reported by --version.
const Version = "1.0.0"

// DefaultConfigPaths are read, when present, before flags and environment.
var DefaultConfigPaths = []string{
	"~/.config/ccss2edr.yaml",
	"~/.config/ccss2edr.yml",
}

// Globals are the flags every converter accepts.
type Globals struct {
	LogLevel  string           `name:"log-level" env:"CCSS2EDR_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level (${enum})."`
	LogFormat string           `name:"log-format" env:"CCSS2EDR_LOG_FORMAT" default:"text" enum:"text,json" help:"Log format (${enum})."`
	Config    kong.ConfigFlag  `name:"config" help:"YAML configuration file."`
	Version   kong.VersionFlag `name:"version" help:"Print version information and quit."`
}

// Logger initializes the global logger from the flags and returns it.
func (g *Globals) Logger() *slog.Logger {
	logging.InitLogger(logging.ParseLevel(g.LogLevel), logging.ParseFormat(g.LogFormat))
	return logging.GetLogger()
}

// Options returns the kong options shared by the converters.
func Options(name, description string) []kong.Option {
	return []kong.Option{
		kong.Name(name),
		kong.Description(description),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Configuration(YAML, DefaultConfigPaths...),
		kong.Vars{"version": name + " " + Version},
	}
}
