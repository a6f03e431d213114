package main

import (
	"context"

	"github.com/alecthomas/kong"
)

var (
	version = "dev"
	cli     struct {
		Debug    bool             `help:"Enable debug logging."`
		Version  kong.VersionFlag `help:"Print the version."`
		Serve    ServeCmd         `cmd:"" default:"1" help:"Serve the landing site."`
		LoginURL LoginURLCmd      `cmd:"" name:"login-url" help:"Print a provider authorize URL for the configured client."`
	}
)

// Globals are shared by every command.
type Globals struct {
	Debug   bool
	Version string
}

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("codelearn"),
		kong.Description("CodeLearn landing site"),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}
