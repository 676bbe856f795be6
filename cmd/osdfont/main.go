package main

import (
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bodgit/osdfont"
	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"
)

const convertDescription = `Converts between font formats, FROM and TO are descriptors of the form kind:path.

Valid kinds are:
   bin        raw RGBA font file as loaded by the goggles, SD or HD tiles
   tiledir    directory with each tile in a separate file, 000.png to 255.png
   tilegrid   one image with all tiles in a 16x16 grid, .png or .tiff

Example, extract the tiles of a bin file into the tiles directory:
   osdfont convert bin:font.bin tiledir:tiles`

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   c.App.Name,
		Level:  hclog.LevelFromString(c.String("log-level")),
		Output: c.App.ErrWriter,
	})
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "osdfont"
	app.Usage = "FPV goggles OSD font conversion utility"
	app.Version = "1.0.0"
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			EnvVars: []string{"OSDFONT_LOG_LEVEL"},
			Value:   "info",
			Usage:   "log level (trace, debug, info, warn, error, off)",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"j"},
			EnvVars: []string{"OSDFONT_WORKERS"},
			Value:   runtime.NumCPU(),
			Usage:   "number of tiles processed concurrently",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert a font between formats",
			Description: convertDescription,
			ArgsUsage:   "FROM TO",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				converter := osdfont.New(newLogger(c), c.Int("workers"))

				if err := converter.ConvertDescriptors(c.Args().Get(0), c.Args().Get(1)); err != nil {
					newLogger(c).Error("conversion failed", "error", err)
					return cli.NewExitError("", 1)
				}

				return nil
			},
		},
		{
			Name:      "generate-man-pages",
			Usage:     "Write the man page to DIRECTORY",
			ArgsUsage: "[DIRECTORY]",
			Hidden:    true,
			Action: func(c *cli.Context) error {
				dir := "."
				if c.NArg() > 0 {
					dir = c.Args().First()
				}

				man, err := c.App.ToMan()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				path := filepath.Join(dir, c.App.Name+".1")
				if err := os.WriteFile(path, []byte(man), 0o644); err != nil {
					return cli.NewExitError(err, 1)
				}

				newLogger(c).Info("wrote man page", "path", path)

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
