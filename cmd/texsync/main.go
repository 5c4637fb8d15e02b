package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"github.com/bodgit/texsync"
	"github.com/bodgit/texsync/tile"
	"github.com/urfave/cli/v2"
)

const defaultAssetsRoot = "src/StorageHub/assets"

// Exit codes
const (
	exitFailure = 1
	exitUsage   = 2
	exitShape   = 3
	exitLocked  = 4
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, texsync.ErrSourceDirMissing), errors.Is(err, texsync.ErrInvalidMapping):
		return exitUsage
	case errors.Is(err, tile.ErrShapeMismatch):
		return exitShape
	case errors.Is(err, texsync.ErrLocked):
		return exitLocked
	default:
		return exitFailure
	}
}

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()

	app.Name = "texsync"
	app.Usage = "Sync StorageHub textures and pad tiles"
	app.Version = "1.0.0"
	app.Writer = w

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "source-dir",
			EnvVars: []string{"TEXSYNC_SOURCE_DIR"},
			Usage:   "folder containing source PNG textures",
		},
		&cli.StringFlag{
			Name:    "assets-root",
			EnvVars: []string{"TEXSYNC_ASSETS_ROOT"},
			Value:   defaultAssetsRoot,
			Usage:   "assets root containing items/ and tiles/",
		},
	}

	app.Action = func(c *cli.Context) error {
		source := c.String("source-dir")
		if source == "" {
			return cli.NewExitError("source directory not set, use --source-dir or TEXSYNC_SOURCE_DIR", exitUsage)
		}

		logger := log.New(c.App.Writer, "", 0)

		if _, err := texsync.New(texsync.DefaultTable, logger).Sync(context.Background(), source, c.String("assets-root")); err != nil {
			return cli.NewExitError(err, exitCode(err))
		}

		return nil
	}

	app.Commands = []*cli.Command{
		{
			Name:        "list",
			Usage:       "List the texture mappings",
			Description: "",
			Action: func(c *cli.Context) error {
				_, err := io.WriteString(c.App.Writer, renderMappings(texsync.DefaultTable, isTerminal(c.App.Writer))+"\n")
				return err
			},
		},
	}

	return app
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
