package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"git.solver4all.com/azaryc2s/srp"
	"git.solver4all.com/azaryc2s/srp/logger"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

func main() {
	_ = godotenv.Load()

	app := cli.NewApp()
	app.Name = "converter-tagliavini"
	app.Usage = "translate instances of Tagliavini's grid format into solver instances"
	app.ArgsUsage = "FILE..."
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "output, o", Value: "resources", Usage: "Directory receiving the instance directories", EnvVar: "SRP_OUTPUT_DIR"},
		cli.StringFlag{Name: "name", Usage: "Instance name, only with a single input file. Defaults to the file name without extension"},
		cli.StringFlag{Name: "log-level", Value: "info", EnvVar: "LOG_LEVEL"},
	}
	app.Action = func(c *cli.Context) error {
		log := logger.New(logger.Config{Level: c.String("log-level"), Pretty: true})
		files := c.Args()
		if len(files) == 0 {
			return errors.New("no input files passed")
		}
		if c.String("name") != "" && len(files) > 1 {
			return errors.New("--name needs exactly one input file")
		}
		w := srp.Writer{Root: c.String("output")}
		for _, f := range files {
			name := c.String("name")
			if name == "" {
				name = instanceName(f)
			}
			inst, err := srp.ImportTagliaviniFile(name, f)
			if err != nil {
				return err
			}
			dir, err := w.Write(inst)
			if err != nil {
				return err
			}
			log.Info().
				Str("source", f).
				Str("dir", dir).
				Int("customers", len(inst.Packages)).
				Msg("Converted instance")
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log := logger.New(logger.Config{Level: "error", Pretty: true})
		log.Fatal().Err(err).Msg("Conversion failed")
	}
}

// instanceName turns "instance/5_40.in" into "5_40".
func instanceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
