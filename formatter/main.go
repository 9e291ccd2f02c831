package main

import (
	"errors"
	"os"

	"git.solver4all.com/azaryc2s/srp"
	"git.solver4all.com/azaryc2s/srp/logger"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

func main() {
	_ = godotenv.Load()

	app := cli.NewApp()
	app.Name = "formatter"
	app.Usage = "rewrite instance directories in the current file format"
	app.ArgsUsage = "DIR..."
	app.Flags = []cli.Flag{
		cli.Float64Flag{Name: "absent", Value: srp.AbsentEdge, Usage: "Weight marking a missing edge in the existing graph.txt (older files use 0, 10000 or N*N)"},
		cli.StringFlag{Name: "log-level", Value: "info", EnvVar: "LOG_LEVEL"},
	}
	app.Action = func(c *cli.Context) error {
		log := logger.New(logger.Config{Level: c.String("log-level"), Pretty: true})
		if c.NArg() == 0 {
			return errors.New("no instance directories passed")
		}
		for _, dir := range c.Args() {
			if err := rewrite(dir, c.Float64("absent")); err != nil {
				return err
			}
			log.Info().Str("dir", dir).Msg("Rewrote instance")
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log := logger.New(logger.Config{Level: "error", Pretty: true})
		log.Fatal().Err(err).Msg("Formatting failed")
	}
}

func rewrite(dir string, absent float64) error {
	inst, err := srp.Load(dir, absent)
	if err != nil {
		return err
	}
	return srp.WriteInstance(dir, inst)
}
