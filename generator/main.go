package main

import (
	"context"
	"os"

	"git.solver4all.com/azaryc2s/srp"
	"git.solver4all.com/azaryc2s/srp/logger"
	"git.solver4all.com/azaryc2s/srp/plan"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

func main() {
	_ = godotenv.Load()

	app := cli.NewApp()
	app.Name = "generator"
	app.Usage = "generate star routing instances for the solver"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "YAML plan of the instances to generate. Without it and without --grid/--euclid the standard test set is generated", EnvVar: "SRP_PLAN"},
		cli.Int64Flag{Name: "seed", Usage: "Seed of the random generator", EnvVar: "SRP_SEED"},
		cli.StringFlag{Name: "output, o", Usage: "Directory receiving one instance_<name> directory per instance", EnvVar: "SRP_OUTPUT_DIR"},
		cli.IntFlag{Name: "workers", Usage: "Number of instances written concurrently", EnvVar: "SRP_WORKERS"},
		cli.GenericFlag{Name: "grid", Value: &srp.GridSizeFlags{}, Usage: "Grid instance as ROWSxCOLS (repeatable)"},
		cli.Float64Flag{Name: "customer-prob", Value: 0.1, Usage: "Probability of a grid node being a customer"},
		cli.IntFlag{Name: "vehicles", Value: 1, Usage: "Vehicles of the grid instances"},
		cli.StringFlag{Name: "layout", Value: string(srp.CellLayout), Usage: "Grid layout: cell or lattice"},
		cli.GenericFlag{Name: "euclid", Value: &srp.EuclideanFlags{}, Usage: "Euclidean instance as NODES:CUSTOMERS:VEHICLES:THRESHOLD (repeatable)"},
		cli.StringFlag{Name: "log-level", Value: "info", EnvVar: "LOG_LEVEL"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log := logger.New(logger.Config{Level: "error", Pretty: true})
		log.Fatal().Err(err).Msg("Generation failed")
	}
}

func run(c *cli.Context) error {
	log := logger.New(logger.Config{Level: c.String("log-level"), Pretty: true})

	p, err := buildPlan(c)
	if err != nil {
		return err
	}
	log.Info().
		Int64("seed", p.Seed).
		Str("output", p.Output).
		Int("instances", p.Size()).
		Msg("Generating instances")

	_, err = plan.NewRunner(p, log).Run(context.Background())
	return err
}

func buildPlan(c *cli.Context) (*plan.Plan, error) {
	grids := *c.Generic("grid").(*srp.GridSizeFlags)
	euclid := *c.Generic("euclid").(*srp.EuclideanFlags)

	var p *plan.Plan
	switch {
	case c.String("config") != "":
		var err error
		if p, err = plan.Load(c.String("config")); err != nil {
			return nil, err
		}
	case len(grids) > 0 || len(euclid) > 0:
		p = plan.New()
	default:
		p = plan.Default()
	}

	for _, g := range grids {
		p.Grids = append(p.Grids, plan.Grid{
			Rows:         g[0],
			Cols:         g[1],
			Vehicles:     c.Int("vehicles"),
			CustomerProb: c.Float64("customer-prob"),
			Layout:       c.String("layout"),
		})
	}
	for _, e := range euclid {
		p.Euclidean = append(p.Euclidean, plan.Euclidean{Nodes: e.Nodes, Customers: e.Customers, Vehicles: e.Vehicles, Threshold: e.Threshold})
	}
	if c.IsSet("seed") {
		p.Seed = c.Int64("seed")
	}
	if c.IsSet("output") {
		p.Output = c.String("output")
	}
	if c.IsSet("workers") {
		p.Workers = c.Int("workers")
	}
	return p, p.Validate()
}
