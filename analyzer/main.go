package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.solver4all.com/azaryc2s/srp"
	"git.solver4all.com/azaryc2s/srp/logger"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "analyzer"
	app.Usage = "summarize and check every instance directory below DIR as CSV"
	app.ArgsUsage = "DIR"
	app.Flags = []cli.Flag{
		cli.Float64Flag{Name: "absent", Value: srp.AbsentEdge, Usage: "Weight marking a missing edge in graph.txt"},
	}
	app.Action = func(c *cli.Context) error {
		if c.NArg() != 1 {
			return errors.New("expected exactly one directory")
		}
		return analyze(os.Stdout, c.Args().First(), c.Float64("absent"))
	}

	if err := app.Run(os.Args); err != nil {
		log := logger.New(logger.Config{Level: "error", Pretty: true})
		log.Fatal().Err(err).Msg("Analysis failed")
	}
}

func analyze(w io.Writer, root string, absent float64) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("couldn't open directory %s: %w", root, err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), "instance") {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)

	fmt.Fprintf(w, "Name,Nodes,Customers,Vehicles,Capacity,Demand,MaxDemand,Status\n")
	for _, d := range dirs {
		inst, err := srp.Load(filepath.Join(root, d), absent)
		if err != nil {
			fmt.Fprintf(w, "%s,,,,,,,ANALYZER: Error = %s\n", d, csvSafe(err.Error()))
			continue
		}
		fmt.Fprintf(w, "%s,%d,%d,%d,%d,%d,%d,%s\n", inst.Name, inst.Graph.Order(), len(inst.Packages),
			inst.Vehicles, inst.Capacity, inst.TotalDemand(), inst.MaxDemand(), status(inst))
	}
	return nil
}

// status flags instances the solver can never serve completely.
func status(inst *srp.Instance) string {
	if inst.MaxDemand() > inst.Capacity {
		return fmt.Sprintf("demand %d exceeds capacity %d", inst.MaxDemand(), inst.Capacity)
	}
	if inst.TotalDemand() > inst.Capacity*inst.Vehicles {
		return fmt.Sprintf("total demand %d exceeds fleet capacity %d", inst.TotalDemand(), inst.Capacity*inst.Vehicles)
	}
	return "OK"
}

func csvSafe(s string) string {
	return strings.NewReplacer(",", ";", "\n", " ").Replace(s)
}
