package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/kallsen/voronoi/point"
	"github.com/kallsen/voronoi/voronoi"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "gensites",
		Usage:     "Generates random sites in a plane, computes their Voronoi diagram, and outputs a summary to stdout as JSON",
		UsageText: "gensites --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of sites to create",
				Value:    10,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "maxx",
				Usage:    "The maximum X value of the plane",
				OnlyOnce: true,
				Value:    100,
			},
			&cli.IntFlag{
				Name:     "minx",
				Usage:    "The minimum X value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "maxy",
				Usage:    "The maximum Y value of the plane",
				OnlyOnce: true,
				Value:    100,
			},
			&cli.IntFlag{
				Name:     "miny",
				Usage:    "The minimum Y value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomFloatInRange(min, max int64) float64 {
	return float64(min) + rand.Float64()*float64(max-min)
}

// summary is the JSON shape printed to stdout: enough to confirm the
// diagram's combinatorics without dumping every half-edge.
type summary struct {
	Sites    []point.Point `json:"sites"`
	Faces    int           `json:"faces"`
	Edges    int           `json:"edges"`
	Vertices int           `json:"vertices"`
}

func app(_ context.Context, cmd *cli.Command) error {
	minx := cmd.Int("minx")
	maxx := cmd.Int("maxx")
	miny := cmd.Int("miny")
	maxy := cmd.Int("maxy")
	n := cmd.Int("number")

	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	sites := make([]point.Point, n)
	for i := int64(0); i < n; i++ {
		sites[i] = point.New(randomFloatInRange(minx, maxx), randomFloatInRange(miny, maxy))
	}

	diagram := voronoi.ComputeVoronoi(sites)

	b, err := json.Marshal(summary{
		Sites:    sites,
		Faces:    diagram.FaceCount(),
		Edges:    diagram.EdgeCount(),
		Vertices: diagram.VertexCount(),
	})
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
