package main

import (
	"context"
	"log"
	"os"
	"runtime/pprof"

	"github.com/urfave/cli/v3"
)

const (
	profileKey    = "profile"
	iterationsKey = "iters"
	maxReentryKey = "max-reentry"
	repeatsKey    = "repeats"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure propagation through mini signals",
		Commands: []*cli.Command{
			{
				Name:  "propagate",
				Usage: "Write a source feeding width chains of height computeds",
				Flags: append(commonFlags(),
					&cli.UintFlag{
						Name:  iterationsKey,
						Usage: "Writes per graph",
						Value: 100,
					},
				),
				Action: withProfile(propagate),
			},
			{
				Name:  "dynamic",
				Usage: "Run layered graphs whose nodes change their dependencies",
				Flags: append(commonFlags(),
					&cli.UintFlag{
						Name:  repeatsKey,
						Usage: "Timed repeats per config, the best one is reported",
						Value: 5,
					},
				),
				Action: withProfile(dynamic),
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  profileKey,
			Usage: "Write a CPU profile to this file",
		},
		&cli.UintFlag{
			Name:  maxReentryKey,
			Usage: "How often an effect may re-enter itself before a cycle is reported",
			Value: 100,
		},
	}
}

func withProfile(action cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		path := cmd.String(profileKey)
		if path == "" {
			return action(ctx, cmd)
		}

		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
		log.Printf("writing CPU profile to %s", path)

		return action(ctx, cmd)
	}
}
