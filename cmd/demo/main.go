package main

import (
	"context"
	"log"
	"os"

	"github.com/delaneyj/minisignals/mini"
	"github.com/urfave/cli/v3"
)

const (
	priceKey      = "price"
	quantityKey   = "quantity"
	maxReentryKey = "max-reentry"
)

func main() {
	cmd := &cli.Command{
		Name:  "demo",
		Usage: "Drive the counter, total and name views from stdin (inc, qty N, price N, name TEXT, quit)",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  priceKey,
				Usage: "Initial price",
				Value: 10,
			},
			&cli.UintFlag{
				Name:  quantityKey,
				Usage: "Initial quantity",
				Value: 2,
			},
			&cli.UintFlag{
				Name:  maxReentryKey,
				Usage: "How often an effect may re-enter itself before a cycle is reported",
				Value: mini.DefaultMaxReentry,
			},
		},
		Action: demo,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func demo(ctx context.Context, cmd *cli.Command) error {
	rs := mini.CreateReactiveSystem(mini.WithMaxReentry(int(cmd.Uint(maxReentryKey))))

	a, err := newApp(rs, int(cmd.Uint(priceKey)), int(cmd.Uint(quantityKey)))
	if err != nil {
		return err
	}
	if err := a.render(os.Stdout); err != nil {
		return err
	}
	return a.run(os.Stdin)
}
