package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/delaneyj/minisignals/mini"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100, 1_000}
)

type intCell interface {
	Value() int
}

func addOne(prev intCell) mini.ComputeFn[int] {
	return func() (int, error) {
		return prev.Value() + 1, nil
	}
}

func propagate(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(iterationsKey))
	maxReentry := int(cmd.Uint(maxReentryKey))

	tbl := table.NewWriter()
	tbl.SetTitle("mini signals")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "effect runs"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rs := mini.CreateReactiveSystem(mini.WithMaxReentry(maxReentry))
			src := mini.Signal(rs, 1)
			effectRuns := 0
			for i := 0; i < w; i++ {
				var last intCell = src
				for j := 0; j < h; j++ {
					c, err := mini.Computed(rs, addOne(last))
					if err != nil {
						return err
					}
					last = c
				}

				if err := mini.Effect(rs, func() error {
					last.Value()
					effectRuns++
					return nil
				}); err != nil {
					return err
				}
			}
			effectRuns = 0

			for i := 0; i < iters; i++ {
				start := time.Now()
				if err := src.SetValue(src.Peek() + 1); err != nil {
					return fmt.Errorf("propagate %d * %d: %w", w, h, err)
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
					effectRuns,
				},
			})
		}
	}

	tbl.Render()
	return nil
}
