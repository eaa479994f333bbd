package mini_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/minisignals/mini"
)

func BenchmarkPropagate(b *testing.B) {
	for _, w := range []int{1, 10, 100} {
		for _, h := range []int{1, 10, 100} {
			b.Run(fmt.Sprintf("propagate: %d * %d", w, h), func(b *testing.B) {
				rs := mini.CreateReactiveSystem()
				src := mini.Signal(rs, 1)
				for i := 0; i < w; i++ {
					var last interface{ Value() int } = src
					for j := 0; j < h; j++ {
						prev := last
						c, err := mini.Computed(rs, func() (int, error) {
							return prev.Value() + 1, nil
						})
						if err != nil {
							b.Fatal(err)
						}
						last = c
					}
					if err := mini.Effect(rs, func() error {
						last.Value()
						return nil
					}); err != nil {
						b.Fatal(err)
					}
				}

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := src.Update(func(v int) int { return v + 1 }); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
