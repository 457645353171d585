// Demonstrates nested timers, lap timing and scoped timing.
package main

import (
	"math"
	"time"

	"github.com/effortless-go/effortless/internal/version"
	"github.com/effortless-go/effortless/pkg/logger"
	"github.com/effortless-go/effortless/pkg/timing"
)

func busyWork(n int) float64 {
	x := 1.0
	for i := 0; i < n; i++ {
		x += math.Sqrt(float64(i) + x)
	}
	return x
}

func main() {
	log := logger.New("timing-example", nil)
	log.Infof("effortless %s", version.Version)

	root := timing.New("pipeline")
	prepare := root.Nest("prepare")
	work := root.Nest("work")

	for i := 0; i < 50; i++ {
		root.Start()

		prepare.Start()
		time.Sleep(time.Millisecond)
		prepare.Stop()

		work.Start()
		busyWork(200_000)
		work.Stop()

		root.Stop()
	}

	log.Println(root.Report())

	// A region timed from entry to every exit path.
	func() {
		defer timing.NewScope("shutdown", log).End()
		time.Sleep(5 * time.Millisecond)
	}()
}
