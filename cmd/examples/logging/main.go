// Demonstrates the tagged logger, throttled logging and file sinks.
package main

import (
	"time"

	"github.com/spf13/afero"

	"github.com/effortless-go/effortless/pkg/logger"
	"github.com/effortless-go/effortless/pkg/throttle"
	"github.com/effortless-go/effortless/pkg/timing"
)

func main() {
	log := logger.New("logging-example", nil)

	log.Infof("an informational line, value=%d", 42)
	log.Warnf("a warning, yellow on color terminals")
	log.Errorf("an error, red on color terminals")
	log.Debugf("only visible with the effortlessdebug build tag")
	log.Newline(1)

	// Emit at most one progress line per 200ms while looping much faster.
	progress := throttle.New(200 * time.Millisecond)
	loop := timing.New("loop")
	for i := 0; i < 100; i++ {
		loop.Start()
		time.Sleep(5 * time.Millisecond)
		loop.Stop()

		progress.Do(func() {
			log.Infof("iteration %d, mean %0.1fms", i, 1000*loop.Mean())
		})
	}
	log.Println(loop.Report())

	// Timestamped file sink; falls back to the console on failure.
	settings := logger.DefaultSettings()
	settings.Timed = true

	fileLog, err := logger.NewFileLogger(
		afero.NewOsFs(), "logging-example", "effortless-example.log",
		&logger.Params{Settings: &settings})
	if err != nil {
		log.Errorf("file sink unavailable: %v", err)
	}
	defer fileLog.Close()

	fileLog.Infof("this line went to effortless-example.log")
}
