package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/partite-ai/obcgo/hal"
)

var log = logging.Logger("blink")

func main() {
	logging.SetLogLevel("blink", "info")

	// A .env alongside the binary can override the flag defaults.
	godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	app := cli.NewApp()
	app.Name = "blink"
	app.Usage = "toggle a simulated LED pin on a fixed period"
	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "pin",
			Usage:   "LED pin number",
			Value:   13,
			EnvVars: []string{"BLINK_PIN"},
		},
		&cli.DurationFlag{
			Name:    "period",
			Usage:   "time between toggles",
			Value:   time.Second,
			EnvVars: []string{"BLINK_PERIOD"},
		},
		&cli.IntFlag{
			Name:    "count",
			Usage:   "stop after this many toggles (0 runs until interrupted)",
			Value:   0,
			EnvVars: []string{"BLINK_COUNT"},
		},
		&cli.IntFlag{
			Name:  "pins",
			Usage: "number of pins on the simulated board",
			Value: 32,
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}
	app.Action = func(cctx *cli.Context) error {
		if cctx.Bool("debug") {
			logging.SetLogLevel("blink", "debug")
			logging.SetLogLevel("hal", "debug")
		}

		backend := hal.NewSimBackend(cctx.Int("pins"))
		handles := hal.Handles{
			Backend: backend,
			LEDPin:  cctx.Int("pin"),
			Period:  cctx.Duration("period"),
			Count:   cctx.Int("count"),
		}

		log.Infow("starting blink loop",
			"pin", handles.LEDPin,
			"period", handles.Period,
			"count", handles.Count,
		)
		err := hal.Run(cctx.Context, handles)
		if errors.Is(err, context.Canceled) {
			log.Info("interrupted")
			return nil
		}
		return err
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
