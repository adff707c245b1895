// Command corescope drives the bus/GPU-memory state machine from the
// command line. It is not a rendering front end: it never touches a
// framebuffer or an event loop, it only exercises get8/set8 and the mode
// machine so the state core can be inspected without a full emulator.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/gbcgb/corescope/corescope"
	"github.com/gbcgb/corescope/corescope/video"
)

func main() {
	app := cli.NewApp()
	app.Name = "corescope"
	app.Usage = "inspect the CGB bus/GPU-memory state core"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "rom", Usage: "path to a ROM image to load into the cartridge stub"},
		cli.IntFlag{Name: "lines", Value: 5, Usage: "number of scanlines to step through"},
		cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, or warn"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	setLogLevel(c.String("log-level"))

	bus := corescope.NewBus()

	if romPath := c.String("rom"); romPath != "" {
		data, err := os.ReadFile(romPath)
		if err != nil {
			return fmt.Errorf("reading rom: %w", err)
		}
		bus.LoadROM(data)
	}

	lines := c.Int("lines")
	for i := 0; i < lines; i++ {
		bus.ChangeMode(video.OAMScanMode{DotsRemaining: 80})
		bus.ChangeMode(video.DrawingMode{DotsRemaining: 172})
		objs := bus.GPU.ScanOam(int(bus.GPU.GetLy()))
		bus.ChangeMode(video.HBlankMode{DotsRemaining: 204, LineObjCount: len(objs)})
		bus.IncLY()

		slog.Info("scanline stepped",
			"ly", bus.GPU.GetLy(),
			"stat", fmt.Sprintf("0x%02X", bus.Get8(0xFF41)),
			"objects", len(objs),
		)
	}

	return nil
}

func setLogLevel(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}
