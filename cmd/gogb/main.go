package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli"

	gogb "github.com/mattjamison/gogb"
	"github.com/mattjamison/gogb/internal/debug"
)

func main() {
	app := cli.NewApp()
	app.Name = "gogb"
	app.Description = "A cycle-stepped DMG/CGB emulator core"
	app.Usage = "gogb [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without any interface, for a fixed number of frames",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "cgb",
			Usage: "Force CGB mode regardless of the cartridge header",
		},
		cli.BoolFlag{
			Name:  "dmg",
			Usage: "Force DMG mode regardless of the cartridge header",
		},
		cli.StringSliceFlag{
			Name:  "cheat",
			Usage: "Register a cheat code (gameshark:CODE or gamegenie:CODE), repeatable",
		},
		cli.StringFlag{
			Name:  "save-file",
			Usage: "Path used to load and persist battery-backed RAM",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Run the interactive terminal inspector",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug-level logging",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// batterySaver persists battery RAM next to the ROM (or at --save-file).
type batterySaver struct {
	path string
	log  zerolog.Logger
}

func (s *batterySaver) SaveRAM(title string, ram []byte) {
	if err := os.WriteFile(s.path, ram, 0o644); err != nil {
		s.log.Error().Err(err).Str("title", title).Msg("persisting battery RAM")
	}
}

func run(c *cli.Context) (err error) {
	defer func() {
		// internal invariant violations panic; surface them as a
		// diagnostic at the process boundary instead of a stack dump
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	level := zerolog.InfoLevel
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return cli.NewExitError("no ROM path provided", 1)
		}
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return err
	}

	savePath := c.String("save-file")
	if savePath == "" {
		savePath = strings.TrimSuffix(romPath, filepath.Ext(romPath)) + ".sav"
	}
	var saveRAM []byte
	if data, err := os.ReadFile(savePath); err == nil {
		saveRAM = data
		log.Info().Str("path", savePath).Int("bytes", len(data)).Msg("restored battery RAM")
	}

	opts := []gogb.Option{
		gogb.WithLogger(log),
		gogb.WithCartridgeEffects(&batterySaver{path: savePath, log: log}),
	}
	if c.Bool("cgb") {
		opts = append(opts, gogb.WithCGB())
	}
	if c.Bool("dmg") {
		opts = append(opts, gogb.WithDMG())
	}

	emu, err := gogb.New(rom, saveRAM, opts...)
	if err != nil {
		return err
	}

	for i, arg := range c.StringSlice("cheat") {
		id := fmt.Sprintf("cli-%d", i)
		var cheatErr error
		switch {
		case strings.HasPrefix(arg, "gameshark:"):
			cheatErr = emu.RegisterGameShark(id, strings.TrimPrefix(arg, "gameshark:"))
		case strings.HasPrefix(arg, "gamegenie:"):
			cheatErr = emu.RegisterGameGenie(id, strings.TrimPrefix(arg, "gamegenie:"))
		default:
			cheatErr = fmt.Errorf("cheat must be prefixed with gameshark: or gamegenie:")
		}
		if cheatErr != nil {
			return fmt.Errorf("invalid cheat %q: %w", arg, cheatErr)
		}
	}

	if c.Bool("debug") {
		return debug.NewInspector(emu).Run()
	}

	if !c.Bool("headless") {
		return cli.NewExitError("this build only carries the headless and --debug front ends", 1)
	}

	frames := c.Int("frames")
	if frames <= 0 {
		return cli.NewExitError("headless mode requires --frames with a positive value", 1)
	}

	rendered := 0
	emu.SetFrameCallback(func(*gogb.FrameBuffer) { rendered++ })
	for i := 0; i < frames; i++ {
		emu.RunFrame()
	}
	log.Info().
		Int("frames", rendered).
		Uint64("t_cycles", emu.TCycles()).
		Msg("headless run complete")
	return nil
}
