// Command gridsnake plays the grid snake game in the terminal.
//
// Commands:
//  1. "play" (default) – runs the game on a tcell screen with sound cues
//  2. "configs" – lists board configurations or writes the built-in ones
//  3. "validate" – checks board configuration files and prints a report
//  4. "simulate" – applies a move script headlessly and prints the final board
//
// Global flags control the config directory, debug logging and the log file.
// A .env file in the working directory is loaded before flags are parsed.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/gridsnake/game/config"
	"github.com/wricardo/gridsnake/game/engine"
	"github.com/wricardo/gridsnake/game/session"
	"github.com/wricardo/gridsnake/transport/audio"
	"github.com/wricardo/gridsnake/transport/terminal"
	"github.com/wricardo/gridsnake/validate"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Grid Snake"
)

// ErrInvalidConfigs is returned by the validate command when any file fails
var ErrInvalidConfigs = errors.New("some configurations have errors")

// builtinBoards are written by "configs init"
var builtinBoards = []*engine.BoardConfig{
	engine.DefaultBoardConfig(),
	{
		Name:        "small",
		Description: "Small 10x8 board for quick rounds",
		Width:       10,
		Height:      8,
		TickMs:      250,
		Start:       engine.Position{X: 1, Y: 4},
		Food:        engine.Position{X: 7, Y: 4},
	},
	{
		Name:        "large",
		Description: "Large 30x20 board with a faster tick",
		Width:       30,
		Height:      20,
		TickMs:      120,
		Start:       engine.Position{X: 6, Y: 10},
		Food:        engine.Position{X: 23, Y: 10},
	},
}

// main loads .env and runs the CLI.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatalf("%s: %v", AppName, err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "gridsnake",
		Usage:   "Play snake on a grid in your terminal",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "Directory containing board configurations",
				Sources: cli.EnvVars("SNAKE_CONFIG_DIR", "CONFIG_DIR"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "Append logs to this file (play discards logs otherwise)",
				Sources: cli.EnvVars("SNAKE_LOG_FILE"),
			},
		},
		Action: playAction,
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "Play a round in the terminal (default)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "board", Aliases: []string{"b"}, Usage: "Board configuration name"},
					&cli.DurationFlag{Name: "tick", Usage: "Override the board's auto-advance period"},
					&cli.IntFlag{Name: "seed", Usage: "Seed for food placement (0 uses the clock)"},
					&cli.BoolFlag{Name: "mute", Usage: "Disable sound cues", Sources: cli.EnvVars("SNAKE_MUTE")},
				},
				Action: playAction,
			},
			{
				Name:  "configs",
				Usage: "Manage board configurations",
				Commands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List board configurations",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							defer setupLogging(cmd, false)()
							return listConfigs(cmd.Root().Writer, cmd.String("config-dir"))
						},
					},
					{
						Name:  "init",
						Usage: "Write the built-in boards to the config directory",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							defer setupLogging(cmd, false)()
							return initConfigs(cmd.Root().Writer, cmd.String("config-dir"))
						},
					},
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate board configuration files",
				ArgsUsage: "[FILES...]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					defer setupLogging(cmd, false)()
					return runValidate(cmd.Root().Writer, cmd.String("config-dir"), cmd.Args().Slice())
				},
			},
			{
				Name:  "simulate",
				Usage: "Apply a move script without a terminal and print the result",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "moves", Aliases: []string{"m"}, Usage: "Move script such as \"RRDDL\" (U/D/L/R, case-insensitive)", Required: true},
					&cli.StringFlag{Name: "board", Aliases: []string{"b"}, Usage: "Board configuration name"},
					&cli.IntFlag{Name: "seed", Value: 1, Usage: "Seed for food placement"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					defer setupLogging(cmd, false)()
					board, err := loadBoard(cmd.String("config-dir"), cmd.String("board"))
					if err != nil {
						return err
					}
					return simulate(cmd.Root().Writer, board, int64(cmd.Int("seed")), cmd.String("moves"))
				},
			},
		},
	}
}

// setupLogging points the standard logger at --log-file. While the TUI owns
// the terminal, logs without a file are discarded.
func setupLogging(cmd *cli.Command, tui bool) func() {
	if cmd.Bool("debug") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	path := cmd.String("log-file")
	if path == "" {
		if tui {
			log.SetOutput(io.Discard)
		}
		return func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("Warning: cannot open log file %s: %v", path, err)
		if tui {
			log.SetOutput(io.Discard)
		}
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}

// loadBoard resolves a board by name. Without a usable config directory only
// the built-in board is available.
func loadBoard(dir, name string) (*engine.BoardConfig, error) {
	manager, err := config.NewManager(dir)
	if err != nil {
		if name == "" || name == config.DefaultName {
			log.Printf("Using built-in board: %v", err)
			return engine.DefaultBoardConfig(), nil
		}
		return nil, fmt.Errorf("failed to initialize config manager: %w", err)
	}

	board, err := manager.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load board %q: %w", name, err)
	}
	return board, nil
}

func playAction(ctx context.Context, cmd *cli.Command) error {
	cleanup := setupLogging(cmd, true)
	defer cleanup()

	board, err := loadBoard(cmd.String("config-dir"), cmd.String("board"))
	if err != nil {
		return err
	}

	tick := board.TickPeriod()
	if override := cmd.Duration("tick"); override > 0 {
		tick = override
	}

	eng, err := engine.NewEngine(board, engine.NewSeededRandom(int64(cmd.Int("seed"))))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	log.Printf("Starting %s v%s (board: %s, %dx%d, tick: %s)", AppName, Version, board.Name, board.Width, board.Height, tick)

	player := audio.NewPlayer()
	if !cmd.Bool("mute") {
		if err := player.Init(); err != nil {
			log.Printf("Sound disabled: %v", err)
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	sess := session.New(eng, session.Options{
		Tick:     tick,
		Renderer: terminal.NewRenderer(screen),
		Sounds:   player,
		Logger:   log.Default(),
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The pump exits once Fini makes PollEvent return nil
	go terminal.PumpEvents(ctx, screen, sess.Submit)

	start := time.Now()
	if err := sess.Run(ctx); err != nil {
		return fmt.Errorf("session %s: %w", sess.ID, err)
	}

	log.Printf("Session %s finished after %s: %s, length %d/%d, %d rounds",
		sess.ID, time.Since(start).Round(time.Second), eng.State(), eng.Length(), board.Capacity(), sess.Rounds())
	return nil
}

func listConfigs(w io.Writer, dir string) error {
	manager, err := config.NewManager(dir)
	if err != nil {
		return fmt.Errorf("failed to initialize config manager: %w", err)
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		return fmt.Errorf("failed to list configs: %w", err)
	}

	if len(configs) == 0 {
		fmt.Fprintf(w, "No board configurations in %s (run \"configs init\")\n", dir)
		return nil
	}

	defaultName := manager.GetDefault().Name
	for _, info := range configs {
		marker := " "
		if info.Name == defaultName {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-12s %2dx%-2d %4dms  %s\n", marker, info.ConfigID, info.Width, info.Height, info.TickMs, info.Description)
	}
	return nil
}

func initConfigs(w io.Writer, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	manager, err := config.NewManager(dir)
	if err != nil {
		return fmt.Errorf("failed to initialize config manager: %w", err)
	}

	for _, board := range builtinBoards {
		if _, err := manager.LoadConfig(board.Name); err == nil {
			fmt.Fprintf(w, "skipped %s (already exists)\n", board.Name)
			continue
		}
		if err := manager.SaveConfig(board.Name, board); err != nil {
			return fmt.Errorf("failed to write %s: %w", board.Name, err)
		}
		fmt.Fprintf(w, "wrote %s.json\n", board.Name)
	}
	return nil
}

func runValidate(w io.Writer, dir string, files []string) error {
	var results []validate.Result
	if len(files) == 0 {
		var err error
		if results, err = validate.Dir(dir); err != nil {
			return err
		}
	} else {
		for _, file := range files {
			results = append(results, validate.File(file))
		}
	}

	if !validate.Report(w, results) {
		return ErrInvalidConfigs
	}
	return nil
}

// simulate applies script to a fresh engine and prints the outcome. The same
// seed and script always print the same board.
func simulate(w io.Writer, board *engine.BoardConfig, seed int64, script string) error {
	moves, err := engine.ParseMoves(script)
	if err != nil {
		return fmt.Errorf("invalid moves: %w", err)
	}

	eng, err := engine.NewEngine(board, engine.NewSeededRandom(seed))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	applied := 0
	for _, ok := range eng.BulkMove(moves) {
		if ok {
			applied++
		}
	}

	snap := eng.Snapshot()
	fmt.Fprintf(w, "Board: %s (%dx%d)\n", board.Name, board.Width, board.Height)
	fmt.Fprintf(w, "Moves: %d/%d applied\n", applied, len(moves))
	fmt.Fprintf(w, "State: %s\n", snap.State)
	fmt.Fprintf(w, "Length: %d/%d\n", snap.Length(), snap.Capacity())
	fmt.Fprintln(w, strings.Join(engine.FormatBoard(snap), "\n"))
	return nil
}
