// Command mazegame plays a single-level tile maze.
//
// Commands:
//  1. "play" (default) – plays the level in the terminal
//  2. "desktop" – plays the level in a desktop window (build with -tags desktop)
//  3. "layout" – prints the renderer layout descriptors as JSON
//  4. "validate" – validates level files or directories
//  5. "solve" – replays the shortest path to the goal and prints every step
//  6. "list" – lists the levels in the level directory
//
// Global flags select the level, the level directory, debug logging and a
// log file. Every flag can also be set through the environment or a .env file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/maze-game/game/config"
	"github.com/wricardo/maze-game/game/engine"
	"github.com/wricardo/maze-game/game/session"
	"github.com/wricardo/maze-game/game/solver"
	"github.com/wricardo/maze-game/render/terminal"
	"github.com/wricardo/maze-game/validate"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Maze Game"
)

var (
	errInvalidLevels = errors.New("some levels have errors")
	errUnreachable   = errors.New("goal is unreachable from the player start")
)

// main loads the environment and runs the selected command.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}

// newApp builds the command tree. Command output goes to w.
func newApp(w io.Writer) *cli.Command {
	tileFlag := &cli.IntFlag{
		Name:  "tile",
		Usage: "tile size in pixels",
		Value: engine.DefaultTileDim,
	}

	return &cli.Command{
		Name:    "mazegame",
		Usage:   "move the player through the maze to the goal",
		Version: Version,
		Writer:  w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "level",
				Usage:   "level name inside the level directory, or a path to a level file",
				Sources: cli.EnvVars("MAZE_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "level-dir",
				Usage:   "directory containing level files",
				Value:   "levels",
				Sources: cli.EnvVars("MAZE_LEVEL_DIR"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("MAZE_DEBUG"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write logs to this file (the terminal frontend discards logs otherwise)",
				Sources: cli.EnvVars("MAZE_LOG_FILE"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogging(cmd.Bool("debug"))
			return ctx, nil
		},
		Action: playAction,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play the level in the terminal",
				Action: playAction,
			},
			{
				Name:   "desktop",
				Usage:  "play the level in a desktop window",
				Flags:  []cli.Flag{tileFlag},
				Action: desktopAction,
			},
			{
				Name:   "layout",
				Usage:  "print the layout descriptors of the level as JSON",
				Flags:  []cli.Flag{tileFlag},
				Action: layoutAction,
			},
			{
				Name:      "validate",
				Usage:     "validate level files (defaults to the level directory)",
				ArgsUsage: "[files or directories...]",
				Action:    validateAction,
			},
			{
				Name:   "solve",
				Usage:  "replay the shortest path to the goal",
				Action: solveAction,
			},
			{
				Name:   "list",
				Usage:  "list the levels in the level directory",
				Action: listAction,
			},
		},
	}
}

// setupLogging mirrors the log flags used across the project
func setupLogging(debug bool) {
	if debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

// redirectLog sends log output to path, or discards it when path is empty.
// The returned func restores stderr.
func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

// newManager opens the level directory. A missing directory is not fatal:
// explicit level paths and the built-in level still work.
func newManager(levelDir string) (*config.Manager, error) {
	manager, err := config.NewManager(levelDir)
	if err == nil {
		return manager, nil
	}
	if _, statErr := os.Stat(levelDir); statErr == nil {
		return nil, err
	}

	log.Printf("Level directory %q not found, using built-in level", levelDir)
	return config.NewManager("")
}

func loadLevel(cmd *cli.Command) (*engine.Level, error) {
	manager, err := newManager(cmd.String("level-dir"))
	if err != nil {
		return nil, fmt.Errorf("failed to create level manager: %w", err)
	}

	level, err := manager.Load(cmd.String("level"))
	if err != nil {
		return nil, fmt.Errorf("failed to load level: %w", err)
	}
	return level, nil
}

func playAction(ctx context.Context, cmd *cli.Command) error {
	level, err := loadLevel(cmd)
	if err != nil {
		return err
	}

	sess, err := session.New(level)
	if err != nil {
		return err
	}

	restore, err := redirectLog(cmd.String("log-file"))
	if err != nil {
		return err
	}
	defer restore()

	log.Printf("Starting %s v%s (session: %s, theme: %s)", AppName, Version, sess.ID, sess.Theme())
	return terminal.NewView(sess).Start()
}

func desktopAction(ctx context.Context, cmd *cli.Command) error {
	level, err := loadLevel(cmd)
	if err != nil {
		return err
	}

	sess, err := session.NewWithTileDim(level, int(cmd.Int("tile")))
	if err != nil {
		return err
	}

	if path := cmd.String("log-file"); path != "" {
		restore, err := redirectLog(path)
		if err != nil {
			return err
		}
		defer restore()
	}

	log.Printf("Starting %s v%s (session: %s, theme: %s)", AppName, Version, sess.ID, sess.Theme())
	return runDesktop(sess)
}

func layoutAction(ctx context.Context, cmd *cli.Command) error {
	level, err := loadLevel(cmd)
	if err != nil {
		return err
	}

	sess, err := session.NewWithTileDim(level, int(cmd.Int("tile")))
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(sess.Snapshot().Layout, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}
	fmt.Fprintln(cmd.Root().Writer, string(data))
	return nil
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		paths = []string{cmd.String("level-dir")}
	}

	results, err := validate.ValidatePaths(paths)
	if err != nil {
		return err
	}

	if !validate.WriteReport(cmd.Root().Writer, results) {
		return errInvalidLevels
	}
	return nil
}

func solveAction(ctx context.Context, cmd *cli.Command) error {
	level, err := loadLevel(cmd)
	if err != nil {
		return err
	}

	path, ok := solver.ShortestPath(level)
	if !ok {
		return errUnreachable
	}

	sess, err := session.New(level)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	for _, direction := range solver.Directions(path) {
		step := sess.Handle(direction)
		fmt.Fprintf(w, "#%d %-5s (%d,%d) -> (%d,%d) %s\n",
			step.Number, step.Direction, step.From.X, step.From.Y, step.To.X, step.To.Y, step.Status)
	}

	snap := sess.Snapshot()
	if !snap.Status.Won() {
		return fmt.Errorf("replay ended at (%d,%d) without reaching the goal", snap.Player.X, snap.Player.Y)
	}
	blocked := 0
	for _, entry := range sess.History() {
		if !entry.Success {
			blocked++
		}
	}
	fmt.Fprintf(w, "Reached the goal in %d moves (%d blocked)\n", snap.Steps, blocked)
	return nil
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	manager, err := config.NewManager(cmd.String("level-dir"))
	if err != nil {
		return err
	}

	levels, err := manager.ListLevels()
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	for _, info := range levels {
		fmt.Fprintf(w, "%-20s %dx%d %s\n", info.LevelID, info.Columns, info.Rows, info.Theme)
	}
	if len(levels) == 0 {
		fmt.Fprintln(w, "No valid levels found")
	}
	return nil
}
