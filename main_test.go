package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/maze-game/game/engine"
)

const spiralLevel = `{
	"map": [[0, 0, 0], [1, 1, 0], [0, 0, 0]],
	"player": {"x": 0, "y": 0},
	"goal": {"x": 0, "y": 2},
	"theme": "forest"
}`

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := newApp(&buf).Run(context.Background(), append([]string{"mazegame"}, args...))
	return buf.String(), err
}

func createLevelDir(t *testing.T, levels map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range levels {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write level %s: %v", name, err)
		}
	}
	return dir
}

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}
}

func TestSolveCommand_BuiltInLevel(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	out, err := runApp(t, "--level-dir", missing, "solve")
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 8 {
		t.Fatalf("Expected 7 steps and a summary, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "#1 up    (0,4) -> (0,3) playing") {
		t.Errorf("Unexpected first step %q", lines[0])
	}
	if !strings.HasSuffix(lines[6], "(3,1) -> (4,1) won") {
		t.Errorf("Unexpected last step %q", lines[6])
	}
	if lines[7] != "Reached the goal in 7 moves (0 blocked)" {
		t.Errorf("Unexpected summary %q", lines[7])
	}
}

func TestSolveCommand_NamedLevel(t *testing.T) {
	dir := createLevelDir(t, map[string]string{"spiral.json": spiralLevel})

	out, err := runApp(t, "--level-dir", dir, "--level", "spiral", "solve")
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !strings.Contains(out, "Reached the goal in 6 moves (0 blocked)") {
		t.Errorf("Unexpected output:\n%s", out)
	}
}

func TestSolveCommand_Unreachable(t *testing.T) {
	dir := createLevelDir(t, map[string]string{
		"blocked.json": `{"map": [[0, 1, 0]], "player": {"x": 0, "y": 0}, "goal": {"x": 2, "y": 0}}`,
	})

	_, err := runApp(t, "--level-dir", dir, "--level", "blocked", "solve")
	if !errors.Is(err, errUnreachable) {
		t.Errorf("Expected errUnreachable, got %v", err)
	}
}

func TestLayoutCommand(t *testing.T) {
	dir := createLevelDir(t, map[string]string{"spiral.json": spiralLevel})

	out, err := runApp(t, "--level-dir", dir, "--level", "spiral", "layout", "--tile", "10")
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}

	var layout engine.Layout
	if err := json.Unmarshal([]byte(out), &layout); err != nil {
		t.Fatalf("Failed to parse layout JSON: %v\n%s", err, out)
	}
	if layout.TileDim != 10 || layout.Width != 30 || layout.Height != 30 {
		t.Errorf("Unexpected layout size: %+v", layout)
	}
	if len(layout.Tiles) != 9 || len(layout.Sprites) != 2 {
		t.Errorf("Expected 9 tiles and 2 sprites, got %d and %d", len(layout.Tiles), len(layout.Sprites))
	}
	if layout.Theme != "forest" {
		t.Errorf("Expected theme forest, got %s", layout.Theme)
	}
}

func TestLoadLevel_InvalidLevel(t *testing.T) {
	dir := createLevelDir(t, map[string]string{
		"walled.json": `{"map": [[1, 0]], "player": {"x": 0, "y": 0}, "goal": {"x": 1, "y": 0}}`,
	})

	_, err := runApp(t, "--level-dir", dir, "--level", "walled", "solve")
	if !errors.Is(err, engine.ErrInvalidLevel) {
		t.Errorf("Expected ErrInvalidLevel, got %v", err)
	}
}

func TestValidateCommand(t *testing.T) {
	good := createLevelDir(t, map[string]string{"spiral.json": spiralLevel})

	out, err := runApp(t, "validate", good)
	if err != nil {
		t.Fatalf("validate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "All levels are valid") {
		t.Errorf("Unexpected output:\n%s", out)
	}

	bad := createLevelDir(t, map[string]string{
		"spiral.json": spiralLevel,
		"ragged.json": `{"map": [[0, 0], [0]], "player": {"x": 0, "y": 0}, "goal": {"x": 1, "y": 0}}`,
	})
	out, err = runApp(t, "--level-dir", bad, "validate")
	if !errors.Is(err, errInvalidLevels) {
		t.Errorf("Expected errInvalidLevels, got %v", err)
	}
	if !strings.Contains(out, "row 1 has 1 cells, expected 2") {
		t.Errorf("Expected ragged row error:\n%s", out)
	}
}

func TestListCommand(t *testing.T) {
	dir := createLevelDir(t, map[string]string{
		"spiral.json": spiralLevel,
		"broken.json": `{invalid json}`,
	})

	out, err := runApp(t, "--level-dir", dir, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "spiral") || !strings.Contains(out, "3x3 forest") {
		t.Errorf("Unexpected output:\n%s", out)
	}
	if strings.Contains(out, "broken") {
		t.Errorf("Invalid levels should not be listed:\n%s", out)
	}
}

func TestRedirectLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.log")

	restore, err := redirectLog(path)
	if err != nil {
		t.Fatalf("redirectLog failed: %v", err)
	}
	log.Printf("hello from the test")
	restore()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Errorf("Expected log line in file, got %q", string(data))
	}
}

func TestRedirectLog_Discard(t *testing.T) {
	restore, err := redirectLog("")
	if err != nil {
		t.Fatalf("redirectLog failed: %v", err)
	}
	if log.Writer() == os.Stderr {
		t.Error("Expected logger to be redirected")
	}
	restore()
	if log.Writer() != os.Stderr {
		t.Error("Expected logger to be restored to stderr")
	}
}

func TestNewManager_FileAsDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := newManager(file); err == nil {
		t.Error("Expected error when the level directory is a file")
	}
}
