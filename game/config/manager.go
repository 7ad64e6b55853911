package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/maze-game/game/engine"
)

var (
	ErrLevelNotFound = errors.New("level not found")
	ErrNoLevelDir    = errors.New("no level directory configured")
)

// DefaultLevelName is the file name looked up when no level is requested
const DefaultLevelName = "default"

// LevelInfo provides information about a level file
type LevelInfo struct {
	Filename string `json:"filename"`
	LevelID  string `json:"level_id"`
	Columns  int    `json:"columns"`
	Rows     int    `json:"rows"`
	Theme    string `json:"theme"`
}

// Manager handles level loading and caching
type Manager struct {
	levelDir     string
	defaultLevel *engine.Level
	levels       map[string]*engine.Level
	mu           sync.RWMutex
}

// NewManager creates a new level manager. An empty levelDir restricts the
// manager to explicit file paths and the built-in level.
func NewManager(levelDir string) (*Manager, error) {
	if levelDir != "" {
		info, err := os.Stat(levelDir)
		if err != nil {
			return nil, fmt.Errorf("level directory does not exist: %s", levelDir)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("level directory is not a directory: %s", levelDir)
		}
	}

	m := &Manager{
		levelDir: levelDir,
		levels:   make(map[string]*engine.Level),
	}

	if err := m.loadDefaultLevel(); err != nil {
		return nil, fmt.Errorf("failed to load default level: %w", err)
	}

	return m, nil
}

// Load returns the level with the given name or path. An empty name
// returns the default level.
func (m *Manager) Load(name string) (*engine.Level, error) {
	if name == "" {
		return m.GetDefault(), nil
	}

	level, err := m.load(name)
	if err != nil {
		return nil, err
	}
	return level.Clone(), nil
}

func (m *Manager) load(name string) (*engine.Level, error) {
	m.mu.RLock()
	// Check cache first
	if level, exists := m.levels[name]; exists {
		m.mu.RUnlock()
		return level, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if level, exists := m.levels[name]; exists {
		return level, nil
	}

	path, err := m.resolve(name)
	if err != nil {
		return nil, err
	}

	level, err := engine.LoadLevel(path)
	if err != nil {
		return nil, err
	}

	m.levels[name] = level
	return level, nil
}

// resolve maps a level name or path to a file
func (m *Manager) resolve(name string) (string, error) {
	// Explicit paths win over names
	if strings.HasSuffix(name, ".json") || strings.ContainsRune(name, filepath.Separator) {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}

	if m.levelDir == "" {
		return "", fmt.Errorf("%w: '%s' (%v)", ErrLevelNotFound, name, ErrNoLevelDir)
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	path := filepath.Join(m.levelDir, filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: '%s'", ErrLevelNotFound, name)
		}
		return "", fmt.Errorf("failed to stat level file: %w", err)
	}
	return path, nil
}

// ListLevels returns information about all valid levels in the level directory
func (m *Manager) ListLevels() ([]*LevelInfo, error) {
	if m.levelDir == "" {
		return nil, ErrNoLevelDir
	}

	entries, err := os.ReadDir(m.levelDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read level directory: %w", err)
	}

	var levels []*LevelInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")

		level, err := m.load(name)
		if err != nil {
			// Skip invalid levels
			continue
		}

		levels = append(levels, &LevelInfo{
			Filename: entry.Name(),
			LevelID:  name,
			Columns:  level.Map.Width(),
			Rows:     level.Map.Height(),
			Theme:    level.ThemeName(),
		})
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].LevelID < levels[j].LevelID
	})
	return levels, nil
}

// GetDefault returns a copy of the default level
func (m *Manager) GetDefault() *engine.Level {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultLevel.Clone()
}

// loadDefaultLevel prefers default.json in the level directory and falls
// back to the built-in level when it is absent
func (m *Manager) loadDefaultLevel() error {
	level := engine.DefaultLevel()

	if m.levelDir != "" {
		loaded, err := m.load(DefaultLevelName)
		switch {
		case err == nil:
			level = loaded
		case !errors.Is(err, ErrLevelNotFound):
			return err
		}
	}

	m.mu.Lock()
	m.defaultLevel = level
	m.mu.Unlock()
	return nil
}
