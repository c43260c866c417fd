// Package validate checks board configuration JSON files and prints a
// human-readable report. It checks:
//   - JSON structure and required fields
//   - Board dimensions and the tick period range
//   - Start and food cells inside the board and distinct
//
// Valid files also get informational lines (capacity, distance from the start
// cell to the first food) that help when tuning new boards.
package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/gridsnake/game/engine"
)

// Result captures the outcome of validating a single file.
// If Valid is true, Messages contains informational lines; otherwise it
// accumulates the validation errors that were found.
type Result struct {
	File     string
	Valid    bool
	Messages []string
}

func (r *Result) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
}

// File loads and validates a single board configuration file.
func File(filePath string) Result {
	result := Result{
		File:     filepath.Base(filePath),
		Valid:    true,
		Messages: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	return Bytes(result.File, data)
}

// Bytes validates an in-memory board configuration. Unlike
// engine.ValidateBoardConfig it keeps going after the first problem so the
// report lists all of them.
func Bytes(name string, data []byte) Result {
	result := Result{
		File:     name,
		Valid:    true,
		Messages: []string{},
	}

	var config engine.BoardConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	if config.Name == "" {
		result.fail("name is required")
	}

	if config.Width < engine.MinBoardSize || config.Width > engine.MaxBoardSize {
		result.fail("width must be between %d and %d, got %d", engine.MinBoardSize, engine.MaxBoardSize, config.Width)
	}
	if config.Height < engine.MinBoardSize || config.Height > engine.MaxBoardSize {
		result.fail("height must be between %d and %d, got %d", engine.MinBoardSize, engine.MaxBoardSize, config.Height)
	}

	if config.TickMs < engine.MinTickMs || config.TickMs > engine.MaxTickMs {
		result.fail("tick_ms must be between %d and %d, got %d", engine.MinTickMs, engine.MaxTickMs, config.TickMs)
	}

	// Cell checks only make sense once the board itself is sane
	if result.Valid {
		if !engine.InBounds(config.Start, config.Width, config.Height) {
			result.fail("start %s is outside the %dx%d board", config.Start, config.Width, config.Height)
		}
		if !engine.InBounds(config.Food, config.Width, config.Height) {
			result.fail("food %s is outside the %dx%d board", config.Food, config.Width, config.Height)
		}
		if config.Start == config.Food {
			result.fail("start and food share cell %s", config.Start)
		}
	}

	// Belt and braces: whatever passes here must also load in the engine
	if result.Valid {
		if err := engine.ValidateBoardConfig(&config); err != nil {
			result.fail("%v", err)
		}
	}

	if result.Valid {
		result.Messages = append(result.Messages,
			fmt.Sprintf("✓ Name: %s", config.Name),
			fmt.Sprintf("✓ Board: %dx%d (%d cells)", config.Width, config.Height, config.Capacity()),
			fmt.Sprintf("✓ Tick: %s", config.TickPeriod()),
			fmt.Sprintf("✓ Start: %s", config.Start),
			fmt.Sprintf("✓ Food: %s (%d moves from start)", config.Food, engine.ManhattanDistance(config.Start, config.Food)),
		)
	}

	return result
}

// Dir validates every *.json file in dir, in lexical order.
func Dir(dir string) ([]Result, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("error finding config files: %w", err)
	}

	results := make([]Result, 0, len(files))
	for _, file := range files {
		results = append(results, File(file))
	}
	return results, nil
}

// Report prints a concise report for results and returns true when every
// file is valid.
func Report(w io.Writer, results []Result) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Messages {
				fmt.Fprintln(w, "  "+info)
			}
		} else {
			fmt.Fprintln(w, "❌ INVALID")
			allValid = false
			for _, msg := range result.Messages {
				if !strings.HasPrefix(msg, "✓") {
					fmt.Fprintln(w, "  ❌ "+msg)
				}
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	switch {
	case len(results) == 0:
		fmt.Fprintln(w, "⚠️  No configuration files found")
	case allValid:
		fmt.Fprintln(w, "✅ All configurations are valid!")
	default:
		fmt.Fprintln(w, "❌ Some configurations have errors")
	}
	return allValid
}
