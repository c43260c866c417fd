package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Board defaults taken from the classic layout
const (
	DefaultWidth  = 17
	DefaultHeight = 15
	DefaultTickMs = 200
)

// DefaultBoardConfig returns the classic 17x15 board: the snake starts in the
// left quarter and the food in the right quarter, both on the middle row
func DefaultBoardConfig() *BoardConfig {
	return &BoardConfig{
		Name:        "classic",
		Description: "Classic 17x15 board",
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		TickMs:      DefaultTickMs,
		Start:       Position{X: DefaultWidth/4 - 1, Y: DefaultHeight / 2},
		Food:        Position{X: DefaultWidth - DefaultWidth/4, Y: DefaultHeight / 2},
	}
}

// TickPeriod returns the auto-advance period
func (c *BoardConfig) TickPeriod() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// ValidateBoardConfig validates a board configuration for correctness and playability
func ValidateBoardConfig(config *BoardConfig) error {
	if config.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidBoard)
	}

	if config.Width < MinBoardSize || config.Width > MaxBoardSize {
		return fmt.Errorf("%w: width must be between %d and %d, got %d", ErrInvalidBoard, MinBoardSize, MaxBoardSize, config.Width)
	}
	if config.Height < MinBoardSize || config.Height > MaxBoardSize {
		return fmt.Errorf("%w: height must be between %d and %d, got %d", ErrInvalidBoard, MinBoardSize, MaxBoardSize, config.Height)
	}

	if config.TickMs < MinTickMs || config.TickMs > MaxTickMs {
		return fmt.Errorf("%w: tick_ms must be between %d and %d, got %d", ErrInvalidBoard, MinTickMs, MaxTickMs, config.TickMs)
	}

	if !InBounds(config.Start, config.Width, config.Height) {
		return fmt.Errorf("%w: start %s is outside the %dx%d board", ErrInvalidBoard, config.Start, config.Width, config.Height)
	}
	if !InBounds(config.Food, config.Width, config.Height) {
		return fmt.Errorf("%w: food %s is outside the %dx%d board", ErrInvalidBoard, config.Food, config.Width, config.Height)
	}
	if config.Start == config.Food {
		return fmt.Errorf("%w: start and food share cell %s", ErrInvalidBoard, config.Start)
	}

	return nil
}

// LoadBoardConfig loads a board configuration from a JSON file
func LoadBoardConfig(filename string) (*BoardConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseBoardConfig(data)
}

// ParseBoardConfig decodes and validates a JSON board configuration
func ParseBoardConfig(data []byte) (*BoardConfig, error) {
	var config BoardConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse board config: %w", err)
	}

	if err := ValidateBoardConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
