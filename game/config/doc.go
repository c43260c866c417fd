// Package config provides board configuration management for the snake game.
//
// The config package handles:
//   - Loading board configurations from JSON files
//   - Configuration validation
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Board configurations are stored as JSON files in the configs directory:
//
//	{
//	  "name": "classic",
//	  "description": "Classic 17x15 board",
//	  "width": 17,
//	  "height": 15,
//	  "tick_ms": 200,
//	  "start": {"x": 3, "y": 7},
//	  "food": {"x": 13, "y": 7}
//	}
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	board, err := manager.LoadConfig("classic")
//	defaultBoard := manager.GetDefault()
//	boards, err := manager.ListConfigs()
//
// When the directory holds no usable configuration the manager falls back to
// engine.DefaultBoardConfig.
package config
