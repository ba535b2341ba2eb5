// Package config provides the configuration system for glance.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← GLANCE_LOG_LEVEL, GLANCE_KEYS_WASD, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/glance/config.toml (or .yaml)
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Each layer is a nested map produced by the loader sub-package; the
// merged tree is decoded into a typed Config and validated.
//
// # Configuration Files
//
//	# ~/.config/glance/config.toml
//	[log]
//	level = "debug"
//	file = "/tmp/glance.log"
//
//	[view]
//	filler = "~"
//
//	[keys]
//	wasd = true
//	quit = ["q"]
//
// # Sub-packages
//
//   - loader: TOML, YAML and environment variable sources, DeepMerge
//   - watcher: fsnotify based change notification for live reload
package config
