// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/incjc/internal/adapters/config"
	_ "go.trai.ch/incjc/internal/adapters/fs"
	_ "go.trai.ch/incjc/internal/adapters/jdk"
	_ "go.trai.ch/incjc/internal/adapters/logger"
	_ "go.trai.ch/incjc/internal/adapters/metastore"
	_ "go.trai.ch/incjc/internal/adapters/telemetry"
	_ "go.trai.ch/incjc/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/incjc/internal/app"
	_ "go.trai.ch/incjc/internal/engine/incremental"
)
