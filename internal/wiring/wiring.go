// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/samogon/internal/adapters/archive"
	_ "go.trai.ch/samogon/internal/adapters/bottle"
	_ "go.trai.ch/samogon/internal/adapters/cas"
	_ "go.trai.ch/samogon/internal/adapters/config"
	_ "go.trai.ch/samogon/internal/adapters/formulae"
	_ "go.trai.ch/samogon/internal/adapters/fs"
	_ "go.trai.ch/samogon/internal/adapters/logger"
	_ "go.trai.ch/samogon/internal/adapters/progress"
	_ "go.trai.ch/samogon/internal/adapters/prompt"
	_ "go.trai.ch/samogon/internal/adapters/snapshot"
	_ "go.trai.ch/samogon/internal/adapters/telemetry"
	_ "go.trai.ch/samogon/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/samogon/internal/app"
	_ "go.trai.ch/samogon/internal/engine/scheduler"
)
