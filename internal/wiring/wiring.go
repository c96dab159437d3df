// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bakehouse/internal/adapters/bake"
	_ "go.trai.ch/bakehouse/internal/adapters/cas"
	_ "go.trai.ch/bakehouse/internal/adapters/config"
	_ "go.trai.ch/bakehouse/internal/adapters/dockerfile"
	_ "go.trai.ch/bakehouse/internal/adapters/fs"
	_ "go.trai.ch/bakehouse/internal/adapters/logger"
	_ "go.trai.ch/bakehouse/internal/adapters/manifest"
	_ "go.trai.ch/bakehouse/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/bakehouse/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/bakehouse/internal/app"
	_ "go.trai.ch/bakehouse/internal/engine/planner"
	_ "go.trai.ch/bakehouse/internal/engine/resolver"
)
