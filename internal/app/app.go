// Package app wires expeditions, the room service client, the explorer
// and its observers into runnable sessions.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/vk/roomwalk/internal/config"
	"github.com/vk/roomwalk/internal/ctxlog"
	"github.com/vk/roomwalk/internal/explorer"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW        io.Writer
	logger      *slog.Logger
	expeditions []*config.Expedition

	// active tracks the running session for the status endpoint.
	mu         sync.RWMutex
	activeName string
	active     *explorer.Explorer
}

// NewApp constructs the application: an isolated logger plus the validated
// expedition set loaded from the configured path.
func NewApp(outW io.Writer, appConfig *Config) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	expeditions, err := config.Load(ctx, appConfig.ExpeditionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Expedition configuration loaded.", "count", len(expeditions))

	return &App{
		outW:        outW,
		logger:      logger,
		expeditions: expeditions,
	}, nil
}

// Expeditions returns the loaded expedition set. This is primarily for testing.
func (a *App) Expeditions() []*config.Expedition {
	return a.expeditions
}

// setActive publishes the running session for the status endpoint.
func (a *App) setActive(name string, e *explorer.Explorer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.activeName = name
	a.active = e
}

// snapshotActive returns the current session name and progress, if any.
func (a *App) snapshotActive() (string, *explorer.Progress) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.active == nil {
		return "", nil
	}
	p := a.active.Progress()
	return a.activeName, &p
}
