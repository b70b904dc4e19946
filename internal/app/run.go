package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/roomwalk/internal/archive"
	"github.com/vk/roomwalk/internal/config"
	"github.com/vk/roomwalk/internal/ctxlog"
	"github.com/vk/roomwalk/internal/explorer"
	"github.com/vk/roomwalk/internal/render"
	"github.com/vk/roomwalk/internal/roomsvc"
	"github.com/vk/roomwalk/internal/worldmap"
)

// Run executes every loaded expedition in order. Expeditions run strictly
// sequentially: each session issues one request at a time, and sessions do
// not overlap. The first failing expedition aborts the run.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if appConfig.StatusPort > 0 {
		go a.startStatusServer(appConfig.StatusPort)
	}

	for _, exp := range a.expeditions {
		if err := a.runExpedition(ctx, exp); err != nil {
			return fmt.Errorf("expedition %q failed: %w", exp.Name, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runExpedition walks one expedition end to end and delivers the results
// to its configured sinks.
func (a *App) runExpedition(ctx context.Context, exp *config.Expedition) error {
	logger := a.logger.With("expedition", exp.Name)

	client, err := roomsvc.NewClient(exp.Server, exp.Message, exp.Timeout)
	if err != nil {
		return err
	}

	world := worldmap.New()
	walker := explorer.New(client,
		explorer.WithLogger(logger),
		explorer.WithObserver(render.NewTraceLog(logger)),
		explorer.WithObserver(world),
	)

	a.setActive(exp.Name, walker)
	defer a.setActive("", nil)

	logger.Info("🚀 Starting exploration.", "server", exp.Server, "message", exp.Message)
	report, err := walker.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("🏁 Exploration finished.",
		"rooms", report.RoomsDiscovered,
		"entries", report.Entries,
		"forward_moves", report.ForwardMoves,
		"backtrack_moves", report.BacktrackMoves,
		"requests", report.Requests)

	if asym := world.AsymmetricEdges(); len(asym) > 0 {
		logger.Warn("Remote graph has asymmetric edges; backtracking may have been cut short.",
			"count", len(asym))
	}

	return a.deliver(ctx, exp, world, logger)
}

// deliver runs the expedition's render and archive sinks over the
// discovered map.
func (a *App) deliver(ctx context.Context, exp *config.Expedition, world *worldmap.Graph, logger *slog.Logger) error {
	for _, sink := range exp.Renders {
		output, _ := sink.Option("output")
		if err := render.NewSVGMap(world, output).Write(); err != nil {
			return err
		}
		logger.Info("🗺️ Wrote map render.", "type", sink.Type, "output", output)
	}

	for _, sink := range exp.Archives {
		addr, _ := sink.Option("addr")
		store, err := archive.NewRedis(ctx, addr)
		if err != nil {
			return err
		}
		err = store.SaveMap(ctx, exp.Name, world)
		store.Close()
		if err != nil {
			return err
		}
		logger.Info("Archived map.", "type", sink.Type, "addr", addr)
	}

	return nil
}
