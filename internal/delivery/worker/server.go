// Package worker runs the dashboard agent's background work: the startup
// session check, the alert forwarder and the reconnect watchdog.
package worker

import (
	"context"
	"log/slog"
	"sync"

	"dashboard/config"
	"dashboard/internal/delivery"
	"dashboard/internal/delivery/worker/handler"
	"dashboard/internal/domain/lifecycle"
	"dashboard/internal/errors"
	"dashboard/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the agent worker.
type ServerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Sessions  usecase.SessionUsecase
	Channel   usecase.NotificationUsecase
	Watchdog  *handler.Watchdog
	Forwarder *handler.AlertForwarder
}

type agentWorker struct {
	cfg       *config.Config
	logger    *slog.Logger
	sessions  usecase.SessionUsecase
	channel   usecase.NotificationUsecase
	watchdog  *handler.Watchdog
	forwarder *handler.AlertForwarder
	cron      *cron.Cron

	runCtx   context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// NewServer creates the agent worker. The watchdog schedule is validated here so
// a bad cron spec fails startup instead of silently disabling reconnects.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	runCtx, cancel := context.WithCancel(context.Background())
	w := &agentWorker{
		cfg:       params.Cfg,
		logger:    params.Logger,
		sessions:  params.Sessions,
		channel:   params.Channel,
		watchdog:  params.Watchdog,
		forwarder: params.Forwarder,
		cron:      cron.New(),
		runCtx:    runCtx,
		cancel:    cancel,
	}

	schedule := params.Cfg.Realtime.WatchdogSchedule
	if _, err := w.cron.AddFunc(schedule, w.runWatchdog); err != nil {
		cancel()

		return nil, errors.Wrapf(err, "invalid watchdog schedule %q", schedule)
	}

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w, nil
}

// Serve resolves the persisted session, starts the background jobs and blocks
// until the worker is stopped or ctx ends.
func (w *agentWorker) Serve(ctx context.Context) error {
	stopAfter := context.AfterFunc(ctx, w.cancel)
	defer stopAfter()

	go w.forwarder.Run(w.runCtx)

	state := w.sessions.Initialize(w.runCtx)
	w.logger.Info("Dashboard agent started",
		slog.Bool("signed_in", state.SignedIn()),
		slog.String("watchdog_schedule", w.cfg.Realtime.WatchdogSchedule),
	)

	if w.runCtx.Err() != nil {
		return nil
	}
	w.cron.Start()

	<-w.runCtx.Done()

	return nil
}

func (w *agentWorker) runWatchdog() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := w.watchdog.Check(ctx); err != nil {
		w.logger.Warn("watchdog reconnect failed", slog.Any("error", err))
	}
}

// stop halts the cron jobs, ends auth watching and tears the channel down.
func (w *agentWorker) stop(ctx context.Context) error {
	w.stopOnce.Do(func() {
		w.logger.Info("Shutting down dashboard agent")

		stopped := w.cron.Stop()
		select {
		case <-stopped.Done():
		case <-ctx.Done():
		}

		w.cancel()
		w.sessions.Close()
		w.channel.Cleanup()
	})

	return nil
}
