// Package app implements the application layer for swagscan.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/swagscan/internal/adapters/telemetry"
	"go.trai.ch/swagscan/internal/core/domain"
	"go.trai.ch/swagscan/internal/core/ports"
	"go.trai.ch/swagscan/internal/engine/scanner"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// TracerName is the instrumentation name of the scan tracer.
const TracerName = "swagscan"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	source       ports.LineSource
	newProber    ports.ProberFactory
	newSink      ports.MatchSinkFactory
	reporter     ports.Reporter
	logger       ports.Logger
	newRunID     func() string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	source ports.LineSource,
	newProber ports.ProberFactory,
	newSink ports.MatchSinkFactory,
	reporter ports.Reporter,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		source:       source,
		newProber:    newProber,
		newSink:      newSink,
		reporter:     reporter,
		logger:       log,
		newRunID:     uuid.NewString,
	}
}

// WithRunID fixes the run identifier. Used by tests.
func (a *App) WithRunID(id string) *App {
	a.newRunID = func() string { return id }
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	HostsFile  string
	RoutesFile string
	// Workers overrides the configured limit when positive.
	Workers int
}

// Run loads the configuration, opens the output file, reads both input lists
// and scans every host×path combination. Configuration, output and input
// errors are returned before any request is made. Per-task failures are
// reported, not returned.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return err
	}

	matchSink, err := a.newSink(cfg.Output)
	if err != nil {
		return err
	}

	hosts, paths, err := a.readInputs(opts)
	if err != nil {
		return err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = cfg.Workers
	}

	runID := a.newRunID()
	a.logger.Info(fmt.Sprintf("scan %s: %d host(s), %d path(s), matches go to %s",
		runID, len(hosts), len(paths), cfg.Output))

	tracer := telemetry.NewOTelTracer(TracerName)
	defer func() {
		_ = tracer.Shutdown(context.WithoutCancel(ctx))
	}()

	ctx, span := tracer.Start(ctx, "scan")
	span.SetAttribute("run.id", runID)
	span.SetAttribute("hosts", len(hosts))
	span.SetAttribute("paths", len(paths))

	sc := scanner.NewScanner(a.newProber(cfg), matchSink, a.reporter, tracer, a.logger)
	summary, err := sc.Run(ctx, hosts, paths, workers)
	if err != nil {
		span.RecordError(err)
	}
	span.End()

	if stats := tracer.Stats(); stats.Probes > 0 {
		a.logger.Info(fmt.Sprintf("slowest probe: %s (%s)", stats.Slowest, stats.Longest.Round(time.Millisecond)))
	}

	if errors.Is(err, domain.ErrScanInterrupted) {
		a.logger.Warn(fmt.Sprintf("scan interrupted: %d of %d task(s) skipped", summary.Skipped, summary.Total))
		return err
	}
	if summary.PersistFailures > 0 {
		a.logger.Warn(fmt.Sprintf("%d match(es) could not be written to %s", summary.PersistFailures, cfg.Output))
	}
	return err
}

// readInputs loads both lists concurrently. Either failure is fatal.
func (a *App) readInputs(opts RunOptions) (hosts, paths []string, err error) {
	g := new(errgroup.Group)

	g.Go(func() error {
		lines, readErr := a.source.ReadLines(opts.HostsFile)
		if readErr != nil {
			return zerr.With(zerr.Wrap(readErr, domain.ErrHostsReadFailed.Error()), "file", opts.HostsFile)
		}
		hosts = lines
		return nil
	})
	g.Go(func() error {
		lines, readErr := a.source.ReadLines(opts.RoutesFile)
		if readErr != nil {
			return zerr.With(zerr.Wrap(readErr, domain.ErrRoutesReadFailed.Error()), "file", opts.RoutesFile)
		}
		paths = lines
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return hosts, paths, nil
}
