// SPDX-License-Identifier: MIT

// Command surfgeo builds a synthetic surface, constructs a geodesic engine
// over it and runs the distance queries, kernel smoothing and region growing
// described by a YAML configuration file.
//
// Usage:
//
//	surfgeo -config surfgeo.yaml
//	surfgeo -config surfgeo.yaml -write-default
//
// When metrics.listen is set, Prometheus metrics are served on /metrics
// until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/surfgeo/config"
	"github.com/katalvlaran/surfgeo/geodesic"
	"github.com/katalvlaran/surfgeo/kernel"
	"github.com/katalvlaran/surfgeo/mesh"
	"github.com/katalvlaran/surfgeo/metrics"
	"github.com/katalvlaran/surfgeo/roi"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "surfgeo:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, logOut io.Writer) error {
	fs := flag.NewFlagSet("surfgeo", flag.ContinueOnError)
	fs.SetOutput(logOut)
	configPath := fs.String("config", "surfgeo.yaml", "path to the YAML configuration")
	writeDefault := fs.Bool("write-default", false, "write the default configuration to -config and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *writeDefault {
		return config.SaveConfig(config.DefaultConfig(), *configPath)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	logger, err := cfg.Log.Logger(logOut)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	collector := metrics.New(reg)

	surf, err := cfg.Surface.Build()
	if err != nil {
		return fmt.Errorf("build surface: %w", err)
	}
	logger.Info("surface ready", "shape", cfg.Surface.Shape, "vertices", surf.Count())

	engineOpts := []geodesic.Option{
		geodesic.WithLogger(logger),
		geodesic.WithObserver(collector),
	}
	if cfg.Query.MaxMatrixBytes > 0 {
		engineOpts = append(engineOpts, geodesic.WithMaxMatrixBytes(cfg.Query.MaxMatrixBytes))
	}
	eng, err := geodesic.New(surf, surf.Topology(), engineOpts...)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	logger.Info("engine ready",
		"vertices", eng.Count(),
		"rejected_unfoldings", eng.RejectedUnfoldings(),
	)

	if err := runQueries(eng, cfg.Query, logger); err != nil {
		return err
	}
	if len(cfg.ROI.Seeds) > 0 {
		if err := runROI(eng, cfg.ROI, cfg.Query.Smooth, logger); err != nil {
			return err
		}
	}
	if cfg.Kernel.Enabled {
		if err := runKernel(ctx, surf, cfg.Kernel, engineOpts, logger); err != nil {
			return err
		}
	}

	if cfg.Metrics.Listen == "" {
		return nil
	}

	return serveMetrics(ctx, cfg.Metrics.Listen, reg, logger)
}

func runQueries(eng *geodesic.Engine, q config.QueryConfig, logger *slog.Logger) error {
	reached, err := eng.Within(q.Root, q.Radius, q.Smooth)
	if err != nil {
		return fmt.Errorf("within: %w", err)
	}
	farthest := 0.0
	if len(reached) > 0 {
		farthest = reached[len(reached)-1].Distance
	}
	logger.Info("radius query",
		"root", q.Root,
		"radius", q.Radius,
		"reached", len(reached),
		"farthest", farthest,
	)

	all, parents, err := eng.FromParents(q.Root, q.Smooth, nil, nil)
	if err != nil {
		return fmt.Errorf("from: %w", err)
	}
	finite := make([]float64, 0, len(all))
	for _, d := range all {
		if !math.IsInf(d, 1) {
			finite = append(finite, d)
		}
	}
	logger.Info("single-source query",
		"root", q.Root,
		"reachable", len(finite),
		"eccentricity", floats.Max(finite),
	)

	if len(q.Targets) > 0 {
		dist, err := eng.To(q.Root, q.Targets, q.Smooth)
		if err != nil {
			return fmt.Errorf("to: %w", err)
		}
		for i, t := range q.Targets {
			path, err := geodesic.PathTo(parents, q.Root, t)
			if err != nil {
				logger.Info("target unreachable", "vertex", t)
				continue
			}
			logger.Info("target", "vertex", t, "distance", dist[i], "hops", len(path)-1)
		}
	}

	if !q.AllPairs {
		return nil
	}
	ap, err := eng.AllPairs(q.Smooth)
	if errors.Is(err, geodesic.ErrAllocation) {
		logger.Warn("all-pairs skipped", "error", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("all pairs: %w", err)
	}
	diameter := 0.0
	for i := 0; i < ap.Count(); i++ {
		for _, d := range ap.Row(i) {
			if !math.IsInf(d, 1) && d > diameter {
				diameter = d
			}
		}
	}
	logger.Info("all-pairs query", "vertices", ap.Count(), "diameter", diameter)

	return nil
}

func runROI(eng *geodesic.Engine, rc config.ROIConfig, smooth bool, logger *slog.Logger) error {
	region, err := roi.Grow(eng, rc.Seeds, rc.Radius, smooth)
	if err != nil {
		return fmt.Errorf("roi: %w", err)
	}
	grown, err := roi.Dilate(eng, region, rc.Dilate)
	if err != nil {
		return fmt.Errorf("roi: %w", err)
	}
	logger.Info("region of interest",
		"seeds", len(rc.Seeds),
		"radius", rc.Radius,
		"vertices", region.GetCardinality(),
		"dilated", grown.GetCardinality(),
		"boundary", roi.Boundary(eng, grown).GetCardinality(),
	)

	return nil
}

func runKernel(ctx context.Context, surf *mesh.Surface, kc config.KernelConfig, engineOpts []geodesic.Option, logger *slog.Logger) error {
	k, err := kernel.Build(ctx, surf, surf.Topology(), kc.Sigma,
		kernel.WithWorkers(kc.Workers),
		kernel.WithLogger(logger),
		kernel.WithEngineOptions(engineOpts...),
	)
	if err != nil {
		return fmt.Errorf("kernel: %w", err)
	}

	// Smooth the distance of every vertex from the centroid; on a jittered
	// sphere this shrinks the radial noise.
	var centroid r3.Vec
	for _, p := range surf.Coords {
		centroid = r3.Add(centroid, p)
	}
	centroid = r3.Scale(1/float64(surf.Count()), centroid)
	radial := make([]float64, surf.Count())
	for i, p := range surf.Coords {
		radial[i] = r3.Norm(r3.Sub(p, centroid))
	}
	smoothed, err := k.Smooth(radial, kc.Iterations)
	if err != nil {
		return fmt.Errorf("kernel: %w", err)
	}
	logger.Info("kernel smoothing",
		"sigma", kc.Sigma,
		"iterations", kc.Iterations,
		"fallbacks", k.Fallbacks(),
		"stddev_before", stat.StdDev(radial, nil),
		"stddev_after", stat.StdDev(smoothed, nil),
	)

	return nil
}

func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() {
		logger.Info("serving metrics", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("shutting down metrics server")

	return srv.Shutdown(shutdownCtx)
}
