package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/filterwatch/filterwatch/internal/adapter/eapi"
	"github.com/filterwatch/filterwatch/internal/adapter/httpsrv"
	"github.com/filterwatch/filterwatch/internal/adapter/ping"
	"github.com/filterwatch/filterwatch/internal/adapter/prometheus"
	"github.com/filterwatch/filterwatch/internal/adapter/worker"
	"github.com/filterwatch/filterwatch/internal/common/logging"
	"github.com/filterwatch/filterwatch/internal/liveness"
	"github.com/filterwatch/filterwatch/internal/reconcile"
	"github.com/filterwatch/filterwatch/internal/usecase"
)

type Probe struct {
	Interval      time.Duration `name:"interval" env:"PROBE_INTERVAL" default:"1s" help:"Interval between probes (e.g. 1s, 500ms)."`
	Timeout       time.Duration `name:"timeout" env:"PROBE_TIMEOUT" default:"1s" help:"Maximum duration to wait for a probe response."`
	TTL           int           `name:"ttl" env:"PROBE_TTL" default:"1" help:"IP TTL of outgoing probes. The default of 1 restricts monitoring to directly-connected hosts."`
	Source        string        `name:"source" env:"PROBE_SOURCE" help:"Source IPv4 address for outgoing probes."`
	DownThreshold int           `name:"down-threshold" env:"PROBE_DOWN_THRESHOLD" default:"3" help:"Consecutive failed probes before the host is considered down."`
	UpThreshold   int           `name:"up-threshold" env:"PROBE_UP_THRESHOLD" default:"1" help:"Consecutive successful probes before a down host is considered up again."`
}

type Filter struct {
	Name  string `name:"name" env:"FILTER_NAME" default:"SCRIPTED_ROUTE_FILTER" help:"Name of the prefix-list holding withdrawn networks."`
	Width int    `name:"width" env:"FILTER_WIDTH" default:"31" help:"Prefix length of the network derived from the host address."`
}

type Device struct {
	Socket   string `name:"socket" env:"DEVICE_SOCKET" default:"/var/run/command-api.sock" help:"Path of the EOS command-api unix socket."`
	Endpoint string `name:"endpoint" env:"DEVICE_ENDPOINT" help:"eAPI HTTP(S) endpoint; overrides the unix socket when set. The path defaults to /command-api."`
}

type Metrics struct {
	Addr string `name:"addr" env:"METRICS_ADDR" default:"0.0.0.0:8080" help:"HTTP address to bind the metrics/status server."`
	Path string `name:"path" env:"METRICS_PATH" default:"/metrics" help:"Path to serve Prometheus metrics."`
}

type Serve struct {
	Host        string  `arg:"" name:"host" help:"IPv4 address of the host to monitor."`
	Probe       Probe   `embed:"" prefix:"probe."`
	Filter      Filter  `embed:"" prefix:"filter."`
	Device      Device  `embed:"" prefix:"device."`
	Metrics     Metrics `embed:"" prefix:"metrics."`
	LogLevel    string  `name:"log.level" env:"LOG_LEVEL" default:"error" help:"Log level (debug, info, warn, error)."`
	Verbose     bool    `name:"verbose" short:"v" help:"Log routine probe cycles (info level)."`
	VeryVerbose bool    `name:"very-verbose" short:"V" help:"Log every probe and device call (debug level)."`
}

func serve(cli *CLI) error {
	ctx := context.Background()
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s := &cli.Serve

	logLevel, err := logging.Level(s.LogLevel, s.Verbose, s.VeryVerbose)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	logger := logging.New(os.Stdout, logLevel)

	addr, err := netip.ParseAddr(s.Host)
	if err != nil {
		return fmt.Errorf("invalid host address %q: %w", s.Host, err)
	}

	target, err := liveness.NewTarget(addr, s.Filter.Width)
	if err != nil {
		return err
	}

	pingClient, err := ping.New(logger, s.Probe.Source, s.Probe.TTL)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open probe socket", logging.Error(err))
		return err
	}

	defer func() {
		logger.InfoContext(ctx, "Closing probe socket")
		_ = pingClient.Close()
	}()

	eapiClient, err := eapi.New(logger, s.Device.Socket, s.Device.Endpoint)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create device client", logging.Error(err))
		return err
	}

	exporter, err := prometheus.NewExporter()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create prometheus exporter", logging.Error(err))
		return err
	}

	uc := usecase.NewCheckHostUseCase(
		logger,
		ping.NewProbe(pingClient),
		reconcile.New(logger, eapi.NewBackend(logger, eapiClient), s.Filter.Name),
		prometheus.NewStatePublisher(logger, exporter),
		target,
		usecase.Config{
			Timeout:       s.Probe.Timeout,
			DownThreshold: s.Probe.DownThreshold,
			UpThreshold:   s.Probe.UpThreshold,
		},
	)

	srv := httpsrv.NewServer(s.Metrics.Addr, httpsrv.ServerOptions{
		MetricsHandler: exporter.Handler().ServeHTTP,
		MetricsPath:    s.Metrics.Path,
		Status: func() httpsrv.Status {
			status := uc.Status()

			return httpsrv.Status{
				Target:              target.Addr.String(),
				Network:             target.Network.String(),
				Up:                  status.Up,
				ConsecutiveFailures: status.ConsecutiveFailures,
				FilterSynced:        status.FilterSynced,
				ProbeDurationMillis: float64(status.ProbeDuration) / float64(time.Millisecond),
			}
		},
	})

	wrk := worker.NewWorker(logger, s.Probe.Interval, uc)

	logger.InfoContext(ctx, "Starting monitor",
		slog.String("target", target.Addr.String()),
		slog.String("network", target.Network.String()),
		slog.String("filter", s.Filter.Name),
		slog.Duration("interval", s.Probe.Interval))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(ctx, "Start HTTP server", slog.String("address", srv.ListenAddr()))
		return srv.Start()
	})

	g.Go(func() error {
		logger.InfoContext(ctx, "Start worker")
		return wrk.Start()
	})

	g.Go(func() error {
		<-gctx.Done()

		logger.InfoContext(ctx, "Stopping...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if serr := wrk.Shutdown(shutdownCtx); serr != nil {
			logger.ErrorContext(ctx, "Failed to stop worker", logging.Error(serr))
		}

		if serr := srv.Shutdown(shutdownCtx); serr != nil {
			logger.ErrorContext(ctx, "Failed to stop HTTP server", logging.Error(serr))
		}

		logger.InfoContext(ctx, "Stopped")

		return gctx.Err()
	})

	return g.Wait()
}

func (c *CLI) Validate() error {
	var errs []error

	s := &c.Serve
	p := &s.Probe

	if !isIP4Host(s.Host) {
		errs = append(errs, fmt.Errorf("<host>: must be an IPv4 address"))
	}

	if p.Interval <= 0 {
		errs = append(errs, fmt.Errorf("--probe.interval: must be greater than zero"))
	}

	if p.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("--probe.timeout: must be greater than zero"))
	}

	if p.Interval < p.Timeout {
		errs = append(errs, fmt.Errorf("--probe.interval: must not be smaller than --probe.timeout"))
	}

	if p.TTL < 1 || p.TTL > 255 {
		errs = append(errs, fmt.Errorf("--probe.ttl: must be within 1..255"))
	}

	if p.Source != "" && !isIP4Host(p.Source) {
		errs = append(errs, fmt.Errorf("--probe.source: must be an IPv4 address"))
	}

	if p.DownThreshold < 1 {
		errs = append(errs, fmt.Errorf("--probe.down-threshold: must be at least 1"))
	}

	if p.UpThreshold < 1 {
		errs = append(errs, fmt.Errorf("--probe.up-threshold: must be at least 1"))
	}

	if s.Filter.Name == "" {
		errs = append(errs, fmt.Errorf("--filter.name: must not be empty"))
	}

	if s.Filter.Width < 1 || s.Filter.Width > 32 {
		errs = append(errs, fmt.Errorf("--filter.width: must be within 1..32"))
	}

	if s.Device.Endpoint == "" && s.Device.Socket == "" {
		errs = append(errs, errors.New("one of --device.socket or --device.endpoint must be set"))
	}

	if s.Device.Endpoint != "" && !isHTTPURL(s.Device.Endpoint) {
		errs = append(errs, fmt.Errorf("--device.endpoint: must be an http(s) URL"))
	}

	if !isTCPAddr(s.Metrics.Addr) {
		errs = append(errs, fmt.Errorf("--metrics.addr: must be a valid tcp listening address (e.g. 0.0.0.0:8080)"))
	}

	if !isLogLevel(s.LogLevel) {
		errs = append(errs, fmt.Errorf("--log.level: must be one of debug, info, warn, error"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
