// Command x11tapd runs the x11tap proxy daemon: it sits between an X11
// client and the real X server, logging every decoded wire message and
// optionally serving a live dashboard and Prometheus metrics.
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/x11tap/x11tap/broker"
	"github.com/x11tap/x11tap/detect"
	"github.com/x11tap/x11tap/metrics"
	"github.com/x11tap/x11tap/output"
	"github.com/x11tap/x11tap/probe"
	"github.com/x11tap/x11tap/proxy/x11"
	"github.com/x11tap/x11tap/settings"
	"github.com/x11tap/x11tap/web"
	"github.com/x11tap/x11tap/x11proto"
)

var version = "dev"

func main() {
	cfg, err := settings.Parse("x11tapd", os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg settings.Settings) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := broker.New(256)

	out, err := output.Open(cfg.Out)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if cfg.PrefetchAtoms {
		prefetchStartupAtoms(ctx, cfg)
	}

	if cfg.Metrics != "" {
		startMetricsServer(ctx, cfg.Metrics)
	}

	var webSrv *web.Server
	if cfg.Watch != "" {
		webSrv = startWebServer(ctx, cfg.Watch, b)
	}

	var det *detect.Detector
	if cfg.DetectThreshold() > 0 {
		det = detect.New(cfg.DetectThreshold(), cfg.DetectWindow(), cfg.DetectCooldown())
	}

	opts := &x11proto.RenderOptions{
		Verbose:        cfg.Verbose,
		Multiline:      cfg.Multiline,
		DenyExtensions: cfg.DenyExtensions,
		Timestamp:      x11proto.TimestampOptions{},
	}

	p := x11.New(cfg.Net, cfg.Listen, cfg.Upstream, opts)

	go consume(p.Records(), b, out, det)

	log.Printf("x11tapd %s: proxying %s %s -> %s", version, cfg.Net, cfg.Listen, cfg.Upstream)
	if err := p.ListenAndServe(ctx); err != nil {
		return err
	}

	if webSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = webSrv.Shutdown(shutdownCtx)
	}
	return nil
}

// consume drains decoded records off the proxy, runs burst detection,
// writes the formatted trace line, and republishes to the broker for the
// web dashboard.
func consume(records <-chan x11proto.Record, b *broker.Broker, out *output.Writer, det *detect.Detector) {
	for rec := range records {
		if det != nil && rec.Kind == "REQUEST" {
			key := requestBurstKey(rec)
			if r := det.Record(key, time.Now()); r.Alert != nil {
				metrics.BurstAlertsTotal.Inc()
				log.Printf("burst detected: %s (%d times)", r.Alert.Key, r.Alert.Count)
			}
		}

		line := rec.String()
		if err := out.WriteLine(line); err != nil {
			log.Printf("output: write: %v", err)
		}

		b.Publish(broker.Record{
			ConnID:    rec.ConnID,
			Bytes:     rec.Bytes,
			Direction: rec.Direction,
			Kind:      rec.Kind,
			Name:      rec.Name,
			Code:      rec.Code,
			Seq:       rec.Seq,
			HasSeq:    rec.HasSeq,
			Body:      rec.Body,
			Line:      line,
		})
	}
}

// requestBurstKey scopes burst detection to one connection's repeated use
// of one opcode: a client hammering InternAtom on its own connection
// shouldn't arm the same counter as an unrelated client doing the same.
func requestBurstKey(rec x11proto.Record) string {
	return fmt.Sprintf("conn %d: %s(%d)", rec.ConnID, rec.Name, rec.Code)
}

func startMetricsServer(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		log.Printf("metrics listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics: serve: %v", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}

func startWebServer(ctx context.Context, addr string, b *broker.Broker) *web.Server {
	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		log.Printf("web: listen %s: %v", addr, err)
		return nil
	}
	srv := web.New(b)
	go func() {
		log.Printf("dashboard listening on %s", addr)
		if err := srv.Serve(lis); err != nil {
			log.Printf("web: serve: %v", err)
		}
	}()
	return srv
}

func prefetchStartupAtoms(ctx context.Context, cfg settings.Settings) {
	pctx, cancel := context.WithTimeout(ctx, probe.DefaultTimeout)
	defer cancel()

	c, err := probe.NewClient(pctx, cfg.Net, cfg.Upstream)
	if err != nil {
		log.Printf("probe: %v", err)
		return
	}
	defer func() { _ = c.Close() }()

	results, err := c.Prefetch(pctx, 256)
	if err != nil {
		log.Printf("probe: prefetch: %v", err)
		return
	}
	log.Printf("probe: resolved %d atom names ahead of time", len(results))
}
