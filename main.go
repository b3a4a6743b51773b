// Command x11tap runs the proxy and the interactive terminal dashboard in
// one process: the foreground counterpart to x11tapd's headless daemon.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/x11tap/x11tap/broker"
	"github.com/x11tap/x11tap/proxy/x11"
	"github.com/x11tap/x11tap/settings"
	"github.com/x11tap/x11tap/tui"
	"github.com/x11tap/x11tap/x11proto"
)

var version = "dev"

func main() {
	cfg, err := settings.Parse("x11tap", os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg settings.Settings) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := broker.New(256)

	opts := &x11proto.RenderOptions{
		Verbose:        cfg.Verbose,
		Multiline:      cfg.Multiline,
		DenyExtensions: cfg.DenyExtensions,
	}
	p := x11.New(cfg.Net, cfg.Listen, cfg.Upstream, opts)

	go func() {
		for rec := range p.Records() {
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
				Line:      rec.String(),
			})
		}
	}()

	go func() {
		if err := p.ListenAndServe(ctx); err != nil {
			log.Printf("proxy: %v", err)
		}
	}()

	program := tea.NewProgram(tui.New(b, cfg.ExportDir), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
