// Package settings holds the read-only configuration record x11tap is
// run with, populated from CLI flags.
package settings

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// stringList collects a repeatable -deny-extension flag into a slice.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Settings is the immutable configuration record read by the proxy,
// x11proto's RenderOptions, and the ambient services (metrics, web, tui).
type Settings struct {
	Listen             string
	Upstream           string
	Net                string // "tcp" or "unix"
	Verbose            bool
	Multiline          bool
	DenyExtensions     map[string]bool
	RelativeTimestamps bool
	Out                string // "-" for stdout, else a file path
	Watch              string // broker-fed live-record listen address, empty disables
	Metrics            string // prometheus listen address, empty disables
	PrefetchAtoms      bool
	ExportDir          string // directory the TUI's export keys write to, empty disables

	BurstThreshold int
	BurstWindow    time.Duration
	BurstCooldown  time.Duration
}

// DetectThreshold reports the burst-detector's occurrence threshold; 0
// disables detection.
func (s Settings) DetectThreshold() int { return s.BurstThreshold }

// DetectWindow reports the burst-detector's sliding window.
func (s Settings) DetectWindow() time.Duration { return s.BurstWindow }

// DetectCooldown reports the burst-detector's per-key alert cooldown.
func (s Settings) DetectCooldown() time.Duration { return s.BurstCooldown }

// Parse builds a Settings from args (normally os.Args[1:]).
func Parse(progName string, args []string) (Settings, error) {
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "%s — X11 wire-protocol tap\n\nUsage:\n  %s [flags]\n\nFlags:\n", progName, progName)
		fs.PrintDefaults()
	}

	listen := fs.String("listen", "", "client listen address (required)")
	upstream := fs.String("upstream", "", "upstream X server address (required)")
	network := fs.String("net", "unix", "transport: tcp or unix")
	verbose := fs.Bool("verbose", false, "include redundant/reserved wire fields in the trace")
	multiline := fs.Bool("multiline", false, "render message bodies across multiple indented lines")
	var deny stringList
	fs.Var(&deny, "deny-extension", "extension name to report absent in QueryExtension replies (repeatable)")
	relTimestamps := fs.Bool("relative-timestamps", false, "parsed into Settings.RelativeTimestamps but not passed to the renderer; TIMESTAMP fields always render as hex")
	out := fs.String("out", "-", "trace output: \"-\" for stdout, or a file path")
	watch := fs.String("watch", "", "address to serve the live in-process broker feed on (empty disables)")
	metricsAddr := fs.String("metrics", "", "prometheus metrics listen address (empty disables)")
	prefetch := fs.Bool("prefetch-atoms", false, "pre-fetch well-known atom names from upstream at startup")
	exportDir := fs.String("export-dir", "", "directory the TUI's export keys (w/W) write to (empty disables)")
	burstThreshold := fs.Int("burst-threshold", 50, "request-opcode burst detection threshold (0 to disable)")
	burstWindow := fs.Duration("burst-window", time.Second, "burst detection time window")
	burstCooldown := fs.Duration("burst-cooldown", 10*time.Second, "burst alert cooldown per request opcode")

	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}

	if *listen == "" || *upstream == "" {
		fs.Usage()
		return Settings{}, fmt.Errorf("settings: -listen and -upstream are required")
	}
	if *network != "tcp" && *network != "unix" {
		return Settings{}, fmt.Errorf("settings: -net must be tcp or unix, got %q", *network)
	}

	denySet := make(map[string]bool, len(deny))
	for _, name := range deny {
		denySet[name] = true
	}

	return Settings{
		Listen:             *listen,
		Upstream:           *upstream,
		Net:                *network,
		Verbose:            *verbose,
		Multiline:          *multiline,
		DenyExtensions:     denySet,
		RelativeTimestamps: *relTimestamps,
		Out:                *out,
		Watch:              *watch,
		Metrics:            *metricsAddr,
		PrefetchAtoms:      *prefetch,
		ExportDir:          *exportDir,
		BurstThreshold:     *burstThreshold,
		BurstWindow:        *burstWindow,
		BurstCooldown:      *burstCooldown,
	}, nil
}
