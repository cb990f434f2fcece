package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/mergechat/internal/app"
	"github.com/atomicstack/mergechat/internal/config"
	"github.com/atomicstack/mergechat/internal/logging"
	"github.com/atomicstack/mergechat/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stderr))
}

// run starts the session and returns the exit status: 0 once the last window
// is gone, 1 when the program fails, 2 for bad configuration or no terminal.
func run(args, environ []string, stderr io.Writer) int {
	cfg, err := config.LoadArgs(args, environ)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 2
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	tty := probeTerminal(standardDescriptors())
	events.App.Start(startupTracePayload(cfg, tty))
	if tty.Source == "" {
		fmt.Fprintln(stderr, "Error: mergechat needs a terminal on stdin, stdout or stderr")
		return 2
	}

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// startupTracePayload records what the session starts with: arguments,
// resolved flags, open options per window purpose and the terminal.
func startupTracePayload(cfg config.Config, tty terminal) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	presets := cfg.App.Presets
	payload := map[string]interface{}{
		"argv":  cfg.Args,
		"flags": flags,
		"windows": map[string]interface{}{
			"initial":  presets.Initial.Payload(),
			"main":     presets.Main.Payload(),
			"settings": presets.Settings.Payload(),
			"limit":    cfg.App.MaxWindows,
			"interval": cfg.App.OpenInterval.String(),
		},
		"presetFields": len(cfg.App.Fields),
		"tty":          tty,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type descriptor struct {
	name string
	fd   int
}

func standardDescriptors() []descriptor {
	return []descriptor{
		{"stdin", int(os.Stdin.Fd())},
		{"stdout", int(os.Stdout.Fd())},
		{"stderr", int(os.Stderr.Fd())},
	}
}

// terminal is the first standard descriptor that reported a size, plus what
// each probe saw.
type terminal struct {
	Source string            `json:"source,omitempty"`
	Width  int               `json:"width,omitempty"`
	Height int               `json:"height,omitempty"`
	Probes map[string]string `json:"probes"`
}

func probeTerminal(fds []descriptor) terminal {
	tty := terminal{Probes: make(map[string]string, len(fds))}
	for _, d := range fds {
		if d.fd < 0 || !term.IsTerminal(d.fd) {
			tty.Probes[d.name] = "not a terminal"
			continue
		}
		width, height, err := term.GetSize(d.fd)
		if err != nil {
			tty.Probes[d.name] = err.Error()
			continue
		}
		tty.Probes[d.name] = fmt.Sprintf("%dx%d", width, height)
		if tty.Source == "" {
			tty.Source, tty.Width, tty.Height = d.name, width, height
		}
	}
	return tty
}
