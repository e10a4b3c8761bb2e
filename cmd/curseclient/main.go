package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/unkn0wn-root/curseclient/internal/bindings"
	"github.com/unkn0wn-root/curseclient/internal/config"
	"github.com/unkn0wn-root/curseclient/internal/errdef"
	"github.com/unkn0wn-root/curseclient/internal/httpclient"
	"github.com/unkn0wn-root/curseclient/internal/logging"
	"github.com/unkn0wn-root/curseclient/internal/recent"
	"github.com/unkn0wn-root/curseclient/internal/telemetry"
	"github.com/unkn0wn-root/curseclient/internal/theme"
	"github.com/unkn0wn-root/curseclient/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "Show curseclient version")
	flag.Parse()

	if showVersion {
		fmt.Printf("curseclient %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	if err := checkTerminal(); err != nil {
		fmt.Fprintln(os.Stderr, errdef.Message(err))
		os.Exit(1)
	}

	os.Exit(run())
}

func checkTerminal() error {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return errdef.Wrap(errdef.CodeConfig, err, "curseclient needs an interactive terminal")
	}
	return config.CheckGeometry(cols, rows)
}

func run() int {
	var warnings []string

	dir := config.Dir()
	settings, _, err := config.LoadSettings(dir)
	if err != nil {
		warnings = append(warnings, errdef.Message(err))
	}

	logger, closer, err := logging.New(settings.Log)
	if err != nil {
		warnings = append(warnings, err.Error())
	}
	defer closer.Close()
	logger.Info("starting", "version", version, "config_dir", dir)

	keys, src, err := bindings.Load(dir)
	if err != nil {
		warnings = append(warnings, errdef.Message(err))
	} else if src.Path != "" {
		logger.Info("bindings loaded", "path", src.Path)
	}

	th, ok := theme.Lookup(settings.Theme)
	if !ok {
		warnings = append(warnings, fmt.Sprintf("theme %q not found; using default", settings.Theme))
	}

	inst, err := telemetry.New(telemetry.FromSettings(settings.Telemetry, version))
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("telemetry disabled: %v", err))
		inst = telemetry.Noop()
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := inst.Shutdown(ctx); err != nil {
			logger.Warn("telemetry shutdown", "error", err.Error())
		}
	}()

	for _, w := range warnings {
		logger.Warn("startup", "warning", w)
	}

	exec := httpclient.New(
		httpclient.WithLogger(logger),
		httpclient.WithInstrumenter(inst),
		httpclient.WithUserAgent("curseclient/"+version),
	)

	model := ui.New(ui.Config{
		Executor:       exec,
		Theme:          &th,
		Bindings:       keys,
		Logger:         logger,
		HighlightStyle: settings.HighlightStyle,
		Recent:         recent.New(config.RecentLimit),
		InitialStatus:  strings.Join(warnings, "; "),
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("program exited", "error", err.Error())
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
