package ui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/unkn0wn-root/curseclient/internal/bindings"
	"github.com/unkn0wn-root/curseclient/internal/config"
	"github.com/unkn0wn-root/curseclient/internal/dispatch"
	"github.com/unkn0wn-root/curseclient/internal/focus"
	"github.com/unkn0wn-root/curseclient/internal/httpclient"
	"github.com/unkn0wn-root/curseclient/internal/logging"
	"github.com/unkn0wn-root/curseclient/internal/recent"
	"github.com/unkn0wn-root/curseclient/internal/request"
	"github.com/unkn0wn-root/curseclient/internal/theme"
)

// Executor runs one request to completion. It is called off the render loop.
type Executor interface {
	Execute(ctx context.Context, snap request.Snapshot) httpclient.Outcome
}

type Config struct {
	Executor       Executor
	Theme          *theme.Theme
	Bindings       *bindings.Map
	Logger         *slog.Logger
	HighlightStyle string
	Recent         *recent.List
	// InitialStatus is shown as a warning on the first frame, e.g. when a
	// settings file could not be parsed.
	InitialStatus string
}

type Model struct {
	theme          theme.Theme
	bindings       *bindings.Map
	logger         *slog.Logger
	highlightStyle string

	draft *request.Draft
	focus focus.Field

	inFlight    bool
	pendingID   string
	lastOutcome httpclient.Outcome
	results     *dispatch.Channel
	dispatcher  *dispatch.Dispatcher
	recent      *recent.List

	statusMessage statusMsg

	width  int
	height int
	ready  bool

	editing   bool
	editField focus.Field
	urlInput  textinput.Model
	jsonInput textarea.Model

	response    viewport.Model
	responseTab responseTab
	spinner     spinner.Model
	showHelp    bool

	writeClipboard func(string) error
}

func New(cfg Config) Model {
	th := theme.DefaultTheme()
	if cfg.Theme != nil {
		th = *cfg.Theme
	}
	keys := cfg.Bindings
	if keys == nil {
		keys = bindings.DefaultMap()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	exec := cfg.Executor
	if exec == nil {
		exec = httpclient.New(httpclient.WithLogger(logger))
	}
	history := cfg.Recent
	if history == nil {
		history = recent.New(config.RecentLimit)
	}
	style := strings.TrimSpace(cfg.HighlightStyle)
	if style == "" {
		style = config.DefaultHighlightStyle
	}

	results := dispatch.NewChannel(1)

	urlInput := textinput.New()
	urlInput.Prompt = ""
	urlInput.CharLimit = 0
	urlInput.Placeholder = "https://example.com/api"

	jsonInput := textarea.New()
	jsonInput.ShowLineNumbers = false
	jsonInput.Prompt = ""
	jsonInput.CharLimit = 0

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = th.Loading

	m := Model{
		theme:          th,
		bindings:       keys,
		logger:         logger,
		highlightStyle: style,
		draft:          request.NewDraft(),
		focus:          focus.Method,
		results:        results,
		dispatcher:     dispatch.New(exec, results, logger),
		recent:         history,
		urlInput:       urlInput,
		jsonInput:      jsonInput,
		response:       viewport.New(0, 0),
		spinner:        spin,
		writeClipboard: clipboard.WriteAll,
	}
	if msg := strings.TrimSpace(cfg.InitialStatus); msg != "" {
		m.setStatus(msg, statusWarn)
	}
	m.refreshResponse()
	return m
}
