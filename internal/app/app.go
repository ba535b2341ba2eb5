// Package app wires the viewer together and runs the session loop.
//
// An Application owns one Document, one Cursor and the terminal backend.
// The loop queries the terminal size, scrolls, renders, paints, then
// blocks for the next event and lets the cursor react to it. Everything
// the loop touches is confined to the goroutine that calls Run; other
// goroutines (signal forwarding, config watching) only post events into
// the backend queue.
package app

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/glance/internal/config"
	"github.com/dshills/glance/internal/config/watcher"
	"github.com/dshills/glance/internal/engine/cursor"
	"github.com/dshills/glance/internal/engine/document"
	"github.com/dshills/glance/internal/input"
	"github.com/dshills/glance/internal/renderer"
	"github.com/dshills/glance/internal/renderer/backend"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// File is the file to view. Empty shows an empty document.
	File string

	// LogFile overrides log.file from the configuration.
	LogFile string

	// LogLevel overrides log.level from the configuration.
	LogLevel string

	// Version is shown in the banner of an empty document.
	Version string

	// WatchConfig reloads the configuration when its file changes.
	WatchConfig bool
}

// Application is the central coordinator of a viewing session.
type Application struct {
	mu sync.Mutex

	opts Options
	cfg  *config.Config

	doc      *document.Document
	cur      cursor.Cursor
	keymap   *input.Keymap
	renderer *renderer.Renderer
	painter  renderer.Painter
	backend  backend.Backend

	logger    *Logger
	logCloser io.Closer
	sessionID string
	metrics   *Metrics
	watcher   *watcher.Watcher

	running atomic.Bool
}

// New creates an Application: it loads the configuration, opens the log
// file and reads the document. Nothing touches the terminal yet.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:      opts,
		sessionID: uuid.New().String(),
		metrics:   NewMetrics(),
		logger:    discardLogger(),
	}

	cfg, err := app.loadConfig()
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg

	if err := app.setupLogging(); err != nil {
		return nil, &InitError{Component: "logging", Err: err}
	}

	doc, err := openDocument(opts.File)
	if err != nil {
		app.closeLog()
		return nil, &InitError{Component: "document", Err: err}
	}
	app.doc = doc

	app.applyConfig(cfg)
	app.logger.Info("opened %q: %d lines, %d bytes", doc.Name(), doc.LineCount(), doc.Len())

	return app, nil
}

// NewWithDocument creates an Application for an already loaded document
// with the given configuration.
func NewWithDocument(doc *document.Document, cfg *config.Config, opts Options) *Application {
	app := &Application{
		opts:      opts,
		cfg:       cfg,
		doc:       doc,
		sessionID: uuid.New().String(),
		metrics:   NewMetrics(),
		logger:    discardLogger(),
	}
	app.applyConfig(cfg)
	return app
}

func openDocument(path string) (*document.Document, error) {
	if path == "" {
		return document.FromText(""), nil
	}
	return document.OpenFile(path)
}

// loadConfig reads the configuration with command line overrides applied.
func (app *Application) loadConfig() (*config.Config, error) {
	overrides := make(map[string]any)
	logOverrides := make(map[string]any)
	if app.opts.LogLevel != "" {
		logOverrides["level"] = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		logOverrides["file"] = app.opts.LogFile
	}
	if len(logOverrides) > 0 {
		overrides["log"] = logOverrides
	}

	return config.Load(config.LoadOptions{
		Path:      app.opts.ConfigPath,
		Overrides: overrides,
	})
}

func (app *Application) setupLogging() error {
	if app.cfg.Log.File == "" {
		return nil
	}

	f, err := OpenLogFile(app.cfg.Log.File)
	if err != nil {
		return err
	}
	app.logCloser = f

	base := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(app.cfg.Log.Level),
		Output: f,
		Prefix: "glance",
	})
	app.logger = base.WithField("session", app.sessionID)
	return nil
}

// discardLogger returns a disabled logger with its own sink, so level
// changes never touch NullLogger.
func discardLogger() *Logger {
	l := NewLogger(DefaultLoggerConfig())
	l.Disable()
	return l
}

func (app *Application) closeLog() {
	if app.logCloser != nil {
		_ = app.logCloser.Close()
		app.logCloser = nil
	}
}

// applyConfig derives the keymap and render options from cfg.
func (app *Application) applyConfig(cfg *config.Config) {
	app.keymap = input.NewKeymap(input.KeymapOptions{
		WASD: cfg.Keys.WASD,
		Quit: cfg.QuitRunes(),
	})

	opts := renderer.DefaultOptions(app.opts.Version)
	opts.Filler = cfg.View.Filler
	if cfg.View.Banner != "" {
		opts.Banner = cfg.View.Banner
	}
	if app.renderer == nil {
		app.renderer = renderer.New(opts)
	} else {
		app.renderer.SetOptions(opts)
	}

	app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	app.cfg = cfg
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// SetLogger replaces the session logger.
func (app *Application) SetLogger(l *Logger) {
	app.logger = l.WithField("session", app.sessionID)
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Metrics returns the session metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Cursor returns a copy of the current cursor.
func (app *Application) Cursor() cursor.Cursor {
	return app.cur
}

// Document returns the document being viewed.
func (app *Application) Document() *document.Document {
	return app.doc
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// SessionID returns the identifier attached to every log line.
func (app *Application) SessionID() string {
	return app.sessionID
}

// Run acquires the terminal and runs the session loop until the user
// quits or a terminal failure ends it. The terminal is released on every
// exit path. A user quit returns nil.
func (app *Application) Run() error {
	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return &InitError{Component: "backend", Err: ErrNoBackend}
	}

	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	if app.opts.WatchConfig {
		app.startWatcher()
		defer app.stopWatcher()
	}

	app.logger.Info("session started")
	err := app.loop()
	app.logger.Info("session ended: %s", app.metrics.Snapshot())

	if errors.Is(err, ErrQuit) {
		return nil
	}
	if err != nil {
		app.logger.Error("session failed: %v", err)
	}
	return err
}

// RequestQuit asks a running session to end. Safe to call from any
// goroutine, for example a signal handler.
func (app *Application) RequestQuit() {
	app.post(input.NewEvent(input.Quit))
}

// post queues a navigation event for the session loop.
func (app *Application) post(ev input.Event) {
	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return
	}
	b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: ev})
}

// Close releases resources held outside of Run.
func (app *Application) Close() error {
	app.stopWatcher()
	app.closeLog()
	return nil
}

func (app *Application) String() string {
	return fmt.Sprintf("Application(%s, %s)", app.doc.Name(), app.cur)
}
