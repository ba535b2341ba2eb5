package app

import (
	"fmt"
	"runtime/debug"

	"github.com/dshills/glance/internal/config/watcher"
	"github.com/dshills/glance/internal/input"
	"github.com/dshills/glance/internal/renderer/backend"
)

// loop runs render/poll/react cycles. It returns ErrQuit when the user
// quits and the failing error when a cycle cannot complete.
func (app *Application) loop() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
		}
	}()

	log := app.logger.WithComponent("session")

	for {
		size, sizeErr := app.backend.TerminalSize()
		if sizeErr != nil {
			return fmt.Errorf("query terminal size: %w", sizeErr)
		}

		if drawErr := app.draw(size); drawErr != nil {
			return drawErr
		}

		ev := app.keymap.Decode(app.backend.PollEvent())
		log.Debug("event %s", ev.Kind)

		if app.handle(ev, size) {
			return ErrQuit
		}
	}
}

// draw scrolls the cursor into view and paints one frame.
func (app *Application) draw(size backend.Size) error {
	timer := StartTimer()

	app.cur.Scroll(size)
	frame, err := app.renderer.Render(app.doc, app.cur, size)
	if err != nil {
		return err
	}
	app.painter.Paint(app.backend, frame)

	app.metrics.RecordFrame(timer.Elapsed())
	return nil
}

// handle dispatches one decoded event and reports whether to quit.
func (app *Application) handle(ev input.Event, size backend.Size) bool {
	switch ev.Kind {
	case input.Resize:
		app.metrics.RecordResize()
		app.backend.Sync()
	case input.Reload:
		app.reload()
	case input.Quit:
	default:
		app.metrics.RecordEvent()
	}
	return app.cur.React(ev, size, app.doc)
}

// reload re-reads the configuration. A failed reload keeps the current
// settings.
func (app *Application) reload() {
	log := app.logger.WithComponent("config")

	cfg, err := app.loadConfig()
	if err != nil {
		log.Warn("%v", NewComponentError("config", "reload", err))
		return
	}
	app.applyConfig(cfg)
	app.metrics.RecordReload()
	log.Info("configuration reloaded from %s", cfg.Path)
}

// startWatcher posts a Reload event whenever the config file changes.
func (app *Application) startWatcher() {
	if app.cfg == nil || app.cfg.Path == "" {
		return
	}
	log := app.logger.WithComponent("watcher")

	w, err := watcher.New(app.cfg.Path, watcher.WithErrorHandler(func(err error) {
		log.Warn("%v", err)
	}))
	if err != nil {
		log.Warn("%v", NewComponentError("watcher", "watch "+app.cfg.Path, err))
		return
	}
	w.OnChange(func(e watcher.Event) {
		log.Debug("%s %s", e.Op, e.Path)
		app.post(input.NewEvent(input.Reload))
	})
	w.Start()
	app.watcher = w
}

func (app *Application) stopWatcher() {
	if app.watcher != nil {
		_ = app.watcher.Close()
		app.watcher = nil
	}
}

