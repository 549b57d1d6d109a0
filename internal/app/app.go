package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hyperion-editor/hyperion/internal/clipboard"
	"github.com/hyperion-editor/hyperion/internal/config"
	"github.com/hyperion-editor/hyperion/internal/editor"
	"github.com/hyperion-editor/hyperion/internal/logger"
	"github.com/hyperion-editor/hyperion/internal/storage"
	"github.com/hyperion-editor/hyperion/internal/terminal"
)

// App is the top-level runtime for hyperion.
type App struct {
	args []string
	open func() (*terminal.Terminal, error)
	clip editor.Clipboard
}

func New(args []string) *App {
	return &App{args: args, open: terminal.Open}
}

func (a *App) Run() error {
	// the editor runs without a log file
	_ = logger.Init(logger.DebugFromEnv())
	defer logger.Close()

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "err", cfgErr)
		cfg = config.Default()
	}

	t, err := a.open()
	if err != nil {
		logger.Error("terminal open failed", "err", err)
		return err
	}
	defer t.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic", "value", r)
			panic(r)
		}
	}()

	stop := a.watchSignals(t)
	defer stop()

	clip := a.clip
	if clip == nil {
		clip = clipboard.New()
	}
	ed := editor.New(cfg, storage.Disk{}, clip)
	if len(a.args) > 0 {
		if err := ed.OpenFile(a.args[0]); err != nil {
			ed.SetStatusMessage("Error reading " + a.args[0] + ": " + err.Error())
		}
	}
	if cfgErr != nil {
		ed.SetStatusMessage("Config error: " + cfgErr.Error())
	}
	return loop(t, ed)
}

// loop renders and feeds events to the editor until it asks to quit or the
// terminal goes away.
func loop(t *terminal.Terminal, ed *editor.Editor) error {
	s := t.Screen()
	ed.Render(s)
	for {
		ev := t.ReadEvent()
		switch ev.Kind {
		case terminal.EventKey:
			if ed.HandleKey(ev.Key) {
				logger.Info("quit")
				return nil
			}
		case terminal.EventResize:
			// redrawn below
		case terminal.EventInterrupt:
			logger.Info("interrupted", "reason", ev.Data)
			return nil
		case terminal.EventClosed:
			return nil
		}
		ed.Render(s)
	}
}

// watchSignals turns SIGTERM and SIGHUP into an interrupt event so the
// terminal is restored on the way out.
func (a *App) watchSignals(t *terminal.Terminal) func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-ch:
			_ = t.Interrupt(sig.String())
		case <-done:
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}
