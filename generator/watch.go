package generator

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/packgen/config"
	"github.com/teranos/packgen/errors"
	"github.com/teranos/packgen/logger"
)

// Watcher regenerates whenever a pack or override unit in the source
// directory changes.
type Watcher struct {
	cfg      *config.Config
	opts     Options
	debounce time.Duration
	reconfig chan *config.Config

	// OnRun receives the outcome of every run, including failed ones
	OnRun func(*Result, error)
}

// NewWatcher creates a watcher for cfg. Call Run to start it.
func NewWatcher(cfg *config.Config, opts Options) *Watcher {
	return &Watcher{
		cfg:      cfg,
		opts:     opts,
		debounce: config.DefaultDebounce,
		reconfig: make(chan *config.Config, 1),
	}
}

// SetConfig swaps the configuration and triggers a run. Safe to call from
// other goroutines, e.g. a config.Watcher reload callback.
func (w *Watcher) SetConfig(cfg *config.Config) {
	// Only the latest pending config matters
	select {
	case <-w.reconfig:
	default:
	}
	w.reconfig <- cfg
}

// Run generates once, then again after every debounced change, until ctx is
// done. A failed run is reported through OnRun and does not stop watching.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create fsnotify watcher")
	}
	defer fsw.Close()

	if err := fsw.Add(w.cfg.SrcDir); err != nil {
		return errors.Wrapf(err, "failed to watch source directory %s", w.cfg.SrcDir)
	}
	ctx = logger.WithComponent(ctx, "watch")
	log := logger.LoggerFromContext(ctx)
	log.Infow("Watching for changes", logger.FieldSrcDir, w.cfg.SrcDir)

	w.generate(ctx)

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			log.Debugw("Source change detected", logger.FieldFile, event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warnw("Watcher error", logger.FieldError, err)

		case cfg := <-w.reconfig:
			if cfg.SrcDir != w.cfg.SrcDir {
				if err := fsw.Remove(w.cfg.SrcDir); err != nil {
					log.Debugw("Failed to unwatch old source directory", logger.FieldError, err)
				}
				if err := fsw.Add(cfg.SrcDir); err != nil {
					log.Errorw("Failed to watch new source directory", logger.FieldSrcDir, cfg.SrcDir, logger.FieldError, err)
					continue
				}
			}
			w.cfg = cfg
			timer.Reset(w.debounce)

		case <-timer.C:
			w.generate(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	return strings.HasSuffix(name, w.cfg.PackSuffix) || strings.HasSuffix(name, w.cfg.HackSuffix)
}

func (w *Watcher) generate(ctx context.Context) {
	result, err := Run(ctx, w.cfg, w.opts)
	if err != nil {
		logger.LoggerFromContext(ctx).Errorw("Generation failed", logger.FieldError, err)
	}
	if w.OnRun != nil {
		w.OnRun(result, err)
	}
}
