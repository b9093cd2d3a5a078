// ============================================================================
// lox - scripting language toolchain
// ============================================================================
//
// Package:     watch
// Description: Re-runs a callback when a single file is written or
//              recreated, debounced so editor save bursts trigger one run
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	loxerror "github.com/msto63/lox/foundation/core/error"
	loxlog "github.com/msto63/lox/foundation/core/log"
)

// DefaultDebounce is used when Options.Debounce is not positive
const DefaultDebounce = 200 * time.Millisecond

// Options configures File
type Options struct {
	Debounce time.Duration
	Logger   *loxlog.Logger

	// Ready, when set, is closed once the watcher is registered
	Ready chan<- struct{}
}

// File calls onChange after every write or create of path, at most once
// per debounce window. It watches the parent directory so editors that
// replace the file on save are followed. File blocks until ctx is done.
func File(ctx context.Context, path string, opts Options, onChange func()) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = loxlog.GetDefault()
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return loxerror.Wrap(err, "resolve path").
			WithCode(loxerror.CodeIO).
			WithOperation("watch.file").
			WithDetail("path", path)
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(target)); err == nil {
		target = filepath.Join(dir, filepath.Base(target))
	}
	logger := opts.Logger.WithFields(loxlog.Fields{"component": "watch", "path": target})

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return loxerror.Wrap(err, "create watcher").
			WithCode(loxerror.CodeIO).
			WithOperation("watch.file")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return loxerror.Wrap(err, "watch directory").
			WithCode(loxerror.CodeIO).
			WithOperation("watch.file").
			WithDetail("dir", filepath.Dir(target))
	}
	logger.Debug("watching", loxlog.Fields{"debounce_ms": opts.Debounce.Milliseconds()})
	if opts.Ready != nil {
		close(opts.Ready)
	}

	// nil until an event arms it
	var fire <-chan time.Time
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("stopping watcher")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Trace("file event", loxlog.Fields{"op": event.Op.String()})

			if timer == nil {
				timer = time.NewTimer(opts.Debounce)
			} else {
				timer.Reset(opts.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.WarnWithErr("watcher error", err)
		}
	}
}
