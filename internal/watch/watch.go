// Package watch re-resolves a swinstall_stack whenever the file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/conn-castle/swinst/internal/manifest"
	"github.com/conn-castle/swinst/internal/messages"
)

var newWatcherFunc = fsnotify.NewWatcher

// Update is one observed resolution. Exactly one of Entry or Err is meaningful.
type Update struct {
	Entry manifest.StackEntry
	Err   error
}

// key identifies an outcome so repeated identical outcomes are not reported twice.
func (u Update) key() string {
	if u.Err != nil {
		return "err:" + manifest.KindOf(u.Err).String() + ":" + u.Err.Error()
	}
	return fmt.Sprintf("ok:%d:%s", u.Entry.Sequence, u.Entry.Path)
}

// Watch reports the current resolution of stackPath, then one Update each time
// it changes, until ctx is done. The parent directory is watched so atomic
// replace-by-rename writes are seen.
func Watch(ctx context.Context, q manifest.Query, stackPath string, logger *slog.Logger, handle func(Update)) error {
	if handle == nil {
		return errors.New(messages.WatchNilCallback)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	abs, err := filepath.Abs(stackPath)
	if err != nil {
		return err
	}
	w, err := newWatcherFunc()
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Close()
	}()
	dir := filepath.Dir(abs)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf(messages.WatchAddFailedFmt, dir, err)
	}
	logger.Debug(messages.WatchStarted, "manifest", abs, "dir", dir)

	last := ""
	emit := func() {
		var u Update
		u.Entry, u.Err = q.Current(abs)
		k := u.key()
		if k == last {
			logger.Debug(messages.WatchNoChangeReason, "manifest", abs)
			return
		}
		last = k
		handle(u)
	}
	emit()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			logger.Debug("manifest event", "op", ev.Op.String(), "manifest", abs)
			emit()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		}
	}
}
