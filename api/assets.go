package api

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/papercomputeco/graycalc/pkg/convert"
)

//go:embed web
var embedded embed.FS

const indexTemplate = "index.html"

// pageData is what index.html is rendered with.
type pageData struct {
	Kinds   []convert.KindInfo
	Default convert.KindInfo
}

// assets holds the static files and the parsed page template. When backed by
// a directory on disk, a watcher re-parses the template as it is edited.
type assets struct {
	fsys   fs.FS
	logger *zap.Logger

	mu    sync.RWMutex
	index *template.Template

	watcher *fsnotify.Watcher
	done    chan struct{}
}

func newAssets(dir string, logger *zap.Logger) (*assets, error) {
	a := &assets{logger: logger}

	if dir == "" {
		sub, err := fs.Sub(embedded, "web")
		if err != nil {
			return nil, fmt.Errorf("open embedded assets: %w", err)
		}
		a.fsys = sub
	} else {
		a.fsys = os.DirFS(dir)
	}

	if err := a.reload(); err != nil {
		return nil, err
	}

	if dir != "" {
		if err := a.watch(dir); err != nil {
			return nil, err
		}
		logger.Info("serving assets from disk", zap.String("dir", dir))
	}

	return a, nil
}

func (a *assets) reload() error {
	tmpl, err := template.ParseFS(a.fsys, indexTemplate)
	if err != nil {
		return fmt.Errorf("parse %s: %w", indexTemplate, err)
	}

	a.mu.Lock()
	a.index = tmpl
	a.mu.Unlock()
	return nil
}

func (a *assets) renderIndex(w io.Writer) error {
	kinds := convert.Kinds()
	data := pageData{Kinds: kinds, Default: kinds[0]}

	a.mu.RLock()
	tmpl := a.index
	a.mu.RUnlock()

	return tmpl.Execute(w, data)
}

func (a *assets) watch(dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create asset watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	a.watcher = w
	a.done = make(chan struct{})
	go a.watchLoop()
	return nil
}

func (a *assets) watchLoop() {
	defer close(a.done)

	for {
		select {
		case ev, ok := <-a.watcher.Events:
			if !ok {
				return
			}
			// Editors often replace the file rather than write it in place.
			if filepath.Base(ev.Name) != indexTemplate || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := a.reload(); err != nil {
				a.logger.Warn("failed to reload page template", zap.Error(err))
				continue
			}
			a.logger.Info("reloaded page template", zap.String("file", ev.Name))

		case err, ok := <-a.watcher.Errors:
			if !ok {
				return
			}
			a.logger.Warn("asset watcher error", zap.Error(err))
		}
	}
}

// Close stops the watcher, if any.
func (a *assets) Close() error {
	if a.watcher == nil {
		return nil
	}
	err := a.watcher.Close()
	<-a.done
	return err
}
