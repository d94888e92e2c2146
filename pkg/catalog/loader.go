package catalog

import (
	"context"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
	cblog "github.com/charmbracelet/log"
	apperrors "github.com/darksworm/lumina/pkg/errors"
	"github.com/darksworm/lumina/pkg/model"
)

// Loader turns a Source into the app's one-shot load command. The first call
// to Cmd starts the load; later calls return nil so a session never has two
// loads in flight.
type Loader struct {
	source  Source
	once    sync.Once
	started bool
}

// NewLoader creates a loader for source
func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// Source returns the underlying source
func (l *Loader) Source() Source {
	return l.source
}

// Cmd returns the load command, or nil if the load was already started.
func (l *Loader) Cmd(ctx context.Context) tea.Cmd {
	var cmd tea.Cmd
	l.once.Do(func() {
		l.started = true
		cmd = func() tea.Msg {
			return l.load(ctx)
		}
	})
	return cmd
}

// Started reports whether Cmd has handed out the load command.
func (l *Loader) Started() bool {
	return l.started
}

func (l *Loader) load(ctx context.Context) tea.Msg {
	logger := cblog.With("component", "catalog", "source", l.source.Location())
	start := time.Now()
	logger.Info("Loading catalog")

	products, err := l.source.Load(ctx)
	if err != nil {
		if le, ok := err.(*apperrors.LumaError); ok {
			logger.Error("Catalog load failed", append([]interface{}{"err", le.Message}, le.LogFields()...)...)
		} else {
			logger.Error("Catalog load failed", "err", err)
		}
		return model.CatalogLoadFailedMsg{Err: err}
	}

	logger.Info("Catalog loaded", "products", len(products), "took", time.Since(start))
	return model.CatalogLoadedMsg{Products: products}
}
