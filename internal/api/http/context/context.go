package context

import (
	"context"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
)

type viewerKey struct{}

var _ model.ContextManager = (*Manager)(nil)

// Manager stores the authenticated viewer in a request context.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetViewerToContext returns a copy of ctx carrying viewer.
func (m *Manager) SetViewerToContext(ctx context.Context, viewer model.Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, viewer)
}

// GetViewerFromContext returns the viewer stored in ctx, or an anonymous
// viewer when there is none.
func (m *Manager) GetViewerFromContext(ctx context.Context) model.Viewer {
	viewer, _ := ctx.Value(viewerKey{}).(model.Viewer)
	return viewer
}
