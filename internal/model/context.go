package model

import (
	"context"

	"github.com/google/uuid"
)

// Viewer is the result of authenticating a request.
// The zero value is an anonymous viewer.
type Viewer struct {
	UserID uuid.UUID
}

// NewViewer returns a viewer authenticated as userID.
func NewViewer(userID uuid.UUID) Viewer {
	return Viewer{UserID: userID}
}

// IsAnonymous reports whether the request carried no identity.
func (v Viewer) IsAnonymous() bool {
	return v.UserID == uuid.Nil
}

// Owns reports whether the viewer is the owner of the article.
func (v Viewer) Owns(a Article) bool {
	return !v.IsAnonymous() && v.UserID == a.OwnerID
}

// ContextManager stores the request viewer in a context.
type ContextManager interface {
	SetViewerToContext(ctx context.Context, viewer Viewer) context.Context
	GetViewerFromContext(ctx context.Context) Viewer
}
