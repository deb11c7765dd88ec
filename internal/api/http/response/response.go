// Package response renders API errors in a uniform JSON shape.
package response

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/apierror"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/logger"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
)

// ErrResponse is the body of every failed request.
type ErrResponse struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrResponse) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// NewErrResponse maps err to a client safe response. Errors that are not
// API errors become a generic 500.
func NewErrResponse(err error) *ErrResponse {
	if apiErr, ok := apierror.As(err); ok {
		return &ErrResponse{
			Err:            err,
			HTTPStatusCode: apiErr.HTTPStatus,
			Code:           apiErr.Code,
			Message:        apiErr.Message,
		}
	}

	if errors.Is(err, model.ErrForbidden) {
		return NewErrResponse(apierror.NewErrForbidden(err))
	}

	internal := apierror.NewErrInternalServerError(err)
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: internal.HTTPStatus,
		Code:           internal.Code,
		Message:        internal.Message,
	}
}

// Error logs err when it is a server failure and writes the error body.
func Error(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	resp := NewErrResponse(err)
	if resp.HTTPStatusCode >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "HTTP request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err.Error())
	}

	if renderErr := render.Render(w, r, resp); renderErr != nil {
		log.ErrorContext(r.Context(), "failed to render error response",
			"error", renderErr.Error())
	}
}
