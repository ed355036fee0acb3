package handlers

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"fantasy-stats-web/api"
	"fantasy-stats-web/logging"
	"fantasy-stats-web/server/views"

	"github.com/google/uuid"
)

// ErrorBoundary is the single place page failures are rendered. Every
// failure gets a reference id that is both logged and shown to the visitor.
type ErrorBoundary struct {
	renderer     *views.Renderer
	logger       *logging.Logger
	newReference func() string
}

func NewErrorBoundary(renderer *views.Renderer) *ErrorBoundary {
	return &ErrorBoundary{
		renderer:     renderer,
		logger:       logging.For("ErrorBoundary"),
		newReference: func() string { return uuid.NewString() },
	}
}

// Fail logs err and answers with the "Something Went Wrong" page.
func (b *ErrorBoundary) Fail(w http.ResponseWriter, r *http.Request, err error) {
	b.render(w, r, err.Error(), errorDetails(r, err))
}

// Recover turns a panic in next into the error page.
func (b *ErrorBoundary) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				b.render(w, r, fmt.Sprint(rec), fmt.Sprintf("%s %s\n%s", r.Method, r.URL.Path, debug.Stack()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (b *ErrorBoundary) render(w http.ResponseWriter, r *http.Request, message, details string) {
	reference := b.newReference()
	b.logger.Error("[%s] %s %s: %s", reference, r.Method, r.URL.Path, message)
	b.logger.Debug("[%s] %s", reference, details)

	view := views.ErrorView{Message: message, Details: details, Reference: reference}
	if err := b.renderer.Render(w, r, http.StatusInternalServerError, views.ErrorPage, view); err != nil {
		b.logger.Error("[%s] Error rendering error page: %v", reference, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func errorDetails(r *http.Request, err error) string {
	details := fmt.Sprintf("%s %s", r.Method, r.URL.RequestURI())
	if fe, ok := api.AsFetchError(err); ok {
		details += fmt.Sprintf("\nendpoint: %s\nfailure: %s\nattempts: %d", fe.Endpoint, fe.Kind, fe.Attempts)
		if fe.StatusCode != 0 {
			details += fmt.Sprintf("\nstatus: %d", fe.StatusCode)
		}
		if fe.Cause != nil {
			details += fmt.Sprintf("\ncause: %v", fe.Cause)
		}
	}
	return details
}
