package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// deadlineWriter wraps the response writer for a request running under a
// deadline. Once the deadline response has gone out, writes from the still
// running handler goroutine are swallowed so they cannot interleave with it.
type deadlineWriter struct {
	http.ResponseWriter
	mu          sync.Mutex
	expired     bool
	wroteHeader bool
}

func (w *deadlineWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expired {
		return
	}
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *deadlineWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expired {
		return len(b), nil
	}
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// expire seals the writer against further handler writes and, if no response
// had started yet, emits the 504 body directly on the underlying writer. Both
// happen under the writer lock, so a handler write either lands fully before
// the deadline response or not at all.
func (w *deadlineWriter) expire() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.expired = true
	if w.wroteHeader {
		return false
	}

	w.ResponseWriter.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w.ResponseWriter.WriteHeader(http.StatusGatewayTimeout)
	_ = json.NewEncoder(w.ResponseWriter).Encode(map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"status":    http.StatusGatewayTimeout,
		"error":     http.StatusText(http.StatusGatewayTimeout),
		"message":   "request processing exceeded the allowed time limit",
	})
	return true
}

// RequestTimeout sets a context deadline on each incoming request. When the
// deadline passes before the handler completes, the client gets a 504 and any
// response the abandoned handler produces afterwards is discarded. Handlers
// that need more time can derive their own context from the request context.
func RequestTimeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))

			w := &deadlineWriter{ResponseWriter: c.Response().Writer}
			c.Response().Writer = w

			// Run the handler in a goroutine so we can select on the context.
			done := make(chan error, 1)
			go func() {
				done <- next(c)
			}()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded {
					if w.expire() {
						c.Response().Status = http.StatusGatewayTimeout
					}
					return nil
				}
				// Cancelled for another reason, e.g. client disconnect.
				return ctx.Err()
			}
		}
	}
}
