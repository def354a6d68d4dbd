package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Err is an error carrying the http status code it should be served with.
type Err struct {
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *Err) Error() string {
	return e.Message
}

func NewErrf(statusCode int, format string, args ...any) *Err {
	return &Err{
		Message:    fmt.Sprintf(format, args...),
		StatusCode: statusCode,
	}
}

// pathBinder is implemented by requests that take their fields from the url path.
type pathBinder interface {
	bindPath(r *http.Request)
}

func (r *GetNodeRequest) bindPath(req *http.Request) {
	r.ID = req.PathValue("id")
}

// RegisterFunc registers a typed handler on mux for the given method and pattern.
// Handler errors of type *Err are served with their status code, anything else as a 500.
func RegisterFunc[Req any, Resp any](logger *logrus.Logger, mux *http.ServeMux, method, pattern string, handler func(context.Context, *Req) (*Resp, error)) {
	mux.HandleFunc(method+" "+pattern, func(w http.ResponseWriter, r *http.Request) {
		req := new(Req)
		if binder, ok := any(req).(pathBinder); ok {
			binder.bindPath(r)
		}

		resp, err := handler(r.Context(), req)
		if err != nil {
			apiErr := &Err{}
			if !errors.As(err, &apiErr) {
				logger.WithField("pattern", pattern).WithError(err).Error("Handler failed with unexpected error")
				apiErr = NewErrf(http.StatusInternalServerError, "internal error")
			}
			writeJSON(logger, w, apiErr.StatusCode, apiErr)
			return
		}

		writeJSON(logger, w, http.StatusOK, resp)
	})
}

func writeJSON(logger *logrus.Logger, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		logger.WithError(err).Error("Failed to write response")
	}
}
