package status

import (
	"context"
	"fmt"
	"net/http"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler serves the liveness endpoint.
type Handler struct {
	DB Pinger
}

// NewHandler creates a new status Handler.
func NewHandler(db Pinger) *Handler {
	return &Handler{DB: db}
}

func (h *Handler) Handle(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return fmt.Errorf("method %v not allowed", req.Method)
	}

	if err := h.DB.PingContext(req.Context()); err != nil {
		logData.AddData("dbReachable", false)
		w.WriteHeader(http.StatusServiceUnavailable)
		return fmt.Errorf("database unreachable: %w", err)
	}

	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte("OK"))
	return err
}
