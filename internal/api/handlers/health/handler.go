package health

import (
	"net/http"

	"github.com/avilov/MDC-AppointmentService/internal/api/handlers"
)

// Handler простой liveness-хендлер
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
