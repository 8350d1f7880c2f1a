package health

import (
	"log"
	"net/http"
	"time"

	"github.com/trynex/lifestyle-backend/pkg/response"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping() error
}

type HealthHandler struct {
	db  Pinger
	env string
}

func NewHealthHandler(db Pinger, env string) *HealthHandler {
	return &HealthHandler{
		db:  db,
		env: env,
	}
}

type Status struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Database    bool   `json:"database"`
}

// HandleGet reports process and database health; 503 when the database ping
// fails so load balancers take the instance out of rotation.
func (h *HealthHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	status := Status{
		Status:      "healthy",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.env,
		Database:    true,
	}
	code := http.StatusOK

	if err := h.db.Ping(); err != nil {
		log.Printf("Database health check failed: %v", err)
		status.Status = "unhealthy"
		status.Database = false
		code = http.StatusServiceUnavailable
	}

	response.JSON(w, code, status)
}
