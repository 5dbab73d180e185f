package api

import (
	"net/http"

	"github.com/projecthelena/greeter/internal/clock"
)

// Healthz returns the liveness probe. The process answering is the whole
// check; the timestamp comes from the same clock as the greetings.
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object} object{status=string,timestamp=string}
// @Router       /healthz [get]
func Healthz(c clock.Clock) http.HandlerFunc {
	if c == nil {
		c = clock.Real{}
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"timestamp": c.Now().UTC(),
		})
	}
}
