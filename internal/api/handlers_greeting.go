package api

import (
	"net/http"

	"github.com/projecthelena/greeter/internal/clock"
)

// TimestampLayout renders local wall-clock time without a zone. Trailing
// zeros of the fraction are dropped, so a whole second prints as HH:MM:SS.
const TimestampLayout = "2006-01-02T15:04:05.999999999"

// Fixed prefixes of the greeting bodies, one per endpoint.
const (
	HelloLabel = "Version3 Hi Hello: "
	InfoLabel  = "Version3 DEVOPS INFO: "
	AboutLabel = "Version3 about: "
)

// GreetingHandler serves the three greeting endpoints.
type GreetingHandler struct {
	clock clock.Clock
}

// NewGreetingHandler creates a GreetingHandler reading time from c, or from
// the wall clock when c is nil.
func NewGreetingHandler(c clock.Clock) *GreetingHandler {
	if c == nil {
		c = clock.Real{}
	}
	return &GreetingHandler{clock: c}
}

// Hello answers the root path.
// @Summary      Root greeting
// @Tags         greeting
// @Produce      plain
// @Success      200  {string} string "Version3 Hi Hello: 2024-01-01T00:00:00"
// @Failure      429  {object} object{error=string} "Rate limit exceeded"
// @Router       / [get]
func (h *GreetingHandler) Hello(w http.ResponseWriter, r *http.Request) {
	h.write(w, HelloLabel)
}

// Info answers /info.
// @Summary      Service info
// @Tags         greeting
// @Produce      plain
// @Success      200  {string} string "Version3 DEVOPS INFO: 2024-01-01T00:00:00"
// @Failure      429  {object} object{error=string} "Rate limit exceeded"
// @Router       /info [get]
func (h *GreetingHandler) Info(w http.ResponseWriter, r *http.Request) {
	h.write(w, InfoLabel)
}

// About answers /about.
// @Summary      About
// @Tags         greeting
// @Produce      plain
// @Success      200  {string} string "Version3 about: 2024-01-01T00:00:00"
// @Failure      429  {object} object{error=string} "Rate limit exceeded"
// @Router       /about [get]
func (h *GreetingHandler) About(w http.ResponseWriter, r *http.Request) {
	h.write(w, AboutLabel)
}

func (h *GreetingHandler) write(w http.ResponseWriter, label string) {
	writeText(w, http.StatusOK, label+h.clock.Now().Format(TimestampLayout))
}
