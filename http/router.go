package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the API routes. Only the schedule endpoint is rate
// limited.
func NewRouter(
	scheduleHandler *ScheduleHandler,
	limiter *RateLimiter,
	log *logrus.Logger,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware(log))

	r.HandleFunc("/health", Health(log)).Methods(http.MethodGet)
	r.Handle(
		"/loan/schedule",
		RateLimitMiddleware(
			limiter,
			http.HandlerFunc(scheduleHandler.CalculateSchedule),
		),
	).Methods(http.MethodPost)

	return r
}
