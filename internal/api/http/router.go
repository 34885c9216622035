package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"itemshare-backend/internal/logger"
)

// NewRouter wires every handler onto the route table the upstream
// gateway expects.
func NewRouter(
	users *UserHandler,
	items *ItemHandler,
	bookings *BookingHandler,
	requests *ItemRequestHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogging)

	r.HandleFunc("/users", users.Create).Methods(http.MethodPost)
	r.HandleFunc("/users", users.GetAll).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", users.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", users.Update).Methods(http.MethodPatch)
	r.HandleFunc("/users/{id}", users.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/items", items.Add).Methods(http.MethodPost)
	r.HandleFunc("/items", items.GetAllByOwner).Methods(http.MethodGet)
	r.HandleFunc("/items/search", items.Search).Methods(http.MethodGet)
	r.HandleFunc("/items/{itemId}", items.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/items/{itemId}", items.Update).Methods(http.MethodPatch)
	r.HandleFunc("/items/{itemId}/comment", items.AddComment).Methods(http.MethodPost)

	r.HandleFunc("/bookings", bookings.Create).Methods(http.MethodPost)
	r.HandleFunc("/bookings", bookings.ListByBooker).Methods(http.MethodGet)
	r.HandleFunc("/bookings/owner", bookings.ListByOwner).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{bookingId}", bookings.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{bookingId}", bookings.Decide).Methods(http.MethodPatch)

	r.HandleFunc("/requests", requests.Add).Methods(http.MethodPost)
	r.HandleFunc("/requests", requests.GetOwn).Methods(http.MethodGet)
	r.HandleFunc("/requests/all", requests.GetAll).Methods(http.MethodGet)
	r.HandleFunc("/requests/{requestId}", requests.GetByID).Methods(http.MethodGet)

	return r
}

// requestLogging tags every request with an id and logs method, path
// and duration.
func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}
