package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"itemshare-backend/internal/domain"
)

// UserIDHeader carries the acting account id, set by the upstream
// gateway that fronts this service.
const UserIDHeader = "X-Sharer-User-Id"

func actorID(r *http.Request) (int64, error) {
	raw := r.Header.Get(UserIDHeader)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing %s header", domain.ErrInvalidRequest, UserIDHeader)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s header %q", domain.ErrInvalidRequest, UserIDHeader, raw)
	}
	return id, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad path parameter %s=%q", domain.ErrInvalidRequest, name, raw)
	}
	return id, nil
}
