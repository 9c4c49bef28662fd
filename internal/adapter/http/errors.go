package adapthttp

import (
	"errors"
	"net/http"

	"ergzones/internal/domain"
)

// respondDomainError maps the domain error taxonomy onto HTTP statuses:
// unknown configuration or zone → 404, invalid input or configuration
// content → 400, anything unexpected → 500.
func (s *Server) respondDomainError(w http.ResponseWriter, err error) {
	var (
		cfgErr     *domain.ConfigError
		notFound   *domain.ZoneNotFoundError
		badBenchmk *domain.InvalidBenchmarkError
	)
	switch {
	case errors.As(err, &cfgErr):
		if cfgErr.Kind == domain.ConfigUnreadable {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, err)
	case errors.As(err, &badBenchmk):
		writeError(w, http.StatusBadRequest, err)
	default:
		s.logger.Error("unhandled calculation error", "error", err)
		writeError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}
