package httpapi

import (
	"net/http"

	"github.com/riskibarqy/vpl-ladder/internal/platform/id"
	"github.com/riskibarqy/vpl-ladder/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerCompetitionRoutes(mux, handler)
	registerLadderRoutes(mux, handler)
	registerMatchRoutes(mux, handler)

	return RequestTracing(
		RequestID(id.NewUUIDGenerator(),
			RequestLogging(logger,
				CORS(corsAllowedOrigins,
					recoverPanic(logger, mux)))))
}
