package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/exceptions"
	"vitalsign-service/internal/pkg/utils"

	"go.uber.org/zap"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("unknown panic: %v", x)
				}

				m.Log.Error("ErrorHandler recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
					zap.Error(err),
					zap.Stack("stack"),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrPanicRecovered(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
