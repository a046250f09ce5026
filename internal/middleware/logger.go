package middleware

import (
	"net/http"
	"time"

	"turforlag/internal/logger"
	"turforlag/internal/reqctx"

	"go.uber.org/zap"
)

func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lrw, r)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", lrw.statusCode),
			zap.Duration("duration", time.Since(start)),
		}

		if rid, ok := reqctx.GetRequestID(r.Context()); ok {
			fields = append(fields, zap.String("request_id", rid))
		}
		// user_id/role кладёт Identity во вложенный контекст, здесь их может не быть
		if id, ok := lrw.whoami(); ok {
			fields = append(fields, zap.Int("user_id", id.userID), zap.String("role", id.role))
		}

		logger.Log.Info("HTTP-запрос", fields...)
	})
}

type identity struct {
	userID int
	role   string
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	who        *identity
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) whoami() (identity, bool) {
	if lrw.who == nil {
		return identity{}, false
	}
	return *lrw.who, true
}

// rememberIdentity передаёт личность из Identity в логирующий writer.
func rememberIdentity(w http.ResponseWriter, userID int, role string) {
	if lrw, ok := w.(*loggingResponseWriter); ok {
		lrw.who = &identity{userID: userID, role: role}
	}
}
