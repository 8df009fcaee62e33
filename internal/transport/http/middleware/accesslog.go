package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	appCtx "github.com/partytracker/party-service/internal/pkg/context"
	zlog "github.com/rs/zerolog/log"
)

func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		ev := zlog.Info()
		if status >= http.StatusInternalServerError {
			ev = zlog.Warn()
		}
		ev.
			Str("request_id", appCtx.GetRequestID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("latency", time.Since(start)).
			Str("remote_ip", r.RemoteAddr).
			Msg("http_request")
	})
}
