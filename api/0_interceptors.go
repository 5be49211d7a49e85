package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fulldump/box"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIdHeader = "X-Request-Id"

// AccessLog logs one line per request. Incoming request ids are kept,
// otherwise a new one is generated and echoed back in the response.
func AccessLog(l *zap.Logger) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			r := box.GetRequest(ctx)
			w := box.GetResponse(ctx)

			requestId := r.Header.Get(RequestIdHeader)
			if requestId == "" {
				requestId = uuid.NewString()
			}
			w.Header().Set(RequestIdHeader, requestId)

			now := time.Now()
			defer func() {
				l.Info("access",
					zap.String("request_id", requestId),
					zap.String("remote_addr", formatRemoteAddr(r)),
					zap.String("method", r.Method),
					zap.String("url", r.URL.String()),
					zap.Duration("elapsed", time.Since(now)),
				)
			}()

			next(ctx)
		}
	}
}

func formatRemoteAddr(r *http.Request) string {
	xorigin := strings.TrimSpace(strings.Split(
		r.Header.Get("X-Forwarded-For"), ",")[0])
	if xorigin != "" {
		return xorigin
	}

	i := strings.LastIndex(r.RemoteAddr, ":")
	if i < 0 {
		return r.RemoteAddr
	}
	return r.RemoteAddr[0:i]
}

// RecoverFromPanic answers 500 when a handler panics. It must run inside
// AccessLog so the request is still logged.
func RecoverFromPanic(l *zap.Logger) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			defer func() {
				if err := recover(); err != nil {
					l.Error("panic",
						zap.String("url", box.GetRequest(ctx).URL.String()),
						zap.Any("panic", err),
						zap.Stack("stack"),
					)
					writePrettyError(box.GetResponse(ctx), http.StatusInternalServerError, PrettyError{
						Message:     fmt.Sprint(err),
						Description: "Unexpected error",
					})
				}
			}()
			next(ctx)
		}
	}
}
