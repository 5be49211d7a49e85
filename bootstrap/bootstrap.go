package bootstrap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/fulldump/topschemes/api"
	"github.com/fulldump/topschemes/configuration"
	"github.com/fulldump/topschemes/service"
)

var VERSION = "dev"

// Bootstrap wires the service, the api and the http server. start blocks
// until the server is stopped, either by calling stop or by SIGINT/SIGTERM.
func Bootstrap(c *configuration.Configuration, l *zap.Logger) (start, stop func(), err error) {

	s := service.NewService(c.Dir, l.Named("service"))

	b := api.Build(s, c.File, c.Limit, VERSION)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.AccessLog(l.Named("access")),
		api.RecoverFromPanic(l),
		api.PrettyErrorInterceptor,
	)

	server := &http.Server{
		Addr:    c.HttpAddr,
		Handler: api.Cors(b, c.CorsOrigins),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		return nil, nil, err
	}
	l.Info("listening", zap.String("addr", ln.Addr().String()))

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)

	var once sync.Once
	stop = func() {
		once.Do(func() {
			signal.Stop(signalChan)
			close(signalChan)
			err := server.Shutdown(context.Background())
			if err != nil {
				l.Error("shutdown", zap.Error(err))
			}
		})
	}

	go func() {
		for sig := range signalChan {
			l.Info("signal received", zap.String("signal", sig.String()))
			stop()
		}
	}()

	start = func() {
		err := server.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("serve", zap.Error(err))
		}
	}

	return start, stop, nil
}
