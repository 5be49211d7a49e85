package api

import (
	"path/filepath"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
	"go.uber.org/zap"

	"github.com/fulldump/topschemes/dataset"
	"github.com/fulldump/topschemes/service"
)

func TestAcceptance(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		dir := t.TempDir()
		l := zap.NewNop()

		s := service.NewService(dir, l)

		b := Build(s, dataset.DefaultFilename, dataset.DefaultLimit, "test")
		b.WithInterceptors(
			AccessLog(l),
			RecoverFromPanic(l),
			PrettyErrorInterceptor,
		)

		api := apitest.NewWithHandler(b)
		defer api.Destroy()

		service.Acceptance(a, filepath.Join(dir, dataset.DefaultFilename), func(method, path string) *apitest.Request {
			return api.Request(method, path)
		})

	})
}
