package bootstrap

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/fulldump/biff"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fulldump/topschemes/configuration"
)

func TestBootstrap(t *testing.T) {

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "schemes.csv"), []byte("code,name\n120828,Quant Small Cap\n119063,\n"), 0666)
	biff.AssertNil(err)

	c := configuration.Default()
	c.HttpAddr = "127.0.0.1:0"
	c.Dir = dir
	c.File = "schemes.csv"
	c.Limit = 1

	core, logs := observer.New(zapcore.InfoLevel)
	start, stop, err := Bootstrap(c, zap.New(core))
	biff.AssertNil(err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		start()
	}()

	entries := logs.FilterMessage("listening").All()
	biff.AssertEqual(len(entries), 1)
	addr := entries[0].ContextMap()["addr"].(string)

	resp, err := http.Get("http://" + addr + "/top-schemes")
	biff.AssertNil(err)
	defer resp.Body.Close()

	body := []map[string]any{}
	err = json.NewDecoder(resp.Body).Decode(&body)
	biff.AssertNil(err)

	biff.AssertEqual(resp.StatusCode, http.StatusOK)
	biff.AssertEqualJson(body, []map[string]any{
		{"code": 120828, "name": "Quant Small Cap"},
	})

	stop()
	<-done
}

func TestBootstrap_BadAddress(t *testing.T) {

	c := configuration.Default()
	c.HttpAddr = "definitely not an address"
	c.Dir = t.TempDir()

	start, stop, err := Bootstrap(c, zap.NewNop())

	biff.AssertNotNil(err)
	biff.AssertNil(start)
	biff.AssertNil(stop)
}

func runAndStop(t *testing.T) {

	c := configuration.Default()
	c.HttpAddr = "127.0.0.1:0"
	c.Dir = t.TempDir()

	start, stop, err := Bootstrap(c, zap.NewNop())
	biff.AssertNil(err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		start()
	}()

	stop()
	stop()
	<-done
}

func TestBootstrap_StopReleasesGoroutines(t *testing.T) {

	// first run starts the os/signal watcher, which lives for the whole process
	runAndStop(t)
	before := runtime.NumGoroutine()

	for i := 0; i < 3; i++ {
		runAndStop(t)
	}

	deadline := time.Now().Add(2 * time.Second)
	for runtime.NumGoroutine() > before && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	biff.AssertTrue(runtime.NumGoroutine() <= before)
}
