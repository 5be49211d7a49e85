package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/fulldump/topschemes/bootstrap"
	"github.com/fulldump/topschemes/configuration"
)

func Parallel(workers int, f func()) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	wg.Wait()
}

func TempDir() (string, func()) {
	dir, err := os.MkdirTemp("", "topschemes_bench_*")
	if err != nil {
		panic("Could not create temp directory: " + err.Error())
	}

	cleanup := func() {
		os.RemoveAll(dir)
	}

	return dir, cleanup
}

// WriteSchemes generates a schemes file with n rows.
func WriteSchemes(filename string, n int) {

	f, err := os.Create(filename)
	if err != nil {
		panic("Could not create schemes file: " + err.Error())
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "scheme_code,scheme_name,category,nav,expense_ratio")
	for i := 0; i < n; i++ {
		expense := fmt.Sprintf("%.2f", 0.5+float64(i%100)/100)
		if i%7 == 0 {
			expense = ""
		}
		fmt.Fprintf(w, "%d,Scheme %d,Category %d,%.2f,%s\n", 100000+i, i, i%5, 10+float64(i)/10, expense)
	}
	w.Flush()
}

func freeAddr() string {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic("Could not find a free port: " + err.Error())
	}
	defer ln.Close()
	return ln.Addr().String()
}

func CreateServer(c *Config) (start, stop func()) {
	dir, cleanup := TempDir()
	cleanups = append(cleanups, cleanup)

	conf := configuration.Default()
	conf.Dir = dir
	conf.Limit = c.Limit
	conf.HttpAddr = freeAddr()
	WriteSchemes(filepath.Join(dir, conf.File), c.Rows)
	c.Base = "http://" + conf.HttpAddr

	start, stop, err := bootstrap.Bootstrap(conf, zap.NewNop())
	if err != nil {
		panic("Could not start server: " + err.Error())
	}

	return start, stop
}
