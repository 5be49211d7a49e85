package main

import (
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/fulldump/goconfig"
)

type Config struct {
	Base     string `usage:"base URL, a local server is started when empty"`
	Rows     int    `usage:"number of rows of the generated schemes file"`
	Limit    int    `usage:"rows served per request"`
	Requests int64  `usage:"number of requests"`
	Workers  int    `usage:"number of workers"`
}

var cleanups []func()

func main() {

	defer func() {
		fmt.Println("Cleaning up...")
		for _, cleanup := range cleanups {
			cleanup()
		}
	}()

	c := Config{
		Base:     "",
		Rows:     10_000,
		Limit:    20,
		Requests: 10_000,
		Workers:  16,
	}
	goconfig.Read(&c)

	if c.Base == "" {
		start, stop := CreateServer(&c)
		defer stop()
		go start()
	}

	client := &http.Client{
		Transport: &http.Transport{
			MaxConnsPerHost:     1024,
			MaxIdleConnsPerHost: 1024,
			MaxIdleConns:        1024,
		},
	}

	pending := c.Requests
	failed := int64(0)

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for atomic.AddInt64(&pending, -1) >= 0 {
			resp, err := client.Get(c.Base + "/top-schemes")
			if err != nil {
				atomic.AddInt64(&failed, 1)
				continue
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				atomic.AddInt64(&failed, 1)
			}
		}
	})

	took := time.Since(t0)
	fmt.Println("requests:", c.Requests)
	fmt.Println("failed:", failed)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f req/sec\n", float64(c.Requests)/took.Seconds())
}
