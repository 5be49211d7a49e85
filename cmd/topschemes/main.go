package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fulldump/topschemes/bootstrap"
	"github.com/fulldump/topschemes/configuration"
)

var VERSION = "dev"

var banner = `
 _____             ____       _
|_   _|__  _ __   / ___|  ___| |__   ___ _ __ ___   ___  ___
  | |/ _ \| '_ \  \___ \ / __| '_ \ / _ \ '_ ' _ \ / _ \/ __|
  | | (_) | |_) |  ___) | (__| | | |  __/ | | | | |  __/\__ \
  |_|\___/| .__/  |____/ \___|_| |_|\___|_| |_| |_|\___||___/
          |_|                                   version ` + VERSION + `
`

// loadEnv reads .env files into the environment. A missing file is fine, real
// environment variables take precedence anyway.
func loadEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func main() {

	if err := loadEnv(); err != nil {
		fmt.Println("WARNING: .env:", err.Error())
	}

	c := configuration.Default()
	goconfig.Read(c)

	if c.Version {
		fmt.Println("Version:", VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	l, err := bootstrap.NewLogger(c.LogDevelopment)
	if err != nil {
		fmt.Println("ERROR: logger:", err.Error())
		os.Exit(-1)
	}
	defer l.Sync()

	bootstrap.VERSION = VERSION
	start, _, err := bootstrap.Bootstrap(c, l)
	if err != nil {
		l.Error("bootstrap", zap.Error(err))
		os.Exit(-1)
	}

	start()
}
