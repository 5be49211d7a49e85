package configuration

import (
	"github.com/fulldump/topschemes/dataset"
)

func Default() *Configuration {
	return &Configuration{
		HttpAddr:          ":8000",
		Dir:               ".",
		File:              dataset.DefaultFilename,
		Limit:             dataset.DefaultLimit,
		CorsOrigins:       "*",
		EnableCompression: false,
		LogDevelopment:    false,
		ShowBanner:        true,
		ShowConfig:        false,
	}
}
