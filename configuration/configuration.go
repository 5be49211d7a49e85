package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	Dir               string `usage:"data directory"`
	File              string `usage:"schemes file served by /top-schemes, relative to dir"`
	Limit             int    `usage:"number of rows served by /top-schemes"`
	CorsOrigins       string `usage:"comma separated list of allowed origins"`
	EnableCompression bool   `usage:"enable gzip compression"`
	LogDevelopment    bool   `usage:"human readable logs"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}
