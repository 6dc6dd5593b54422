package config

const (
	defaultBind           = "127.0.0.1:5180"
	defaultBaseURL        = "http://127.0.0.1:5180/"
	defaultBasePath       = "/"
	defaultAuthMode       = "none"
	defaultServicesFile   = "/etc/logbay/services.json"
	defaultServiceLogRoot = "/var/log/services"
	defaultMaxLines       = 1000
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultLogDir         = "~/.local/share/logbay/logs"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Bind:     defaultBind,
			BaseURL:  defaultBaseURL,
			BasePath: defaultBasePath,
			AuthMode: defaultAuthMode,
		},
		Catalog: Catalog{
			ServicesFile:   defaultServicesFile,
			ServiceLogRoot: defaultServiceLogRoot,
		},
		Tail: Tail{
			MaxLines: defaultMaxLines,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Dir:    defaultLogDir,
		},
	}
}
