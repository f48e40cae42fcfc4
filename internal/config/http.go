package config

import "time"

type HTTP struct {
	Address           string        `env:"HTTP_ADDRESS" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen    int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

type Probe struct {
	Address string `env:"PROBE_ADDRESS" envDefault:":8091"`
}

type Metrics struct {
	Address string `env:"METRICS_ADDRESS" envDefault:":9090"`
}
