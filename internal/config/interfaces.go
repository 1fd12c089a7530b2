package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	URI() string
	DatabaseName() string
}

type CORS interface {
	AllowedOrigin() string
}

type Seed interface {
	Enabled() bool
}
