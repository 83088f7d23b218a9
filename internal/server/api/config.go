package api

import "time"

// ServerConfig represents the API part of the serve command.
type ServerConfig struct {
	Addr              string        `help:"API server listen address" default:"127.0.0.1:3243" env:"BINDCORE_API_ADDR"`
	ConnectionTimeout time.Duration `help:"Idle time before a client connection is dropped, 0 to keep it open" default:"0s" env:"BINDCORE_API_CONNECTION_TIMEOUT"`
}
