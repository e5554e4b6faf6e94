package configuration

import (
	"net"
	"strconv"
)

// ApiConfig configures the read-only REST api exposing the pipeline state
type ApiConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
}

// Address is the listen address of the REST api
func (c ApiConfig) Address() string {
	return listenAddress(c.Host, c.Port)
}

// ProfilingConfig configures the pprof endpoint
type ProfilingConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port,omitempty"`
}

// Address is the listen address of the pprof endpoint
func (c ProfilingConfig) Address() string {
	return listenAddress(c.Host, c.Port)
}

func listenAddress(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
