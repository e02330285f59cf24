package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// ServerConfig configures the HTTP listener and timestamp rendering.
//
// Every variable is optional; the defaults reproduce the service's canonical
// deployment (bind 0.0.0.0:8080, render in the host's local zone).
type ServerConfig struct {
	Host string
	Port int

	// TimeZone is "local", "utc", or an IANA zone name ("Europe/Berlin").
	TimeZone string
	Location *time.Location

	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func LoadServerConfigFromEnv() (ServerConfig, error) {
	cfg := ServerConfig{
		Host:              "0.0.0.0",
		Port:              8080,
		TimeZone:          "local",
		Location:          time.Local,
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}

	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 || p > 65535 {
			return ServerConfig{}, fmt.Errorf("PORT must be an integer in 1..65535, got %q", v)
		}
		cfg.Port = p
	}
	if v := os.Getenv("TIME_ZONE"); v != "" {
		loc, err := resolveLocation(v)
		if err != nil {
			return ServerConfig{}, err
		}
		cfg.TimeZone = v
		cfg.Location = loc
	}
	if v := os.Getenv("READ_HEADER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return ServerConfig{}, fmt.Errorf("READ_HEADER_TIMEOUT must be a positive duration (e.g. 5s), got %q", v)
		}
		cfg.ReadHeaderTimeout = d
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return ServerConfig{}, fmt.Errorf("SHUTDOWN_TIMEOUT must be a positive duration (e.g. 10s), got %q", v)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

func resolveLocation(name string) (*time.Location, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "local":
		return time.Local, nil
	case "utc":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("TIME_ZONE must be local, utc, or an IANA zone name: %w", err)
	}
	return loc, nil
}
