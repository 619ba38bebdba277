// Package domain selects the base host for an environment and joins it
// with request paths.
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Domain is a base host URL.
type Domain string

const (
	Pro   Domain = "http://product_host"
	Dev   Domain = "http://development_host"
	Local Domain = "http://local_host"
)

// Environment selectors.
const (
	EnvPro   = 0
	EnvDev   = 1
	EnvLocal = 2
)

// DefaultEnv is the environment used when none is selected.
const DefaultEnv = EnvDev

// Hosts maps each environment to its base host.
type Hosts struct {
	Pro   Domain `json:"pro,omitempty" yaml:"pro,omitempty"`
	Dev   Domain `json:"dev,omitempty" yaml:"dev,omitempty"`
	Local Domain `json:"local,omitempty" yaml:"local,omitempty"`
}

// DefaultHosts returns the built-in host table.
func DefaultHosts() Hosts {
	return Hosts{Pro: Pro, Dev: Dev, Local: Local}
}

// Lookup returns the host for env. Unknown selectors return "", false.
func (h Hosts) Lookup(env int) (Domain, bool) {
	switch env {
	case EnvPro:
		return h.Pro, true
	case EnvDev:
		return h.Dev, true
	case EnvLocal:
		return h.Local, true
	}
	return "", false
}

// Merge returns h with every non-empty host in other applied.
func (h Hosts) Merge(other Hosts) Hosts {
	if other.Pro != "" {
		h.Pro = other.Pro
	}
	if other.Dev != "" {
		h.Dev = other.Dev
	}
	if other.Local != "" {
		h.Local = other.Local
	}
	return h
}

// Accessor returns the built-in host for env.
func Accessor(env int) (Domain, bool) {
	return DefaultHosts().Lookup(env)
}

// EnvName returns the short name of an environment selector.
func EnvName(env int) string {
	switch env {
	case EnvPro:
		return "pro"
	case EnvDev:
		return "dev"
	case EnvLocal:
		return "local"
	}
	return strconv.Itoa(env)
}

// ParseEnv accepts a numeric selector or one of pro, dev and local.
func ParseEnv(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "pro", "prod", "production":
		return EnvPro, nil
	case "1", "dev", "development":
		return EnvDev, nil
	case "2", "local":
		return EnvLocal, nil
	}
	return 0, fmt.Errorf("unknown environment %q (want 0, 1, 2, pro, dev or local)", s)
}

// Join joins base and path with exactly one slash, removing a single
// trailing slash from base and a single leading slash from path.
func Join(base, path string) string {
	b := strings.TrimSuffix(base, "/")
	p := strings.TrimPrefix(path, "/")
	return b + "/" + p
}
