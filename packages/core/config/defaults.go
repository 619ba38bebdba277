package config

import (
	"github.com/abdul-hamid-achik/apismoke/packages/domain"
	"github.com/abdul-hamid-achik/apismoke/packages/suite"
)

const (
	// DefaultTimeoutMs is the default request timeout in milliseconds
	DefaultTimeoutMs = 30000
	// DefaultMaxRedirects is the default number of redirects to follow
	DefaultMaxRedirects = 10
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Env:             IntPtr(domain.DefaultEnv),
		Hosts:           domain.DefaultHosts(),
		Timeout:         DefaultTimeoutMs,
		Rate:            0,
		FollowRedirects: BoolPtr(true),
		MaxRedirects:    DefaultMaxRedirects,
		ValidateSSL:     BoolPtr(true),
		Proxy:           "",
		Headers:         nil,
		Verbose:         BoolPtr(false),
		NoColor:         BoolPtr(false),
	}
}

// CasesOrDefault returns the configured cases, or the built-in ones when
// none are configured.
func (c *Config) CasesOrDefault() []suite.Case {
	if len(c.Cases) > 0 {
		return c.Cases
	}
	return suite.DefaultCases()
}
