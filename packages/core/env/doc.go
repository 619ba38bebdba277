// Package env reads .env files so hosts and headers in the apismoke config
// can refer to ${VAR} values kept out of version control.
package env
