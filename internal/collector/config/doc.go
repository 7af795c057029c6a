// Package config defines the collector configuration structure.
package config
