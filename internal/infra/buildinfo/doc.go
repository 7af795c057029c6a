// Package buildinfo provides build-time version information for the
// CarFlow binaries. Values are injected via ldflags at build time.
package buildinfo
