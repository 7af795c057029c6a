// Package main provides the entry point for carflow-feed.
//
// The feed server holds an in-memory list of car sightings, appended
// by a paced producer. Every accepted TCP connection receives the full
// encoded list, then the server closes the connection; closing is the
// end-of-payload signal.
//
// Usage:
//
//	carflow-feed -config feed.yaml
//	carflow-feed -listen 0.0.0.0:8000
package main
