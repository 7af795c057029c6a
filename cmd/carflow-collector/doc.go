// Package main provides the entry point for carflow-collector.
//
// The collector fans out one TCP connection per configured feed server,
// reads each feed's full payload until the peer closes, decodes the
// records, and merges the results of all feeds into one list:
//
//   - collect: run a single collection cycle and print the result
//   - watch: run cycles continuously with configuration hot reload
//   - version: print build information
//
// Usage:
//
//	carflow-collector [command] [flags]
//	carflow-collector collect --addr feed-a:8000 --addr feed-b:8000
//	carflow-collector watch --config carflow.yaml --output json
package main
