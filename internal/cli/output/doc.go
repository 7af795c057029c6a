// Package output provides output formatting for carflow-collector.
package output
