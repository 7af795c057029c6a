// Package shutdown provides graceful shutdown handling for the CarFlow
// binaries. Hooks registered during startup run in reverse order when a
// termination signal arrives.
package shutdown
