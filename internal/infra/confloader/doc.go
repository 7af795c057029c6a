// Package confloader provides configuration loading for CarFlow.
//
// It uses Koanf for flexible configuration loading from multiple
// sources with priority: Flag > Env > File > Default. A companion
// fsnotify watcher supports hot reload of the configuration file,
// which the collector uses to pick up feed-list changes between
// cycles.
package confloader
