// Package config loads link editing configuration.
//
// Configuration comes from a TOML file, overridden by environment
// variables:
//
//	[link]
//	addTargetToExternalLinks = true
//
//	[[link.decorators]]
//	id = "downloadable"
//	mode = "manual"
//	label = "Downloadable"
//	attributes = { download = "file" }
//
//	[[link.decorators]]
//	id = "isGitHub"
//	mode = "automatic"
//	pattern = "^https://github\\.com/"
//
//	[log]
//	level = "info"
//
// # Environment
//
//   - KEYLINK_ADD_TARGET_TO_EXTERNAL_LINKS overrides link.addTargetToExternalLinks
//   - KEYLINK_LOG_LEVEL overrides log.level
//
// # Decorators
//
// Config.Registry turns the decorator tables into a *decorator.Registry.
// Automatic decorators need exactly one of pattern (a Go regexp) or lua (a
// sandboxed chunk reading the global url).
//
// # Live Reload
//
// Watch calls back after the file is written, renamed into place or
// recreated. Bursts of events are coalesced.
package config
