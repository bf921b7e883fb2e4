// Package config provides configuration loading, merging, and resolution
// facilities for the server and the client CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-empty fields):
//  1. Environment variables
//  2. JSON config file (path taken from CONFIG or -c / -config)
//  3. Command-line flags
//
// Raw values are merged first and resolved afterwards, so defaults are only
// applied to values that no source provided. The main entry points are
// [GetServerConfig], [ResolveServer] and [GetClientConfig].
package config
