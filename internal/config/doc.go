// Package config provides configuration loading, merging, and validation
// facilities for the dashboard client and the development backend.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the dashboard and
// [GetServerConfig] for the development backend.
package config
