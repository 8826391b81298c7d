// Package app assembles the dependency graph for the CLI: key file store,
// key-generation service, and cipher service.
package app
