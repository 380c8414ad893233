// Package mcp provides an MCP (Model Context Protocol) server adapter
// for refdex. It lets AI assistants look up references, fetch
// citation-prefixed context and resolve overlay directives.
package mcp

import "errors"

// ErrMissingRetrievalService is returned when the retrieval service is not provided.
var ErrMissingRetrievalService = errors.New("mcp: retrieval service is required")
