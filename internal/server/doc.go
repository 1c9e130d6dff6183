// Package server implements the MCP (Model Context Protocol) server for
// signed distance field tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the distance
// transform of package sdf through the MCP protocol, so that MCP clients can
// turn images into distance fields and query them.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - sdf_compute: Threshold an image, transform it and render the field
//   - sdf_sample: Signed distance and nearest boundary point at given pixels
//   - image_dimensions: Get width and height
//
// Both sdf tools share the thresholding arguments (threshold, invert,
// blur_radius, region) and the precision choice; unset values fall back to
// the server configuration.
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the server process.
// Distance fields are recomputed on every call.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Logging
//
// Diagnostics go to the logger passed to New, never to stdout. Each tool
// call is logged at debug level with its elapsed time.
package server
