// Package version carries the server identity advertised during the MCP
// initialize handshake.
package version

const (
	// Version is the server build version.
	Version = "0.1.0"

	// ServerName identifies this server to MCP clients.
	ServerName = "proxybase-mcp"

	// ProtocolVersion is the MCP protocol revision this server speaks.
	ProtocolVersion = "2024-11-05"
)
