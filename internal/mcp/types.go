package mcp

import (
	"encoding/json"

	"github.com/proxybase/proxybase-mcp/pkg/protocol"
)

type Request = protocol.Request
type Response = protocol.Response

// initializeParams is the subset of the initialize request this server
// inspects. The protocol version offered by the client is logged but not
// negotiated; the server always answers with its own fixed version.
type initializeParams struct {
	ProtocolVersion string `json:"protocolVersion"`
	ClientInfo      struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"clientInfo"`
}

// callToolParams carries the tool name and raw arguments from tools/call.
type callToolParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}
