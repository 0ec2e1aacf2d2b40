package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/proxybase/proxybase-mcp/internal/logger"
	"github.com/proxybase/proxybase-mcp/internal/tools"
	"github.com/proxybase/proxybase-mcp/pkg/protocol"
	"github.com/proxybase/proxybase-mcp/pkg/version"
)

// Handler dispatches decoded JSON-RPC requests by method name. It keeps no
// state between calls beyond remembering the client identity from the
// initialize handshake, which is only used for logging.
type Handler struct {
	registry    *tools.Registry
	log         zerolog.Logger
	initialized bool
	clientName  string
}

func NewHandler(registry *tools.Registry) *Handler {
	return &Handler{
		registry: registry,
		log:      logger.ForComponent("mcp"),
	}
}

func (h *Handler) Handle(ctx context.Context, req *Request) *Response {
	switch req.Method {
	case "initialize":
		return protocol.NewResponse(req.ID, h.handleInitialize(req))
	case "ping":
		return protocol.NewResponse(req.ID, map[string]interface{}{})
	case "tools/list":
		return protocol.NewResponse(req.ID, h.handleListTools())
	case "tools/call":
		return protocol.NewResponse(req.ID, h.handleCallTool(ctx, req))
	case "notifications/initialized", "notifications/cancelled":
		h.handleNotification(req)
		return protocol.NewResponse(req.ID, json.RawMessage("null"))
	default:
		return protocol.NewErrorResponse(req.ID, protocol.CodeMethodNotFound,
			fmt.Sprintf("Method not found: %s", req.Method))
	}
}

func (h *Handler) handleInitialize(req *Request) *protocol.InitializeResult {
	var params initializeParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err == nil && params.ClientInfo.Name != "" {
			h.clientName = params.ClientInfo.Name
			h.log.Info().
				Str("client", params.ClientInfo.Name).
				Str("client_version", params.ClientInfo.Version).
				Str("offered_protocol", params.ProtocolVersion).
				Msg("client connected")
		}
	}

	return &protocol.InitializeResult{
		ProtocolVersion: version.ProtocolVersion,
		Capabilities: map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		ServerInfo: protocol.ServerInfo{
			Name:    version.ServerName,
			Version: version.Version,
		},
	}
}

func (h *Handler) handleListTools() *protocol.ListToolsResult {
	catalog := h.registry.List()
	advertised := make([]protocol.Tool, len(catalog))

	for i, t := range catalog {
		entry := protocol.Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.Schema(),
		}
		if annotated, ok := t.(tools.AnnotatedTool); ok {
			entry.Annotations = annotated.Annotations()
		}
		advertised[i] = entry
	}

	return &protocol.ListToolsResult{Tools: advertised}
}

// handleCallTool executes a tool and folds the outcome into a CallToolResult.
// Tool failures (missing arguments, invalid currency, backend errors, unknown
// tool names) become flagged error content inside a JSON-RPC success
// envelope; only malformed wire input or unknown methods produce JSON-RPC
// errors.
func (h *Handler) handleCallTool(ctx context.Context, req *Request) *protocol.CallToolResult {
	var call callToolParams
	if len(req.Params) > 0 {
		_ = json.Unmarshal(req.Params, &call)
	}

	// Arguments that are absent or not an object collapse to an empty
	// object, so per-tool validation reports missing keys instead.
	args := json.RawMessage("{}")
	if len(call.Arguments) > 0 {
		var probe map[string]interface{}
		if err := json.Unmarshal(call.Arguments, &probe); err == nil {
			args = call.Arguments
		}
	}

	result, err := h.registry.Execute(ctx, call.Name, args)
	if err != nil {
		h.log.Debug().Str("tool", call.Name).Str("error", err.Error()).Msg("tool call failed")
		return &protocol.CallToolResult{
			Content: []protocol.TextContent{protocol.NewTextContent(err.Error())},
			IsError: true,
		}
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		pretty = nil
	}

	return &protocol.CallToolResult{
		Content: []protocol.TextContent{protocol.NewTextContent(string(pretty))},
	}
}

func (h *Handler) handleNotification(req *Request) {
	if req.Method == "notifications/initialized" {
		h.initialized = true
	}
}
