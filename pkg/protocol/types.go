// Package protocol defines the JSON-RPC 2.0 envelope and MCP content types
// exchanged over the stdio transport.
package protocol

import "encoding/json"

const Version = "2.0"

// Reserved JSON-RPC error codes used by this server.
const (
	CodeParseError     = -32700
	CodeMethodNotFound = -32601
)

// Request is an incoming JSON-RPC request. ID and Params are kept raw: a
// request with no id member is a notification, which is distinct from an
// explicit "id":null, and params may be any JSON value.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// IsNotification reports whether the request carried no id member.
func (r *Request) IsNotification() bool {
	return r.ID == nil
}

// Response is an outgoing JSON-RPC response. Exactly one of Result/Error is
// set; build responses through NewResponse or NewErrorResponse so the
// exclusivity holds by construction.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NullID is the identifier echoed when no id could be extracted from the
// wire, per the JSON-RPC parse-error rules.
var NullID = json.RawMessage("null")

func NewResponse(id json.RawMessage, result interface{}) *Response {
	if id == nil {
		id = NullID
	}
	return &Response{
		JSONRPC: Version,
		ID:      id,
		Result:  result,
	}
}

func NewErrorResponse(id json.RawMessage, code int, message string) *Response {
	if id == nil {
		id = NullID
	}
	return &Response{
		JSONRPC: Version,
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	}
}

// Tool is a catalog entry advertised through tools/list.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
	Annotations map[string]bool `json:"annotations,omitempty"`
}

// TextContent is the single content-block shape this server emits.
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func NewTextContent(text string) TextContent {
	return TextContent{Type: "text", Text: text}
}

type InitializeResult struct {
	ProtocolVersion string      `json:"protocolVersion"`
	Capabilities    interface{} `json:"capabilities"`
	ServerInfo      ServerInfo  `json:"serverInfo"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type ListToolsResult struct {
	Tools []Tool `json:"tools"`
}

// CallToolResult wraps a tool outcome. Tool failures set IsError and carry
// the message as text; they are still delivered inside a JSON-RPC success
// envelope so the calling agent receives inspectable content rather than a
// protocol fault.
type CallToolResult struct {
	Content []TextContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}
