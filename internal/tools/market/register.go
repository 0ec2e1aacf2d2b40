package market

import (
	"context"
	"encoding/json"

	"github.com/proxybase/proxybase-mcp/internal/proxybase"
	"github.com/proxybase/proxybase-mcp/internal/tools"
)

type RegisterAgentTool struct {
	client *proxybase.Client
}

func NewRegisterAgentTool(client *proxybase.Client) *RegisterAgentTool {
	return &RegisterAgentTool{client: client}
}

func (t *RegisterAgentTool) Name() string {
	return "register_agent"
}

func (t *RegisterAgentTool) Description() string {
	return "Register a new AI agent with ProxyBase and receive an API key. This is the first step — you need an API key to use all other tools. The API key should be saved and reused for subsequent requests."
}

func (t *RegisterAgentTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {},
		"required": []
	}`)
}

func (t *RegisterAgentTool) Annotations() map[string]bool {
	return tools.NonIdempotentWriteAnnotations()
}

func (t *RegisterAgentTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	return t.client.RegisterAgent(ctx)
}
