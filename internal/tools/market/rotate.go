package market

import (
	"context"
	"encoding/json"

	"github.com/proxybase/proxybase-mcp/internal/proxybase"
	"github.com/proxybase/proxybase-mcp/internal/tools"
)

type RotateProxyTool struct {
	client *proxybase.Client
}

func NewRotateProxyTool(client *proxybase.Client) *RotateProxyTool {
	return &RotateProxyTool{client: client}
}

func (t *RotateProxyTool) Name() string {
	return "rotate_proxy"
}

func (t *RotateProxyTool) Description() string {
	return "Rotate the proxy to get a fresh IP address. This calls the upstream partner's reset endpoint to invalidate the current session and assign a new IP. Only works on orders with proxy_active status. After rotation, your next SOCKS5 connection will use a new IP."
}

func (t *RotateProxyTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"api_key": {
				"type": "string",
				"description": "Your ProxyBase API key (starts with pk_)"
			},
			"order_id": {
				"type": "string",
				"description": "The order ID whose proxy should be rotated"
			}
		},
		"required": ["api_key", "order_id"]
	}`)
}

func (t *RotateProxyTool) Annotations() map[string]bool {
	return tools.NonIdempotentWriteAnnotations()
}

func (t *RotateProxyTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	parsed := decodeArgs(args)

	apiKey, err := requireString(parsed, "api_key")
	if err != nil {
		return nil, err
	}
	orderID, err := requireString(parsed, "order_id")
	if err != nil {
		return nil, err
	}

	return t.client.RotateProxy(ctx, apiKey, orderID)
}
