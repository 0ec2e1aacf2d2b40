package market

import (
	"context"
	"encoding/json"

	"github.com/proxybase/proxybase-mcp/internal/proxybase"
	"github.com/proxybase/proxybase-mcp/internal/tools"
)

type CheckOrderStatusTool struct {
	client *proxybase.Client
}

func NewCheckOrderStatusTool(client *proxybase.Client) *CheckOrderStatusTool {
	return &CheckOrderStatusTool{client: client}
}

func (t *CheckOrderStatusTool) Name() string {
	return "check_order_status"
}

func (t *CheckOrderStatusTool) Description() string {
	return "Check the current status of an order. Returns payment status, bandwidth usage, and SOCKS5 proxy credentials (host:port:username:password) once the proxy is active. Statuses: payment_pending → confirming → paid → proxy_active → bandwidth_exhausted."
}

func (t *CheckOrderStatusTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"api_key": {
				"type": "string",
				"description": "Your ProxyBase API key (starts with pk_)"
			},
			"order_id": {
				"type": "string",
				"description": "The order ID returned from create_order"
			}
		},
		"required": ["api_key", "order_id"]
	}`)
}

func (t *CheckOrderStatusTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *CheckOrderStatusTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	parsed := decodeArgs(args)

	apiKey, err := requireString(parsed, "api_key")
	if err != nil {
		return nil, err
	}
	orderID, err := requireString(parsed, "order_id")
	if err != nil {
		return nil, err
	}

	return t.client.CheckOrderStatus(ctx, apiKey, orderID)
}
