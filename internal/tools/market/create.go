package market

import (
	"context"
	"encoding/json"

	"github.com/proxybase/proxybase-mcp/internal/proxybase"
	"github.com/proxybase/proxybase-mcp/internal/tools"
)

type CreateOrderTool struct {
	client *proxybase.Client
}

func NewCreateOrderTool(client *proxybase.Client) *CreateOrderTool {
	return &CreateOrderTool{client: client}
}

func (t *CreateOrderTool) Name() string {
	return "create_order"
}

func (t *CreateOrderTool) Description() string {
	return "Create a new proxy order. This generates a cryptocurrency payment invoice. Once payment is confirmed via the blockchain, your SOCKS5 proxy credentials will be provisioned automatically. Poll check_order_status to monitor payment and get credentials."
}

func (t *CreateOrderTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"api_key": {
				"type": "string",
				"description": "Your ProxyBase API key (starts with pk_)"
			},
			"package_id": {
				"type": "string",
				"description": "The package ID to purchase (e.g., 'us_residential_1gb')"
			},
			"pay_currency": {
				"type": "string",
				"description": "Cryptocurrency to pay with. Use list_currencies to get valid values. Defaults to 'usdttrc20'."
			},
			"callback_url": {
				"type": "string",
				"description": "Optional webhook URL to receive status notifications (payment confirmed, bandwidth 80%/95%, exhausted)"
			}
		},
		"required": ["api_key", "package_id"]
	}`)
}

func (t *CreateOrderTool) Annotations() map[string]bool {
	return tools.NonIdempotentWriteAnnotations()
}

func (t *CreateOrderTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	parsed := decodeArgs(args)

	apiKey, err := requireString(parsed, "api_key")
	if err != nil {
		return nil, err
	}
	packageID, err := requireString(parsed, "package_id")
	if err != nil {
		return nil, err
	}

	payCurrency := optionalString(parsed, "pay_currency")
	if payCurrency != "" {
		if err := validatePayCurrency(ctx, t.client, apiKey, payCurrency); err != nil {
			return nil, err
		}
	}

	callbackURL := optionalString(parsed, "callback_url")

	return t.client.CreateOrder(ctx, apiKey, packageID, payCurrency, callbackURL)
}
