package market

import (
	"context"
	"encoding/json"

	"github.com/proxybase/proxybase-mcp/internal/proxybase"
	"github.com/proxybase/proxybase-mcp/internal/tools"
)

type TopupOrderTool struct {
	client *proxybase.Client
}

func NewTopupOrderTool(client *proxybase.Client) *TopupOrderTool {
	return &TopupOrderTool{client: client}
}

func (t *TopupOrderTool) Name() string {
	return "topup_order"
}

func (t *TopupOrderTool) Description() string {
	return "Add more bandwidth to an existing order. Creates a new payment invoice for the additional bandwidth. The proxy credentials remain the same — only the bandwidth allowance increases. Can also reactivate an exhausted proxy."
}

func (t *TopupOrderTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"api_key": {
				"type": "string",
				"description": "Your ProxyBase API key (starts with pk_)"
			},
			"order_id": {
				"type": "string",
				"description": "The order ID to top up"
			},
			"package_id": {
				"type": "string",
				"description": "The bandwidth package to add (e.g., 'us_residential_1gb')"
			},
			"pay_currency": {
				"type": "string",
				"description": "Cryptocurrency to pay with. Use list_currencies to get valid values. Defaults to 'usdttrc20'."
			}
		},
		"required": ["api_key", "order_id", "package_id"]
	}`)
}

func (t *TopupOrderTool) Annotations() map[string]bool {
	return tools.NonIdempotentWriteAnnotations()
}

func (t *TopupOrderTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	parsed := decodeArgs(args)

	apiKey, err := requireString(parsed, "api_key")
	if err != nil {
		return nil, err
	}
	orderID, err := requireString(parsed, "order_id")
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

	return t.client.TopupOrder(ctx, apiKey, orderID, packageID, payCurrency)
}
