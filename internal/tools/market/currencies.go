package market

import (
	"context"
	"encoding/json"

	"github.com/proxybase/proxybase-mcp/internal/proxybase"
	"github.com/proxybase/proxybase-mcp/internal/tools"
)

type ListCurrenciesTool struct {
	client *proxybase.Client
}

func NewListCurrenciesTool(client *proxybase.Client) *ListCurrenciesTool {
	return &ListCurrenciesTool{client: client}
}

func (t *ListCurrenciesTool) Name() string {
	return "list_currencies"
}

func (t *ListCurrenciesTool) Description() string {
	return "List all available payment currencies (cryptocurrencies) that can be used for the pay_currency field when creating an order or topping up. These are the coins enabled on the payment provider's merchant account. You MUST call this before creating an order to know which pay_currency values are valid."
}

func (t *ListCurrenciesTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"api_key": {
				"type": "string",
				"description": "Your ProxyBase API key (starts with pk_)"
			}
		},
		"required": ["api_key"]
	}`)
}

func (t *ListCurrenciesTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *ListCurrenciesTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	apiKey, err := requireString(decodeArgs(args), "api_key")
	if err != nil {
		return nil, err
	}
	return t.client.ListCurrencies(ctx, apiKey)
}
