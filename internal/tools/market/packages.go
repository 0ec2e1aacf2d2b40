package market

import (
	"context"
	"encoding/json"

	"github.com/proxybase/proxybase-mcp/internal/proxybase"
	"github.com/proxybase/proxybase-mcp/internal/tools"
)

type ListPackagesTool struct {
	client *proxybase.Client
}

func NewListPackagesTool(client *proxybase.Client) *ListPackagesTool {
	return &ListPackagesTool{client: client}
}

func (t *ListPackagesTool) Name() string {
	return "list_packages"
}

func (t *ListPackagesTool) Description() string {
	return "List all available proxy bandwidth packages with pricing. Each package includes a bandwidth allocation (in bytes), price (in USD), proxy type, and target country."
}

func (t *ListPackagesTool) Schema() json.RawMessage {
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

func (t *ListPackagesTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *ListPackagesTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	apiKey, err := requireString(decodeArgs(args), "api_key")
	if err != nil {
		return nil, err
	}
	return t.client.ListPackages(ctx, apiKey)
}
