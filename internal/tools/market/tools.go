// Package market implements the MCP tools that front the ProxyBase
// marketplace API: agent registration, package and currency discovery, order
// lifecycle, and proxy rotation.
package market

import (
	"context"
	"fmt"
	"strings"

	"github.com/proxybase/proxybase-mcp/internal/proxybase"
	"github.com/proxybase/proxybase-mcp/internal/tools"
)

// GetTools assembles the full tool catalog in its advertised order.
func GetTools(client *proxybase.Client) []tools.Tool {
	return []tools.Tool{
		NewRegisterAgentTool(client),
		NewListPackagesTool(client),
		NewListCurrenciesTool(client),
		NewCreateOrderTool(client),
		NewCheckOrderStatusTool(client),
		NewTopupOrderTool(client),
		NewRotateProxyTool(client),
	}
}

// validatePayCurrency checks a caller-supplied pay_currency against the
// currencies the backend currently advertises. This is a second, independent
// round-trip; its own failure propagates as a normal backend error. The check
// and the subsequent order call are not atomic: the upstream API offers no
// way to pin the currency set between them.
func validatePayCurrency(ctx context.Context, client *proxybase.Client, apiKey, currency string) error {
	result, err := client.ListCurrencies(ctx, apiKey)
	if err != nil {
		return err
	}

	body, ok := result.(map[string]interface{})
	if !ok {
		return nil
	}
	listed, ok := body["currencies"].([]interface{})
	if !ok {
		return nil
	}

	valid := make([]string, 0, len(listed))
	for _, entry := range listed {
		if code, ok := entry.(string); ok {
			valid = append(valid, code)
		}
	}

	for _, code := range valid {
		if strings.EqualFold(code, currency) {
			return nil
		}
	}

	return fmt.Errorf("Invalid pay_currency: '%s'. Supported currencies: %s",
		currency, strings.Join(valid, ", "))
}
