package market

import (
	"encoding/json"
	"fmt"
)

// decodeArgs unpacks the raw arguments object. Anything that is not a JSON
// object decodes to an empty map so validation reports missing keys instead
// of a decode failure.
func decodeArgs(raw json.RawMessage) map[string]interface{} {
	args := map[string]interface{}{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return map[string]interface{}{}
		}
	}
	return args
}

// requireString fetches a mandatory string argument. A key that is present
// with a non-string value fails the same way as an absent key.
func requireString(args map[string]interface{}, key string) (string, error) {
	value, ok := args[key].(string)
	if !ok {
		return "", fmt.Errorf("Missing required argument: %s", key)
	}
	return value, nil
}

// optionalString fetches an optional string argument, returning "" when the
// key is absent or not a string.
func optionalString(args map[string]interface{}, key string) string {
	value, _ := args[key].(string)
	return value
}
