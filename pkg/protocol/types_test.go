package protocol

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSuccessResponseRoundTrip(t *testing.T) {
	original := map[string]interface{}{
		"ok":    true,
		"count": float64(3),
		"items": []interface{}{"a", "b", nil},
		"nested": map[string]interface{}{
			"price": 1.5,
		},
	}

	resp := NewResponse(json.RawMessage("42"), original)

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}

	var decoded struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Result  interface{}     `json:"result"`
		Error   *Error          `json:"error"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if decoded.JSONRPC != "2.0" {
		t.Errorf("expected jsonrpc '2.0', got %q", decoded.JSONRPC)
	}
	if string(decoded.ID) != "42" {
		t.Errorf("expected id 42, got %s", decoded.ID)
	}
	if decoded.Error != nil {
		t.Errorf("success response should carry no error, got %+v", decoded.Error)
	}
	if !reflect.DeepEqual(decoded.Result, original) {
		t.Errorf("result not preserved: got %#v, want %#v", decoded.Result, original)
	}
}

func TestErrorResponseOmitsResult(t *testing.T) {
	resp := NewErrorResponse(json.RawMessage("1"), CodeMethodNotFound, "Method not found: nope")

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if _, present := decoded["result"]; present {
		t.Error("error response must not carry a result field")
	}

	errObj, ok := decoded["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %#v", decoded["error"])
	}
	if errObj["code"] != float64(CodeMethodNotFound) {
		t.Errorf("expected code %d, got %v", CodeMethodNotFound, errObj["code"])
	}
	if errObj["message"] != "Method not found: nope" {
		t.Errorf("unexpected message %v", errObj["message"])
	}
}

func TestSuccessResponseOmitsError(t *testing.T) {
	data, err := json.Marshal(NewResponse(json.RawMessage("7"), "done"))
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if _, present := decoded["error"]; present {
		t.Error("success response must not carry an error field")
	}
	if decoded["result"] != "done" {
		t.Errorf("expected result 'done', got %v", decoded["result"])
	}
}

func TestNilIDSerializesAsNull(t *testing.T) {
	data, err := json.Marshal(NewErrorResponse(nil, CodeParseError, "Parse error: bad input"))
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	id, present := decoded["id"]
	if !present {
		t.Fatal("id field must always be present on responses")
	}
	if id != nil {
		t.Errorf("expected id null, got %v", id)
	}
}

func TestNotificationDetection(t *testing.T) {
	cases := []struct {
		name         string
		line         string
		notification bool
	}{
		{"absent id", `{"jsonrpc":"2.0","method":"notifications/initialized"}`, true},
		{"null id", `{"jsonrpc":"2.0","id":null,"method":"ping"}`, false},
		{"numeric id", `{"jsonrpc":"2.0","id":1,"method":"ping"}`, false},
		{"string id", `{"jsonrpc":"2.0","id":"abc","method":"ping"}`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req Request
			if err := json.Unmarshal([]byte(tc.line), &req); err != nil {
				t.Fatalf("unmarshal request: %v", err)
			}
			if req.IsNotification() != tc.notification {
				t.Errorf("IsNotification() = %v, want %v", req.IsNotification(), tc.notification)
			}
		})
	}
}
