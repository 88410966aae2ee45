//go:build integration
// +build integration

package tests

import (
	"net/http"
	"testing"
)

func TestAPI_Health(t *testing.T) {
	resp, body := makeRequest(t, http.MethodGet, "/health", nil, nil)
	assertStatusCode(t, resp, http.StatusOK)

	var response map[string]interface{}
	parseJSONResponse(t, body, &response)

	message, ok := response["message"].(string)
	if !ok {
		t.Fatal("Expected 'message' field in response")
	}
	if message != "ok" {
		t.Errorf("Expected message 'ok', got '%s'", message)
	}
}
