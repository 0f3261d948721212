package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// AssertStatus verifies the HTTP status code
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}

// ParseJSON decodes the response body into the target
func ParseJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer resp.Body.Close()

	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("Failed to decode JSON: %v. Body: %s", err, string(body))
	}
}

// AssertDetail verifies a {"detail": ...} acknowledgement body
func AssertDetail(t *testing.T, resp *http.Response, expected string) {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	ParseJSON(t, resp, &body)
	if body.Detail != expected {
		t.Errorf("Expected detail %q, got %q", expected, body.Detail)
	}
}
