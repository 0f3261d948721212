package helpers

import (
	"crypto/rand"
	"math/big"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func randInt(max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}

// GeneratePassword generates a 10 character password with a capital and digit,
// satisfying the account password policy
func GeneratePassword() string {
	const (
		lower   = "abcdefghijklmnopqrstuvwxyz"
		upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numbers = "0123456789"
		all     = lower + upper + numbers
	)

	password := make([]byte, 10)
	password[0] = upper[randInt(len(upper))]
	password[1] = numbers[randInt(len(numbers))]

	for i := 2; i < 10; i++ {
		password[i] = all[randInt(len(all))]
	}

	return string(password)
}

// AcquireToken logs in against a running server and returns the bearer token
func AcquireToken(t *testing.T, baseURL, username, password string) string {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	resp, err := http.Post(baseURL+"/auth/token", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("Login request failed: %v", err)
	}
	AssertStatus(t, resp, http.StatusOK)

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	ParseJSON(t, resp, &body)

	if body.AccessToken == "" {
		t.Fatal("Access token is empty")
	}
	return body.AccessToken
}
