package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/startupcomply/comply/internal/store"
)

const testSecretKey = "test-secret-key"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := store.OpenSQLite(filepath.Join(t.TempDir(), "comply.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	RegisterRoutes(app, NewHandler(store.NewKV(database), testSecretKey, false))
	return app
}

func jsonRequest(t *testing.T, method string, target string, payload any, cookie string) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}
	return request
}

func doJSON(t *testing.T, app *fiber.App, request *http.Request, wantStatus int) map[string]any {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if response.StatusCode != wantStatus {
		t.Fatalf("%s %s = %d, want %d (body %s)", request.Method, request.URL.Path, response.StatusCode, wantStatus, raw)
	}

	decoded := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode response body %q: %v", raw, err)
		}
	}
	return decoded
}

// signupTestUser registers a fresh account and returns the session cookie
// from the response.
func signupTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/signup", map[string]any{
		"email":     email,
		"password":  "StrongPass1",
		"firstName": "Jane",
		"lastName":  "Doe",
	}, "")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("signup request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected signup status 201, got %d", response.StatusCode)
	}
	return extractAuthCookie(t, response)
}

func extractAuthCookie(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatalf("expected a %s cookie in the response", authCookieName)
	return ""
}

func responseList(t *testing.T, body map[string]any, field string) []any {
	t.Helper()

	list, ok := body[field].([]any)
	if !ok {
		t.Fatalf("expected %q to be a list, got %T", field, body[field])
	}
	return list
}

func assertErrorMessage(t *testing.T, body map[string]any, want string) {
	t.Helper()

	message, _ := body["error"].(string)
	if !strings.Contains(message, want) {
		t.Fatalf("expected error %q, got %q", want, message)
	}
}
