package api

import (
	"net/http"
	"testing"
)

func TestProtectedRoutesRejectMissingCookie(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	for _, target := range []string{"/api/checklists", "/api/team", "/api/auth/session"} {
		body := doJSON(t, app, jsonRequest(t, http.MethodGet, target, nil, ""), http.StatusUnauthorized)
		assertErrorMessage(t, body, "unauthorized")
	}
}

func TestSignupRequiresCoreFields(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	body := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/auth/signup", map[string]any{
		"email":    "jane@startupcomply.com",
		"password": "StrongPass1",
	}, ""), http.StatusBadRequest)
	assertErrorMessage(t, body, "invalid input")
}

func TestSignupRejectsDuplicateEmailWithConflict(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	signupTestUser(t, app, "jane@startupcomply.com")

	body := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/auth/signup", map[string]any{
		"email":     "jane@startupcomply.com",
		"password":  "AnotherPass1",
		"firstName": "Janet",
		"lastName":  "Doe",
	}, ""), http.StatusConflict)
	assertErrorMessage(t, body, "email already exists")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	signupTestUser(t, app, "jane@startupcomply.com")

	// Unknown email and wrong password produce the same answer.
	for _, payload := range []map[string]any{
		{"email": "nobody@startupcomply.com", "password": "StrongPass1"},
		{"email": "jane@startupcomply.com", "password": "WrongPass1"},
	} {
		body := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/auth/login", payload, ""), http.StatusUnauthorized)
		assertErrorMessage(t, body, "invalid credentials")
	}
}

func TestLoginLogoutRoundTrip(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	signupTestUser(t, app, "jane@startupcomply.com")

	request := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "jane@startupcomply.com",
		"password": "StrongPass1",
	}, "")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}
	cookie := extractAuthCookie(t, response)

	session := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/auth/session", nil, cookie), http.StatusOK)
	if session["isAuthenticated"] != true {
		t.Fatalf("expected an authenticated session, got %v", session["isAuthenticated"])
	}
	user, _ := session["user"].(map[string]any)
	if user == nil || user["email"] != "jane@startupcomply.com" {
		t.Fatalf("expected the logged-in user in the session payload, got %v", session["user"])
	}

	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/auth/logout", nil, cookie), http.StatusOK)
}

func TestSessionCookieWithWrongSignatureIsRejected(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	signupTestUser(t, app, "jane@startupcomply.com")

	forged := authCookieName + "=eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.e30.invalid"
	doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/auth/session", nil, forged), http.StatusUnauthorized)
}

func TestUpdateProfileMergesPatch(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cookie := signupTestUser(t, app, "jane@startupcomply.com")

	body := doJSON(t, app, jsonRequest(t, http.MethodPatch, "/api/profile", map[string]any{
		"jobTitle": "Head of Compliance",
	}, cookie), http.StatusOK)

	user, _ := body["user"].(map[string]any)
	if user == nil || user["jobTitle"] != "Head of Compliance" {
		t.Fatalf("expected the patched job title, got %v", body["user"])
	}
	if user["firstName"] != "Jane" {
		t.Fatalf("unpatched fields must survive, got %v", user["firstName"])
	}
}

func TestFirstSignupCreatesCompany(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cookie := signupTestUser(t, app, "jane@startupcomply.com")

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/company", nil, cookie), http.StatusOK)
	company, _ := body["company"].(map[string]any)
	if company == nil || company["name"] != "My Company" {
		t.Fatalf("expected the seeded company, got %v", body["company"])
	}

	updated := doJSON(t, app, jsonRequest(t, http.MethodPatch, "/api/company", map[string]any{
		"name": "Acme Compliance",
	}, cookie), http.StatusOK)
	company, _ = updated["company"].(map[string]any)
	if company == nil || company["name"] != "Acme Compliance" {
		t.Fatalf("expected the renamed company, got %v", updated["company"])
	}
}
