package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vaujx/BAAC/internal/dto"

	"github.com/gofiber/fiber/v2"
)

type fakeOAuthService struct {
	state    string
	handled  bool
	response *dto.LoginResponse
}

func (f *fakeOAuthService) GetLoginURL(provider string) (string, string, error) {
	return "https://accounts.google.com/o/oauth2/auth?state=" + f.state, f.state, nil
}

func (f *fakeOAuthService) HandleCallback(_ context.Context, provider, code string) (*dto.LoginResponse, error) {
	f.handled = true
	return f.response, nil
}

func newOAuthTestApp(svc *fakeOAuthService) *fiber.App {
	app := fiber.New()
	NewOAuthController(svc).RegisterRoutes(app)
	return app
}

func loginCookies(t *testing.T, app *fiber.App) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest("GET", "/oauth/google/login", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("login status = %d, want %d", resp.StatusCode, fiber.StatusFound)
	}
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("login set no session cookie")
	}
	return cookies
}

func TestOAuthCallbackRejectsWrongState(t *testing.T) {
	svc := &fakeOAuthService{state: "good-state"}
	app := newOAuthTestApp(svc)
	cookies := loginCookies(t, app)

	req := httptest.NewRequest("GET", "/oauth/google/callback?code=abc&state=forged", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if svc.handled {
		t.Error("HandleCallback ran despite a state mismatch")
	}
}

func TestOAuthCallbackRejectsMissingSession(t *testing.T) {
	svc := &fakeOAuthService{state: "good-state"}
	app := newOAuthTestApp(svc)

	req := httptest.NewRequest("GET", "/oauth/google/callback?code=abc&state=good-state", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if svc.handled {
		t.Error("HandleCallback ran without a pending state")
	}
}

func TestOAuthCallbackAcceptsMatchingState(t *testing.T) {
	svc := &fakeOAuthService{
		state:    "good-state",
		response: &dto.LoginResponse{Token: "signed-token"},
	}
	app := newOAuthTestApp(svc)
	cookies := loginCookies(t, app)

	req := httptest.NewRequest("GET", "/oauth/google/callback?code=abc&state=good-state", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want 307", resp.StatusCode)
	}
	if !svc.handled {
		t.Error("HandleCallback never ran")
	}
	if loc := resp.Header.Get("Location"); !strings.Contains(loc, "token=signed-token") {
		t.Errorf("Location = %q, want token in redirect", loc)
	}
}

func TestOAuthStateIsSingleUse(t *testing.T) {
	svc := &fakeOAuthService{
		state:    "good-state",
		response: &dto.LoginResponse{Token: "signed-token"},
	}
	app := newOAuthTestApp(svc)
	cookies := loginCookies(t, app)

	first := httptest.NewRequest("GET", "/oauth/google/callback?code=abc&state=good-state", nil)
	for _, c := range cookies {
		first.AddCookie(c)
	}
	resp, err := app.Test(first, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusTemporaryRedirect {
		t.Fatalf("first callback status = %d, want 307", resp.StatusCode)
	}

	replay := httptest.NewRequest("GET", "/oauth/google/callback?code=abc&state=good-state", nil)
	for _, c := range cookies {
		replay.AddCookie(c)
	}
	resp, err = app.Test(replay, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("replayed callback status = %d, want 400", resp.StatusCode)
	}
}
