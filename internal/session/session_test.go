package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func TestResolveMintsCookie(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		return c.SendString(Resolve(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/", nil))
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	defer resp.Body.Close()

	cookie := findCookie(t, resp)
	if _, err := uuid.Parse(cookie.Value); err != nil {
		t.Errorf("cookie value %q is not a UUID: %v", cookie.Value, err)
	}
	if cookie.Path != "/" {
		t.Errorf("cookie path=%q want /", cookie.Path)
	}
	if want := int(TTL.Seconds()); cookie.MaxAge != want {
		t.Errorf("cookie max-age=%d want %d", cookie.MaxAge, want)
	}
}

func TestResolveReusesExistingToken(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		return c.SendString(Resolve(c))
	})

	token := uuid.NewString()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	defer resp.Body.Close()

	if len(resp.Cookies()) != 0 {
		t.Errorf("expected no Set-Cookie on reuse, got %v", resp.Cookies())
	}

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	if got := string(body[:n]); got != token {
		t.Errorf("resolved token=%q want %q", got, token)
	}
}

func TestResolveReplacesForgedToken(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		return c.SendString(Resolve(c))
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "abc"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	defer resp.Body.Close()

	cookie := findCookie(t, resp)
	if _, err := uuid.Parse(cookie.Value); err != nil {
		t.Errorf("replacement cookie %q is not a UUID: %v", cookie.Value, err)
	}
	if cookie.Value == "abc" {
		t.Error("forged token was reused")
	}
}

func TestRequire(t *testing.T) {
	app := fiber.New()
	app.Get("/", Require(), func(c *fiber.Ctx) error {
		return c.SendString(FromCtx(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("no cookie: status=%d want 401", resp.StatusCode)
	}

	// A forged non-UUID cookie counts as absent.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "abc"})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("forged cookie: status=%d want 401", resp.StatusCode)
	}

	token := uuid.NewString()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("with cookie: status=%d want 200", resp.StatusCode)
	}

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	if got := string(body[:n]); got != token {
		t.Errorf("FromCtx=%q want %q", got, token)
	}
}

func findCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", CookieName)
	return nil
}
