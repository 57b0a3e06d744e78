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
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vkotelnikov/sympta/internal/db"
	"github.com/vkotelnikov/sympta/internal/knowledge"
	"github.com/vkotelnikov/sympta/internal/services"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "correct-horse-battery"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "sympta-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(Config{
		Database:       database,
		Secret:         "test-secret-key",
		AdminUser:      testAdminUser,
		AdminPassword:  testAdminPassword,
		Base:           knowledge.Default(),
		MatcherOptions: services.DefaultMatcherOptions(),
		Location:       time.UTC,
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func jsonRequest(t *testing.T, method string, path string, payload interface{}) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	return request
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
		"username": testAdminUser,
		"password": testAdminPassword,
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatalf("login response carries no auth cookie")
	return ""
}

func authedRequest(t *testing.T, app *fiber.App, cookie string, method string, path string, payload interface{}) *http.Response {
	t.Helper()

	request := jsonRequest(t, method, path, payload)
	request.Header.Set("Cookie", cookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target interface{}) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func readBodyString(t *testing.T, response *http.Response) string {
	t.Helper()

	defer response.Body.Close()
	content, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(content)
}

func logTestSymptoms(t *testing.T, app *fiber.App, cookie string, inputs []fiber.Map) {
	t.Helper()

	response := authedRequest(t, app, cookie, http.MethodPost, "/api/records", fiber.Map{"symptoms": inputs})
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("log symptoms failed with status %d", response.StatusCode)
	}
}

func requireStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()

	if response.StatusCode != expected {
		body := readBodyString(t, response)
		t.Fatalf("expected status %d, got %d: %s", expected, response.StatusCode, strings.TrimSpace(body))
	}
}
