package integration

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Vaujx/BAAC/internal/bootstrap"
	"github.com/Vaujx/BAAC/internal/config"
	"github.com/Vaujx/BAAC/internal/dto"
	"github.com/Vaujx/BAAC/internal/server"
	"github.com/Vaujx/BAAC/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestChatFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	if os.Getenv("DB_CONNECTION_STRING") == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	cfg := config.Load()
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	sendPrompt := func(prompt string, cookies []*http.Cookie) (*http.Response, dto.GetResponseResponse) {
		body, _ := json.Marshal(dto.GetResponseRequest{Prompt: prompt})
		req := httptest.NewRequest("POST", "/get_response", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		for _, c := range cookies {
			req.AddCookie(c)
		}

		resp, err := app.Test(req, -1)
		assert.NoError(t, err)

		var result dto.GetResponseResponse
		json.NewDecoder(resp.Body).Decode(&result)
		return resp, result
	}

	t.Run("Knowledge query answers without the model", func(t *testing.T) {
		resp, result := sendPrompt("Tell me about the history of Amungan", nil)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Contains(t, result.Response, "<h4>History</h4>")
	})

	t.Run("Unknown reference resolves to not found", func(t *testing.T) {
		resp, result := sendPrompt("What is the status of reference REF-99999999", nil)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Contains(t, result.Response, "could not find")
	})

	t.Run("Admin routes locked before the probe", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin_stats", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Admin probe unlocks the dashboard", func(t *testing.T) {
		key, pass := container.Settings.AdminCredentials()
		if key == "" || pass == "" {
			t.Skip("Skipping: admin credentials not configured")
		}

		resp, result := sendPrompt(key+" "+pass, nil)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "ADMIN_AUTHENTICATED", result.Response)

		cookies := resp.Cookies()
		assert.NotEmpty(t, cookies)

		req := httptest.NewRequest("GET", "/admin_stats", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		statsResp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 200, statsResp.StatusCode)

		var stats dto.AdminStatsResponse
		json.NewDecoder(statsResp.Body).Decode(&stats)
		assert.GreaterOrEqual(t, stats.TodayVisits, 0)
	})

	t.Run("Empty prompt rejected", func(t *testing.T) {
		resp, _ := sendPrompt("   ", nil)
		assert.Equal(t, 400, resp.StatusCode)
	})
}
