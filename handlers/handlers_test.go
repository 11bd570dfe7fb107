package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"findly/middleware"
	"findly/services"
	"findly/testhelpers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"gorm.io/gorm"
)

type testEnv struct {
	app          *fiber.App
	db           *gorm.DB
	users        *services.UserService
	games        *services.GameService
	achievements *services.AchievementService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testhelpers.SetupTestDB(t)
	engine := html.New("../views", ".html")
	app := fiber.New(fiber.Config{Views: engine})

	store := middleware.NewSessionStore()
	users := services.NewUserService(db)
	games := services.NewGameService(db)
	achievements := services.NewAchievementService(db)
	treasures := services.NewTreasureService(db)
	clues := services.NewClueService(db)
	links := services.NewLinkService(db)
	leaderboard := services.NewLeaderboardService(db)

	findly := app.Group("/Findly", middleware.UserLoader(store))
	SetupPageRoutes(findly)
	SetupUserRoutes(findly, store, users, achievements)
	SetupGameRoutes(findly, games, clues)
	SetupAchievementRoutes(findly, achievements)
	SetupTreasureRoutes(findly, treasures, clues)
	SetupLinkRoutes(findly, links)
	SetupLeaderboardRoutes(findly, leaderboard)
	app.Use(NotFoundHandler)

	return &testEnv{app: app, db: db, users: users, games: games, achievements: achievements}
}

func (e *testEnv) postForm(t *testing.T, path, form string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := e.app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func (e *testEnv) putForm(t *testing.T, path, form string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := e.app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func (e *testEnv) request(t *testing.T, method, path string) *http.Response {
	t.Helper()
	resp, err := e.app.Test(httptest.NewRequest(method, path, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func (e *testEnv) postMultipart(t *testing.T, path, field, filename string, content []byte) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("failed to build multipart body: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to build multipart body: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to build multipart body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := e.app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func (e *testEnv) postJSON(t *testing.T, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func int64ptr(v int64) *int64 { return &v }

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return string(body)
}

func TestUnknownRouteRenders404Page(t *testing.T) {
	env := newTestEnv(t)
	resp := env.request(t, http.MethodGet, "/Findly/nowhere")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "Page not found") {
		t.Fatalf("expected rendered 404 page, got %q", body)
	}
}

func TestStaticPagesRender(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/Findly", "/Findly/aboutus", "/Findly/signup", "/Findly/login", "/Findly/privacy", "/Findly/terms"} {
		resp := env.request(t, http.MethodGet, path)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, resp.StatusCode)
		}
		resp.Body.Close()
	}
}
