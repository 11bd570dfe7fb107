package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"

	"findly/models"
	"findly/services"
)

func TestListGamesPage(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.games.Create(services.GameInput{Name: "The Lost City", Answer: "Atlantis"}); err != nil {
		t.Fatalf("failed to seed game: %v", err)
	}

	resp := env.request(t, http.MethodGet, "/Findly/games")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "The Lost City") {
		t.Fatalf("expected game listing, got %q", body)
	}
}

func TestGetGamePage(t *testing.T) {
	env := newTestEnv(t)
	game, err := env.games.Create(services.GameInput{Name: "Capital quiz", Description: "Name the capital", Answer: "Paris"})
	if err != nil {
		t.Fatalf("failed to seed game: %v", err)
	}

	t.Run("detail page hides the clue button", func(t *testing.T) {
		resp := env.request(t, http.MethodGet, fmt.Sprintf("/Findly/games/%d", game.ID))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		body := readBody(t, resp)
		if !strings.Contains(body, "Capital quiz") {
			t.Fatalf("expected game detail page, got %q", body)
		}
		if strings.Contains(body, "Reveal clue") {
			t.Fatalf("clue button shown before any correct answer")
		}
		if strings.Contains(body, "Paris") {
			t.Fatalf("answer leaked into the page: %q", body)
		}
	})

	t.Run("missing game", func(t *testing.T) {
		resp := env.request(t, http.MethodGet, "/Findly/games/9999")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
		if body := readBody(t, resp); !strings.Contains(body, "Game not found") {
			t.Fatalf("expected not-found message, got %q", body)
		}
	})
}

func TestSubmitAnswer(t *testing.T) {
	env := newTestEnv(t)
	game, err := env.games.Create(services.GameInput{Name: "Capital quiz", Answer: "Paris"})
	if err != nil {
		t.Fatalf("failed to seed game: %v", err)
	}
	path := fmt.Sprintf("/Findly/games/%d/answer", game.ID)

	t.Run("correct answer reveals the clue button", func(t *testing.T) {
		resp := env.postForm(t, path, "name=paris")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		body := readBody(t, resp)
		if !strings.Contains(body, "Correct Answer!") {
			t.Fatalf("expected success message, got %q", body)
		}
		if !strings.Contains(body, "Reveal clue") {
			t.Fatalf("expected clue button after correct answer")
		}
	})

	t.Run("wrong answer keeps the clue button hidden", func(t *testing.T) {
		resp := env.postForm(t, path, "name=London")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		body := readBody(t, resp)
		if !strings.Contains(body, "Incorrect Answer! Try again...") {
			t.Fatalf("expected failure message, got %q", body)
		}
		if strings.Contains(body, "Reveal clue") {
			t.Fatalf("clue button shown for a wrong answer")
		}
	})

	t.Run("resubmission after failure is allowed", func(t *testing.T) {
		resp := env.postForm(t, path, "name=Paris")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if body := readBody(t, resp); !strings.Contains(body, "Correct Answer!") {
			t.Fatalf("expected retry to succeed, got %q", body)
		}
	})

	t.Run("missing game", func(t *testing.T) {
		resp := env.postForm(t, "/Findly/games/9999/answer", "name=Paris")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
		resp.Body.Close()
	})
}

func TestGameCRUDJSON(t *testing.T) {
	env := newTestEnv(t)

	t.Run("create", func(t *testing.T) {
		resp := env.postJSON(t, "/Findly/games", `{"name":"Riddle run","type":"riddle","desc":"Twisty","diff":"hard","answer":"echo"}`)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}
		body := readBody(t, resp)
		if !strings.Contains(body, `"name":"Riddle run"`) {
			t.Fatalf("expected created game JSON, got %q", body)
		}
		if strings.Contains(body, "echo") {
			t.Fatalf("answer leaked into create response: %q", body)
		}
	})

	t.Run("update missing", func(t *testing.T) {
		resp := env.putForm(t, "/Findly/games/9999", "name=ghost")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
		resp.Body.Close()
	})

	t.Run("delete", func(t *testing.T) {
		game, err := env.games.Create(services.GameInput{Name: "Doomed", Answer: "x"})
		if err != nil {
			t.Fatalf("failed to seed game: %v", err)
		}
		resp := env.request(t, http.MethodDelete, fmt.Sprintf("/Findly/games/%d", game.ID))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		resp.Body.Close()
	})
}

func TestGameCluesEndpoint(t *testing.T) {
	env := newTestEnv(t)
	game, err := env.games.Create(services.GameInput{Name: "Hunt", Answer: "x"})
	if err != nil {
		t.Fatalf("failed to seed game: %v", err)
	}

	clues := services.NewClueService(env.db)
	links := services.NewLinkService(env.db)
	clue, err := clues.Create(services.ClueInput{Text: "Check the lighthouse", Hint: 1})
	if err != nil {
		t.Fatalf("failed to seed clue: %v", err)
	}
	if err := links.CreateGameClue(&models.GameClue{GameID: game.ID, ClueID: clue.ID, Order: 1}); err != nil {
		t.Fatalf("failed to link clue: %v", err)
	}

	resp := env.request(t, http.MethodGet, fmt.Sprintf("/Findly/games/%d/clues", game.ID))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "Check the lighthouse") {
		t.Fatalf("expected clue text, got %q", body)
	}
}

func TestUploadGameCover(t *testing.T) {
	env := newTestEnv(t)
	game, err := env.games.Create(services.GameInput{Name: "Harbor Heist", Answer: "anchor"})
	if err != nil {
		t.Fatalf("failed to seed game: %v", err)
	}
	// With R2 unconfigured, uploads land on local disk under ./uploads.
	t.Cleanup(func() { os.RemoveAll("uploads") })

	resp := env.postMultipart(t, fmt.Sprintf("/Findly/games/%d/cover", game.ID), "cover", "cover.png", []byte("not-a-real-png"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, `"cover_url":"/uploads/covers/games/`) {
		t.Fatalf("expected local cover URL, got %q", body)
	}

	got, err := env.games.GetByID(game.ID)
	if err != nil || got == nil {
		t.Fatalf("failed to reload game: %v", err)
	}
	if !strings.HasPrefix(got.CoverURL, "/uploads/covers/games/") {
		t.Fatalf("cover URL not stored on game: %q", got.CoverURL)
	}
	if _, err := os.Stat(strings.TrimPrefix(got.CoverURL, "/")); err != nil {
		t.Fatalf("uploaded file not written to disk: %v", err)
	}

	t.Run("missing game", func(t *testing.T) {
		resp := env.postMultipart(t, "/Findly/games/9999/cover", "cover", "cover.png", []byte("x"))
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
		resp.Body.Close()
	})

	t.Run("missing file", func(t *testing.T) {
		resp := env.postForm(t, fmt.Sprintf("/Findly/games/%d/cover", game.ID), "name=nope")
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
		if body := readBody(t, resp); !strings.Contains(body, "cover is required") {
			t.Fatalf("expected missing-file error, got %q", body)
		}
	})
}
