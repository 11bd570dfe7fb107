package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"findly/services"
)

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	t.Run("first signup redirects to login", func(t *testing.T) {
		resp := env.postForm(t, "/Findly/users", "name=alice&email=alice@example.com&pass=hunter2")
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("expected 302, got %d", resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/Findly/login" {
			t.Fatalf("expected redirect to /Findly/login, got %q", loc)
		}
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		resp := env.postForm(t, "/Findly/users", "name=alice&email=other@example.com&pass=different")
		if resp.StatusCode != http.StatusConflict {
			t.Fatalf("expected 409, got %d", resp.StatusCode)
		}
		if body := readBody(t, resp); !strings.Contains(body, "Username already exists") {
			t.Fatalf("expected conflict message on signup page, got %q", body)
		}
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.users.Create(services.UserInput{Name: "bob", Email: "bob@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	t.Run("wrong password", func(t *testing.T) {
		resp := env.postForm(t, "/Findly/users/login", "name=bob&pass=wrong")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", resp.StatusCode)
		}
		if body := readBody(t, resp); !strings.Contains(body, "Invalid credentials") {
			t.Fatalf("expected login page with error, got %q", body)
		}
	})

	t.Run("valid credentials populate the session and redirect", func(t *testing.T) {
		resp := env.postForm(t, "/Findly/users/login", "name=bob&pass=s3cret")
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("expected 302, got %d", resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/Findly/games" {
			t.Fatalf("expected redirect to /Findly/games, got %q", loc)
		}
		if resp.Header.Get("Set-Cookie") == "" {
			t.Fatalf("expected a session cookie on successful login")
		}
	})
}

func TestGetUserProfile(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.users.Create(services.UserInput{Name: "carol", Email: "carol@example.com", Password: "pw", Points: int64ptr(50)})
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	seed := []services.AchievementInput{
		{Name: "Mystery prize"},
		{Name: "Getting started", PointsRequired: int64ptr(30)},
		{Name: "Seasoned hunter", PointsRequired: int64ptr(60)},
	}
	for _, in := range seed {
		if _, err := env.achievements.Create(in); err != nil {
			t.Fatalf("failed to seed achievement: %v", err)
		}
	}

	t.Run("profile shows only unlocked achievements", func(t *testing.T) {
		resp := env.request(t, http.MethodGet, fmt.Sprintf("/Findly/users/%d", user.ID))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		body := readBody(t, resp)
		if !strings.Contains(body, "Getting started") {
			t.Fatalf("expected unlocked achievement in profile, got %q", body)
		}
		if strings.Contains(body, "Seasoned hunter") || strings.Contains(body, "Mystery prize") {
			t.Fatalf("locked achievements leaked into profile: %q", body)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		resp := env.request(t, http.MethodGet, "/Findly/users/9999")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
		resp.Body.Close()
	})
}

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.users.Create(services.UserInput{Name: "dave", Password: "pw"}); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	resp := env.request(t, http.MethodGet, "/Findly/users")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := readBody(t, resp)
	if !strings.Contains(body, `"name":"dave"`) {
		t.Fatalf("expected JSON user list, got %q", body)
	}
	if strings.Contains(body, "password") {
		t.Fatalf("password field leaked into JSON: %q", body)
	}
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	alice, err := env.users.Create(services.UserInput{Name: "alice", Email: "alice@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	if _, err := env.users.Create(services.UserInput{Name: "bob", Password: "pw"}); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	t.Run("unchanged name never conflicts with itself", func(t *testing.T) {
		resp := env.putForm(t, fmt.Sprintf("/Findly/users/%d", alice.ID), "name=alice&email=new@example.com")
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("expected 302, got %d", resp.StatusCode)
		}
		want := fmt.Sprintf("/Findly/users/%d", alice.ID)
		if loc := resp.Header.Get("Location"); loc != want {
			t.Fatalf("expected redirect to %q, got %q", want, loc)
		}
		got, _ := env.users.GetByID(alice.ID)
		if got.Email != "new@example.com" {
			t.Fatalf("update not applied: %+v", got)
		}
	})

	t.Run("renaming onto a taken name conflicts", func(t *testing.T) {
		resp := env.putForm(t, fmt.Sprintf("/Findly/users/%d", alice.ID), "name=bob&email=x@example.com")
		if resp.StatusCode != http.StatusConflict {
			t.Fatalf("expected 409, got %d", resp.StatusCode)
		}
		if body := readBody(t, resp); !strings.Contains(body, "Username already exists") {
			t.Fatalf("expected conflict message, got %q", body)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		resp := env.putForm(t, "/Findly/users/9999", "name=ghost")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
		resp.Body.Close()
	})

	// The edit form submits only name/email/pass; gameplay points must
	// survive the write untouched.
	t.Run("profile edit keeps gameplay points", func(t *testing.T) {
		carl, err := env.users.Create(services.UserInput{Name: "carl", Email: "carl@example.com", Password: "pw", Points: int64ptr(50)})
		if err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}

		resp := env.putForm(t, fmt.Sprintf("/Findly/users/%d", carl.ID), "name=carl&email=carl@findly.example&pass=")
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("expected 302, got %d", resp.StatusCode)
		}
		resp.Body.Close()

		got, err := env.users.GetByID(carl.ID)
		if err != nil || got == nil {
			t.Fatalf("failed to reload user: %v", err)
		}
		if got.Points != 50 {
			t.Fatalf("points changed by profile edit: had 50, now %d", got.Points)
		}
		if got.Email != "carl@findly.example" {
			t.Fatalf("update not applied: %+v", got)
		}
	})
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	user, err := env.users.Create(services.UserInput{Name: "erin", Password: "pw"})
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	resp := env.request(t, http.MethodDelete, fmt.Sprintf("/Findly/users/%d", user.ID))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "User deleted successfully") {
		t.Fatalf("expected delete confirmation, got %q", body)
	}

	resp = env.request(t, http.MethodDelete, fmt.Sprintf("/Findly/users/%d", user.ID))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
