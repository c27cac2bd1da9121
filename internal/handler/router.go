package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookmarkd/bookmarkd-go/internal/middleware"
)

// RouterConfig collects everything the HTTP surface needs. All wiring is
// explicit; there is no registry or container behind it.
type RouterConfig struct {
	Auth      *AuthHandler
	Users     *UserHandler
	Bookmarks *BookmarkHandler

	JWTSecret  string
	UserLoader middleware.UserLoader

	// AuthRPS/AuthBurst configure the per-IP limiter on the signup and
	// signin routes. Zero disables rate limiting (tests).
	AuthRPS   float64
	AuthBurst int
}

// NewRouter builds the chi router: open auth routes behind the rate limiter,
// everything else behind the session guard.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		if cfg.AuthRPS > 0 {
			r.Use(middleware.RateLimit(cfg.AuthRPS, cfg.AuthBurst))
		}
		r.Post("/auth/signup", cfg.Auth.HandleSignup)
		r.Post("/auth/signin", cfg.Auth.HandleSignin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionGuard(cfg.JWTSecret, cfg.UserLoader))

		r.Get("/users/me", cfg.Users.HandleGetMe)
		r.Patch("/users", cfg.Users.HandleEditUser)

		r.Get("/bookmarks", cfg.Bookmarks.HandleList)
		r.Post("/bookmarks", cfg.Bookmarks.HandleCreate)
		r.Get("/bookmarks/{id}", cfg.Bookmarks.HandleGetByID)
		r.Patch("/bookmarks/{id}", cfg.Bookmarks.HandleEdit)
		r.Delete("/bookmarks/{id}", cfg.Bookmarks.HandleDelete)
	})

	return r
}
