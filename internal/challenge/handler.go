// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package challenge

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-ctf-backend/internal/config"
	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	sessionCookie = "session"
	defaultUser   = "guest"
	adminUser     = "admin"

	// loginSigningKey signs cookies issued by /login. It is not the key /flag
	// verifies against.
	loginSigningKey = "unknown"
)

const indexPage = `<h2>Welcome to ISEP CTF - Hard Challenge (Web)</h2>
<p>This web app uses an HMAC-signed session cookie. Find the secret key (hidden in the site image metadata), craft a cookie for user <b>admin</b>, then visit <a href="/flag">/flag</a>.</p>
<img src="/static/logo.png" alt="logo">`

// KeySource returns the key /flag verifies sessions against.
type KeySource func() (string, error)

type Handler struct {
	cfg       config.ChallengeConfig
	keySource KeySource

	logger *logger.Logger
}

// NewHandler reads the key from cfg.LogoPath on every /flag request.
func NewHandler(cfg config.ChallengeConfig, logger *logger.Logger) *Handler {
	return NewHandlerWithKeySource(cfg, func() (string, error) { return KeyFromFile(cfg.LogoPath) }, logger)
}

func NewHandlerWithKeySource(cfg config.ChallengeConfig, keySource KeySource, logger *logger.Logger) *Handler {
	return &Handler{cfg: cfg, keySource: keySource, logger: logger}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Get("/", h.index)
	router.Post("/login", h.login)
	router.Get("/flag", h.flag)
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.cfg.StaticDir))))

	return router
}

// Sign returns the hex HMAC-SHA256 of username under key.
func Sign(username, key string) string {
	return utils.HashString(username, key)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}

// login signs whatever username is posted, defaulting to "guest" when the
// field is absent.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeText(w, "Invalid form", http.StatusBadRequest)
		return
	}

	username := defaultUser
	if values, ok := r.PostForm["username"]; ok && len(values) > 0 {
		username = values[0]
	}

	http.SetCookie(w, &http.Cookie{
		Name:  sessionCookie,
		Value: username + "|" + Sign(username, loginSigningKey),
		Path:  "/",
	})
	writeText(w, fmt.Sprintf("Logged in as %s. Use the session cookie to access /flag.", username), http.StatusOK)
}

func (h *Handler) flag(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var session string
	if c, err := r.Cookie(sessionCookie); err == nil {
		session = c.Value
	}

	username, signature, ok := strings.Cut(session, "|")
	if !ok {
		writeText(w, "Invalid session cookie", http.StatusBadRequest)
		return
	}

	key, err := h.keySource()
	if err != nil {
		log.Err(err).Str("logo", h.cfg.LogoPath).Msg("signing key unavailable")
		writeText(w, "Server misconfigured (no key)", http.StatusInternalServerError)
		return
	}

	if utils.EqualHash(Sign(username, key), signature) && username == adminUser {
		log.Info().Msg("flag captured")
		writeText(w, h.cfg.Flag, http.StatusOK)
		return
	}

	log.Debug().Str("username", username).Msg("access denied")
	writeText(w, "Access denied", http.StatusForbidden)
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(h.logger.WithContext(r.Context())))

		h.logger.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Int("size", ww.BytesWritten()).
			Send()
	})
}

func writeText(w http.ResponseWriter, body string, status int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
