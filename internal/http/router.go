package http

import (
	"net/http"

	"authd/internal/auth"
	"authd/internal/config"
	"authd/internal/http/handler"
	mw "authd/internal/http/middleware"
	"authd/internal/mail"
	"authd/internal/user"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, store user.Store, tokens *auth.ResetTokens, mailer mail.Mailer) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger)
	r.Use(chimw.Recoverer)

	r.Use(mw.CORS(cfg.ClientURL))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{
		Store:     store,
		Tokens:    tokens,
		Mailer:    mailer,
		ClientURL: cfg.ClientURL,
	}
	r.Post("/signup", ah.Signup)
	r.Post("/login", ah.Login)
	r.Post("/forgot-password", ah.ForgotPassword)
	r.Post("/reset-password/{token}", ah.ResetPassword)

	return r
}
