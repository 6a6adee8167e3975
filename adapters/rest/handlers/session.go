package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/vickylk-dev/task-manager-tool/adapters/rest"
	"github.com/vickylk-dev/task-manager-tool/core"
	"github.com/vickylk-dev/task-manager-tool/pkg/res"
)

// Login and signup share one handler body: both fabricate a local
// identity from the submitted email after passing form validation.
func newCredentialsHandler(whenValid func(ctx context.Context, in rest.CredentialsIn) core.Identity, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CredentialsIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if errs := rest.ValidateCredentials(in); len(errs) > 0 {
			res.Fields(w, errs, http.StatusUnprocessableEntity)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		res.Json(w, whenValid(ctx, in), http.StatusOK)
	}
}

func NewLoginHandler(_ *slog.Logger, sessions *core.SessionStore, timeout time.Duration) http.HandlerFunc {
	return newCredentialsHandler(func(ctx context.Context, in rest.CredentialsIn) core.Identity {
		return sessions.Login(ctx, in.Email, in.Password)
	}, timeout)
}

func NewSignupHandler(_ *slog.Logger, sessions *core.SessionStore, timeout time.Duration) http.HandlerFunc {
	return newCredentialsHandler(func(ctx context.Context, in rest.CredentialsIn) core.Identity {
		return sessions.Signup(ctx, in.Email, in.Password)
	}, timeout)
}

func NewCurrentSessionHandler(_ *slog.Logger, sessions *core.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessions.Current()
		if !ok {
			res.Error(w, "not authenticated", http.StatusUnauthorized)
			return
		}
		res.Json(w, id, http.StatusOK)
	}
}

func NewLogoutHandler(_ *slog.Logger, sessions *core.SessionStore, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		sessions.Logout(ctx)
		w.WriteHeader(http.StatusNoContent)
	}
}
