package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/vickylk-dev/task-manager-tool/core"
	"github.com/vickylk-dev/task-manager-tool/pkg/res"
)

func Register(mux *http.ServeMux, log *slog.Logger, deps core.Deps, timeout time.Duration) {
	// ping
	mux.Handle("GET /api/ping", NewPingHandler(log, map[string]core.Pinger{"storage": deps.Storage}, timeout))

	// session
	mux.Handle("POST /api/session/login", NewLoginHandler(log, deps.Sessions, timeout))
	mux.Handle("POST /api/session/signup", NewSignupHandler(log, deps.Sessions, timeout))
	mux.Handle("GET /api/session", NewCurrentSessionHandler(log, deps.Sessions))
	mux.Handle("DELETE /api/session", NewLogoutHandler(log, deps.Sessions, timeout))

	// theme
	mux.Handle("GET /api/theme", NewGetThemeHandler(log, deps.Themes))
	mux.Handle("PUT /api/theme", NewSetThemeHandler(log, deps.Themes, timeout))
	mux.Handle("POST /api/theme/toggle", NewToggleThemeHandler(log, deps.Themes, timeout))

	// tasks, behind the session guard
	guard := func(h http.Handler) http.Handler { return RequireSession(deps.Sessions, h) }
	mux.Handle("GET /api/tasks", guard(NewListTasksHandler(log, deps.Tasks)))
	mux.Handle("POST /api/tasks", guard(NewCreateTaskHandler(log, deps.Tasks, timeout)))
	mux.Handle("GET /api/tasks/{id}", guard(NewGetTaskHandler(log, deps.Tasks)))
	mux.Handle("PATCH /api/tasks/{id}", guard(NewPatchTaskHandler(log, deps.Tasks, timeout)))
	mux.Handle("DELETE /api/tasks/{id}", guard(NewDeleteTaskHandler(log, deps.Tasks, timeout)))
	mux.Handle("POST /api/tasks/{id}/toggle", guard(NewToggleTaskHandler(log, deps.Tasks, timeout)))
}

// RequireSession is the route guard: task routes answer 401 until a
// login or signup established an identity.
func RequireSession(sessions *core.SessionStore, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !sessions.IsAuthenticated() {
			res.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
