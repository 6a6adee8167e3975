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

func NewGetThemeHandler(_ *slog.Logger, themes *core.ThemeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res.Json(w, map[string]any{"theme": themes.Theme()}, http.StatusOK)
	}
}

func NewSetThemeHandler(_ *slog.Logger, themes *core.ThemeStore, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.ThemeIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := themes.Set(ctx, core.Theme(in.Theme)); err != nil {
			res.Error(w, "invalid theme", http.StatusBadRequest)
			return
		}
		res.Json(w, map[string]any{"theme": themes.Theme()}, http.StatusOK)
	}
}

func NewToggleThemeHandler(_ *slog.Logger, themes *core.ThemeStore, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		res.Json(w, map[string]any{"theme": themes.Toggle(ctx)}, http.StatusOK)
	}
}
