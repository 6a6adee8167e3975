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

// NewListTasksHandler derives the displayed view: status/category
// filters, case-insensitive search and a stable sort, applied to a
// snapshot of the collection. The summary counts always cover the
// unfiltered collection.
func NewListTasksHandler(_ *slog.Logger, tasks *core.TaskStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var vq core.ViewQuery

		if v := q.Get("status"); v != "" && v != core.FilterAll {
			st, ok := rest.ParseStatus(v)
			if !ok {
				res.Error(w, "invalid status", http.StatusBadRequest)
				return
			}
			vq.Status = string(st)
		}

		if v := q.Get("category"); v != "" && v != core.FilterAll {
			c, ok := rest.ParseCategory(v)
			if !ok {
				res.Error(w, "invalid category", http.StatusBadRequest)
				return
			}
			vq.Category = string(c)
		}

		vq.Search = q.Get("q")
		vq.Sort = core.SortKey(q.Get("sort"))

		all := tasks.Tasks()
		res.Json(w, map[string]any{
			"tasks":   core.Derive(all, vq),
			"summary": core.Summarize(all),
		}, http.StatusOK)
	}
}

func NewCreateTaskHandler(_ *slog.Logger, tasks *core.TaskStore, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CreateTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		errs := map[string]string{}
		if msg := rest.ValidateTitle(in.Title); msg != "" {
			errs["title"] = msg
		}
		if msg := rest.ValidateDescription(in.Description); msg != "" {
			errs["description"] = msg
		}
		if msg := rest.ValidateAttachment(in.Attachment); msg != "" {
			errs["attachment"] = msg
		}

		input := core.TaskInput{
			Title:       in.Title,
			Description: in.Description,
		}
		if in.Status != "" {
			st, ok := rest.ParseStatus(in.Status)
			if !ok {
				errs["status"] = "invalid status"
			}
			input.Status = st
		}
		if in.Category != "" {
			c, ok := rest.ParseCategory(in.Category)
			if !ok {
				errs["category"] = "invalid category"
			}
			input.Category = c
		}
		if len(errs) > 0 {
			res.Fields(w, errs, http.StatusUnprocessableEntity)
			return
		}
		if in.Attachment != nil {
			input.Attachment = &core.Attachment{
				Name:       in.Attachment.Name,
				MimeType:   in.Attachment.MimeType,
				InlineData: in.Attachment.InlineData,
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		res.Json(w, tasks.Add(ctx, input), http.StatusCreated)
	}
}

func NewGetTaskHandler(_ *slog.Logger, tasks *core.TaskStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := tasks.Get(r.PathValue("id"))
		if !ok {
			rest.WriteErr(w, core.ErrNotFound)
			return
		}
		res.Json(w, t, http.StatusOK)
	}
}

// NewPatchTaskHandler applies a partial update. A missing id is a
// silent no-op by store contract, so the response is 204 either way.
func NewPatchTaskHandler(_ *slog.Logger, tasks *core.TaskStore, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.PatchTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		errs := map[string]string{}
		var p core.TaskPatch

		if in.Title != nil {
			if msg := rest.ValidateTitle(*in.Title); msg != "" {
				errs["title"] = msg
			}
			p.Title = in.Title
		}
		if in.Description != nil {
			if msg := rest.ValidateDescription(*in.Description); msg != "" {
				errs["description"] = msg
			}
			p.Description = in.Description
		}
		if in.Status != nil {
			st, ok := rest.ParseStatus(*in.Status)
			if !ok {
				errs["status"] = "invalid status"
			}
			p.Status = &st
		}
		if in.Category != nil {
			c, ok := rest.ParseCategory(*in.Category)
			if !ok {
				errs["category"] = "invalid category"
			}
			p.Category = &c
		}
		if in.RemoveAttachment {
			p.RemoveAttachment = true
		} else if in.Attachment != nil {
			if msg := rest.ValidateAttachment(in.Attachment); msg != "" {
				errs["attachment"] = msg
			}
			p.Attachment = &core.Attachment{
				Name:       in.Attachment.Name,
				MimeType:   in.Attachment.MimeType,
				InlineData: in.Attachment.InlineData,
			}
		}
		if len(errs) > 0 {
			res.Fields(w, errs, http.StatusUnprocessableEntity)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		tasks.Update(ctx, r.PathValue("id"), p)
		w.WriteHeader(http.StatusNoContent)
	}
}

func NewDeleteTaskHandler(_ *slog.Logger, tasks *core.TaskStore, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		tasks.Delete(ctx, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func NewToggleTaskHandler(_ *slog.Logger, tasks *core.TaskStore, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		tasks.Toggle(ctx, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	}
}
