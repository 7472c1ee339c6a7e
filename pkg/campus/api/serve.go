package api

import (
	"context"
	"net/http"
)

func serveList[T any](w http.ResponseWriter, r *http.Request, res resource, failMsg string, fetch func(context.Context) ([]*T, error)) {
	items, err := fetch(r.Context())
	if err != nil {
		fail(w, r, err, res, failMsg)
		return
	}
	writeJSON(w, r, http.StatusOK, items)
}

func serveGet[T any](w http.ResponseWriter, r *http.Request, res resource, fetch func(context.Context, int64) (*T, error)) {
	id, err := idParam(r)
	if err != nil {
		fail(w, r, err, res, "Failed to fetch "+res.singular)
		return
	}
	item, err := fetch(r.Context(), id)
	if err != nil {
		fail(w, r, err, res, "Failed to fetch "+res.singular)
		return
	}
	writeJSON(w, r, http.StatusOK, item)
}

// serveCreate decodes a Req, converts it with build and stores the result.
func serveCreate[Req any, T any](h *Handler, w http.ResponseWriter, r *http.Request, res resource, build func(*Req) (*T, error), store func(context.Context, *T) (*T, error)) {
	failMsg := "Failed to create " + res.singular

	var req Req
	if err := h.decode(w, r, &req); err != nil {
		fail(w, r, err, res, failMsg)
		return
	}
	item, err := build(&req)
	if err != nil {
		fail(w, r, err, res, failMsg)
		return
	}
	created, err := store(r.Context(), item)
	if err != nil {
		fail(w, r, err, res, failMsg)
		return
	}
	writeJSON(w, r, http.StatusCreated, created)
}

func serveUpdate[P any, T any](h *Handler, w http.ResponseWriter, r *http.Request, res resource, update func(context.Context, int64, P) (*T, error)) {
	failMsg := "Failed to update " + res.singular

	id, err := idParam(r)
	if err != nil {
		fail(w, r, err, res, failMsg)
		return
	}
	var patch P
	if err := h.decode(w, r, &patch); err != nil {
		fail(w, r, err, res, failMsg)
		return
	}
	updated, err := update(r.Context(), id, patch)
	if err != nil {
		fail(w, r, err, res, failMsg)
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

func serveDelete(w http.ResponseWriter, r *http.Request, res resource, remove func(context.Context, int64) (bool, error)) {
	failMsg := "Failed to delete " + res.singular

	id, err := idParam(r)
	if err != nil {
		fail(w, r, err, res, failMsg)
		return
	}
	deleted, err := remove(r.Context(), id)
	if err != nil {
		fail(w, r, err, res, failMsg)
		return
	}
	if !deleted {
		writeMessage(w, r, http.StatusNotFound, res.title+" not found")
		return
	}
	writeJSON(w, r, http.StatusOK, MessageResponse{Message: res.title + " deleted successfully"})
}

// infallible adapts a conversion that cannot fail for serveCreate.
func infallible[Req any, T any](fn func(Req) *T) func(*Req) (*T, error) {
	return func(req *Req) (*T, error) {
		return fn(*req), nil
	}
}
