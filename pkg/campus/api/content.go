package api

import (
	"net/http"

	"github.com/tendant/campus-content/pkg/campus"
)

func (h *Handler) listPrograms(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, programResource, "Failed to fetch programs", h.repo.ListPrograms)
}

func (h *Handler) listFeaturedPrograms(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, programResource, "Failed to fetch featured programs", h.repo.ListFeaturedPrograms)
}

func (h *Handler) getProgram(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, programResource, h.repo.GetProgram)
}

func (h *Handler) createProgram(w http.ResponseWriter, r *http.Request) {
	serveCreate(h, w, r, programResource, infallible(campus.CreateProgramRequest.Program), h.repo.CreateProgram)
}

func (h *Handler) updateProgram(w http.ResponseWriter, r *http.Request) {
	serveUpdate(h, w, r, programResource, h.repo.UpdateProgram)
}

func (h *Handler) deleteProgram(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, programResource, h.repo.DeleteProgram)
}

func (h *Handler) listNews(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, newsResource, "Failed to fetch news", h.repo.ListNews)
}

func (h *Handler) listFeaturedNews(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, newsResource, "Failed to fetch featured news", h.repo.ListFeaturedNews)
}

func (h *Handler) getNews(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, newsResource, h.repo.GetNews)
}

func (h *Handler) createNews(w http.ResponseWriter, r *http.Request) {
	serveCreate(h, w, r, newsResource, infallible(campus.CreateNewsRequest.News), h.repo.CreateNews)
}

func (h *Handler) updateNews(w http.ResponseWriter, r *http.Request) {
	serveUpdate(h, w, r, newsResource, h.repo.UpdateNews)
}

func (h *Handler) deleteNews(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, newsResource, h.repo.DeleteNews)
}
