package api

import (
	"net/http"

	"github.com/tendant/campus-content/pkg/campus"
)

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, eventResource, "Failed to fetch events", h.repo.ListEvents)
}

func (h *Handler) listFeaturedEvents(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, eventResource, "Failed to fetch featured events", h.repo.ListFeaturedEvents)
}

func (h *Handler) listUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, eventResource, "Failed to fetch upcoming events", h.repo.ListUpcomingEvents)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, eventResource, h.repo.GetEvent)
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	build := func(req *campus.CreateEventRequest) (*campus.Event, error) {
		return req.Event()
	}
	serveCreate(h, w, r, eventResource, build, h.repo.CreateEvent)
}
