package api

import (
	"net/http"

	"github.com/tendant/campus-content/pkg/campus"
)

func (h *Handler) listAchievements(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, achievementResource, "Failed to fetch achievements", h.repo.ListAchievements)
}

func (h *Handler) listFeaturedAchievements(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, achievementResource, "Failed to fetch featured achievements", h.repo.ListFeaturedAchievements)
}

func (h *Handler) getAchievement(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, achievementResource, h.repo.GetAchievement)
}

func (h *Handler) createAchievement(w http.ResponseWriter, r *http.Request) {
	serveCreate(h, w, r, achievementResource, infallible(campus.CreateAchievementRequest.Achievement), h.repo.CreateAchievement)
}

func (h *Handler) listFacilities(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, facilityResource, "Failed to fetch facilities", h.repo.ListFacilities)
}

func (h *Handler) listFeaturedFacilities(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, facilityResource, "Failed to fetch featured facilities", h.repo.ListFeaturedFacilities)
}

func (h *Handler) getFacility(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, facilityResource, h.repo.GetFacility)
}

func (h *Handler) createFacility(w http.ResponseWriter, r *http.Request) {
	serveCreate(h, w, r, facilityResource, infallible(campus.CreateFacilityRequest.Facility), h.repo.CreateFacility)
}
