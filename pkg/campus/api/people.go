package api

import (
	"net/http"

	"github.com/tendant/campus-content/pkg/campus"
)

func (h *Handler) listManagement(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, managementResource, "Failed to fetch management team", h.repo.ListManagement)
}

func (h *Handler) getManagementMember(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, managementResource, h.repo.GetManagementMember)
}

func (h *Handler) createManagementMember(w http.ResponseWriter, r *http.Request) {
	serveCreate(h, w, r, managementResource, infallible(campus.CreateManagementRequest.Member), h.repo.CreateManagementMember)
}

func (h *Handler) listTestimonials(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, testimonialResource, "Failed to fetch testimonials", h.repo.ListTestimonials)
}

func (h *Handler) listFeaturedTestimonials(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, testimonialResource, "Failed to fetch featured testimonials", h.repo.ListFeaturedTestimonials)
}

func (h *Handler) getTestimonial(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, testimonialResource, h.repo.GetTestimonial)
}

func (h *Handler) createTestimonial(w http.ResponseWriter, r *http.Request) {
	serveCreate(h, w, r, testimonialResource, infallible(campus.CreateTestimonialRequest.Testimonial), h.repo.CreateTestimonial)
}

func (h *Handler) listAlumni(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, alumniResource, "Failed to fetch alumni", h.repo.ListAlumni)
}

func (h *Handler) listFeaturedAlumni(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, alumniResource, "Failed to fetch featured alumni", h.repo.ListFeaturedAlumni)
}

func (h *Handler) getAlumnus(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, alumniResource, h.repo.GetAlumnus)
}

func (h *Handler) createAlumnus(w http.ResponseWriter, r *http.Request) {
	serveCreate(h, w, r, alumniResource, infallible(campus.CreateAlumnusRequest.Alumnus), h.repo.CreateAlumnus)
}
