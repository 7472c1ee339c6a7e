package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/tendant/campus-content/pkg/campus"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  []campus.FieldError `json:"errors,omitempty"`
}

// MessageResponse acknowledges a delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// resource names an entity kind in client-facing messages.
type resource struct {
	singular string // "news article"
	plural   string // "news"
	title    string // "News article"
}

var (
	programResource     = resource{"program", "programs", "Program"}
	newsResource        = resource{"news article", "news", "News article"}
	eventResource       = resource{"event", "events", "Event"}
	managementResource  = resource{"management member", "management team", "Management member"}
	contactResource     = resource{"contact", "contacts", "Contact"}
	settingResource     = resource{"setting", "settings", "Setting"}
	testimonialResource = resource{"testimonial", "testimonials", "Testimonial"}
	achievementResource = resource{"achievement", "achievements", "Achievement"}
	facilityResource    = resource{"facility", "facilities", "Facility"}
	alumniResource      = resource{"alumnus", "alumni", "Alumnus"}
	institutionalData   = resource{"institutional data", "institutional data", "Institutional data"}
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func writeMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, ErrorResponse{Message: msg})
}

func logError(r *http.Request, msg string, err error) {
	slog.Error(msg,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err)
}

// fail translates err into a response. Validation and not-found outcomes
// are client errors and are not logged; anything else is a 500 carrying
// failMsg while the cause is logged.
func fail(w http.ResponseWriter, r *http.Request, err error, res resource, failMsg string) {
	var verr *campus.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, r, http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + res.singular + " data",
			Errors:  verr.Fields,
		})
	case errors.Is(err, campus.ErrNotFound), errors.Is(err, campus.ErrInvalidID):
		writeMessage(w, r, http.StatusNotFound, res.title+" not found")
	default:
		logError(r, failMsg, err)
		writeMessage(w, r, http.StatusInternalServerError, failMsg)
	}
}

// idParam parses the {id} route parameter. Anything that is not a positive
// integer cannot name a record.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, campus.ErrInvalidID
	}
	return id, nil
}
