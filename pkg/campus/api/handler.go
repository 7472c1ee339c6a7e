// Package api exposes the campus repository as a JSON REST API.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tendant/campus-content/pkg/campus"
	"github.com/tendant/campus-content/pkg/campus/auth"
	"github.com/tendant/campus-content/pkg/campus/media"
)

const (
	defaultMaxBodyBytes  = 1 << 20
	defaultMaxMediaBytes = 5 << 20
)

// Handler serves every content route under one router.
type Handler struct {
	repo          campus.Repository
	authn         auth.Authenticator
	limiter       *auth.LoginLimiter
	tokens        *auth.TokenIssuer
	media         media.Store
	requireAuth   bool
	maxBodyBytes  int64
	maxMediaBytes int64
}

// Option configures a Handler.
type Option func(*Handler)

// WithAuthenticator sets the login credential check. Without one every
// login fails.
func WithAuthenticator(a auth.Authenticator) Option {
	return func(h *Handler) {
		h.authn = a
	}
}

func WithLoginLimiter(l *auth.LoginLimiter) Option {
	return func(h *Handler) {
		if l != nil {
			h.limiter = l
		}
	}
}

// WithTokenIssuer makes login return a signed token.
func WithTokenIssuer(t *auth.TokenIssuer) Option {
	return func(h *Handler) {
		h.tokens = t
	}
}

// WithRequireAuth rejects content writes without a valid bearer token.
// Contact submissions and login stay open.
func WithRequireAuth(enabled bool) Option {
	return func(h *Handler) {
		h.requireAuth = enabled
	}
}

// WithMediaStore enables the /media upload routes.
func WithMediaStore(s media.Store) Option {
	return func(h *Handler) {
		h.media = s
	}
}

// WithMaxBodyBytes limits JSON request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// WithMaxMediaBytes limits a single upload.
func WithMaxMediaBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxMediaBytes = n
		}
	}
}

// NewHandler creates a handler backed by repo.
func NewHandler(repo campus.Repository, opts ...Option) *Handler {
	h := &Handler{
		repo:          repo,
		limiter:       auth.NewLoginLimiter(0, 0),
		maxBodyBytes:  defaultMaxBodyBytes,
		maxMediaBytes: defaultMaxMediaBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the API router. Mount it under /api.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	guard := h.writeGuard()

	r.Route("/programs", func(r chi.Router) {
		r.Get("/", h.listPrograms)
		r.Get("/featured", h.listFeaturedPrograms)
		r.Get("/{id}", h.getProgram)
		r.With(guard).Post("/", h.createProgram)
		r.With(guard).Put("/{id}", h.updateProgram)
		r.With(guard).Delete("/{id}", h.deleteProgram)
	})

	r.Route("/news", func(r chi.Router) {
		r.Get("/", h.listNews)
		r.Get("/featured", h.listFeaturedNews)
		r.Get("/{id}", h.getNews)
		r.With(guard).Post("/", h.createNews)
		r.With(guard).Put("/{id}", h.updateNews)
		r.With(guard).Delete("/{id}", h.deleteNews)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.listEvents)
		r.Get("/featured", h.listFeaturedEvents)
		r.Get("/upcoming", h.listUpcomingEvents)
		r.Get("/{id}", h.getEvent)
		r.With(guard).Post("/", h.createEvent)
	})

	r.Route("/management", func(r chi.Router) {
		r.Get("/", h.listManagement)
		r.Get("/{id}", h.getManagementMember)
		r.With(guard).Post("/", h.createManagementMember)
	})

	r.Route("/contacts", func(r chi.Router) {
		r.With(guard).Get("/", h.listContacts)
		r.With(guard).Get("/{id}", h.getContact)
		r.Post("/", h.createContact)
	})

	r.Route("/settings", func(r chi.Router) {
		r.Get("/{key}", h.getSetting)
		r.With(guard).Post("/", h.setSetting)
		r.With(guard).Put("/{key}", h.setSetting)
	})

	r.Route("/testimonials", func(r chi.Router) {
		r.Get("/", h.listTestimonials)
		r.Get("/featured", h.listFeaturedTestimonials)
		r.Get("/{id}", h.getTestimonial)
		r.With(guard).Post("/", h.createTestimonial)
	})

	r.Route("/achievements", func(r chi.Router) {
		r.Get("/", h.listAchievements)
		r.Get("/featured", h.listFeaturedAchievements)
		r.Get("/{id}", h.getAchievement)
		r.With(guard).Post("/", h.createAchievement)
	})

	r.Route("/facilities", func(r chi.Router) {
		r.Get("/", h.listFacilities)
		r.Get("/featured", h.listFeaturedFacilities)
		r.Get("/{id}", h.getFacility)
		r.With(guard).Post("/", h.createFacility)
	})

	r.Route("/alumni", func(r chi.Router) {
		r.Get("/", h.listAlumni)
		r.Get("/featured", h.listFeaturedAlumni)
		r.Get("/{id}", h.getAlumnus)
		r.With(guard).Post("/", h.createAlumnus)
	})

	r.Route("/institutional-data", func(r chi.Router) {
		r.Get("/", h.listInstitutionalData)
		r.Get("/category/{category}", h.listInstitutionalDataByCategory)
		r.Get("/{id}", h.getInstitutionalData)
		r.With(guard).Post("/", h.createInstitutionalData)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
	})

	if h.media != nil {
		r.Route("/media", func(r chi.Router) {
			r.With(guard).Post("/", h.uploadMedia)
			r.Get("/*", h.getMedia)
			r.With(guard).Delete("/*", h.deleteMedia)
		})
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, r, http.StatusNotFound, "Not found")
	})

	return r
}

// Ready reports whether the repository is reachable.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Ping(r.Context()); err != nil {
		logError(r, "Repository not ready", err)
		writeMessage(w, r, http.StatusServiceUnavailable, "Repository unavailable")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
