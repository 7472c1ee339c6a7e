package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/tendant/campus-content/pkg/campus"
)

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, contactResource, "Failed to fetch contacts", h.repo.ListContacts)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, contactResource, h.repo.GetContact)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	serveCreate(h, w, r, contactResource, infallible(campus.CreateContactRequest.Contact), h.repo.CreateContact)
}

func (h *Handler) getSetting(w http.ResponseWriter, r *http.Request) {
	setting, err := h.repo.GetSetting(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		fail(w, r, err, settingResource, "Failed to fetch setting")
		return
	}
	writeJSON(w, r, http.StatusOK, setting)
}

// settingValue is the body of PUT /settings/{key}.
type settingValue struct {
	Value *string `json:"value" validate:"required"`
}

// setSetting upserts a setting. POST /settings carries key and value in the
// body; PUT /settings/{key} takes the key from the path.
func (h *Handler) setSetting(w http.ResponseWriter, r *http.Request) {
	const failMsg = "Failed to update setting"

	var req campus.SetSettingRequest
	if key := strings.TrimSpace(chi.URLParam(r, "key")); key != "" {
		var body settingValue
		if err := h.decode(w, r, &body); err != nil {
			fail(w, r, err, settingResource, failMsg)
			return
		}
		req = campus.SetSettingRequest{Key: &key, Value: body.Value}
	} else if err := h.decode(w, r, &req); err != nil {
		fail(w, r, err, settingResource, failMsg)
		return
	}

	setting, err := h.repo.SetSetting(r.Context(), *req.Key, *req.Value)
	if err != nil {
		fail(w, r, err, settingResource, failMsg)
		return
	}
	writeJSON(w, r, http.StatusOK, setting)
}

func (h *Handler) listInstitutionalData(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, institutionalData, "Failed to fetch institutional data", h.repo.ListInstitutionalData)
}

func (h *Handler) listInstitutionalDataByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	items, err := h.repo.ListInstitutionalDataByCategory(r.Context(), category)
	if err != nil {
		fail(w, r, err, institutionalData, "Failed to fetch institutional data by category")
		return
	}
	writeJSON(w, r, http.StatusOK, items)
}

func (h *Handler) getInstitutionalData(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, institutionalData, h.repo.GetInstitutionalData)
}

func (h *Handler) createInstitutionalData(w http.ResponseWriter, r *http.Request) {
	serveCreate(h, w, r, institutionalData, infallible(campus.CreateInstitutionalDataRequest.InstitutionalData), h.repo.CreateInstitutionalData)
}
