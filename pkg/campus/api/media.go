package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tendant/campus-content/pkg/campus/media"
)

var mediaResource = resource{"media", "media", "Media"}

// MediaResponse describes an uploaded image.
type MediaResponse struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// uploadMedia stores the multipart field "file". The content type is
// sniffed from the data, not taken from the client.
func (h *Handler) uploadMedia(w http.ResponseWriter, r *http.Request) {
	const failMsg = "Failed to upload media"

	r.Body = http.MaxBytesReader(w, r.Body, h.maxMediaBytes+1<<20)
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		writeMessage(w, r, http.StatusBadRequest, "Invalid upload: expected multipart form with a file field")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, r, http.StatusBadRequest, "Invalid upload: missing file field")
		return
	}
	defer file.Close()

	if header.Size > h.maxMediaBytes {
		writeMessage(w, r, http.StatusRequestEntityTooLarge, "File exceeds the maximum upload size of "+strconv.FormatInt(h.maxMediaBytes, 10)+" bytes")
		return
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		fail(w, r, err, mediaResource, failMsg)
		return
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !media.IsImage(contentType) {
		writeMessage(w, r, http.StatusUnsupportedMediaType, "Only JPEG, PNG, GIF and WebP images are accepted")
		return
	}

	key, err := media.NewKey(contentType)
	if err != nil {
		fail(w, r, err, mediaResource, failMsg)
		return
	}
	if err := h.media.Put(r.Context(), key, contentType, io.MultiReader(bytes.NewReader(head), file)); err != nil {
		fail(w, r, err, mediaResource, failMsg)
		return
	}

	writeJSON(w, r, http.StatusCreated, MediaResponse{
		Key:         key,
		URL:         "/api/media/" + key,
		ContentType: contentType,
		Size:        header.Size,
	})
}

// getMedia streams the object, or redirects when the store serves signed
// URLs itself.
func (h *Handler) getMedia(w http.ResponseWriter, r *http.Request) {
	const failMsg = "Failed to fetch media"

	key := chi.URLParam(r, "*")
	if !media.ValidKey(key) {
		writeMessage(w, r, http.StatusNotFound, "Media not found")
		return
	}

	if linker, ok := h.media.(media.Linker); ok {
		url, err := linker.SignedURL(r.Context(), key)
		if err != nil {
			fail(w, r, err, mediaResource, failMsg)
			return
		}
		http.Redirect(w, r, url, http.StatusFound)
		return
	}

	body, obj, err := h.media.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, media.ErrNotFound) {
			writeMessage(w, r, http.StatusNotFound, "Media not found")
			return
		}
		fail(w, r, err, mediaResource, failMsg)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", obj.ContentType)
	if obj.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		logError(r, "Failed to stream media", err)
	}
}

func (h *Handler) deleteMedia(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if !media.ValidKey(key) {
		writeMessage(w, r, http.StatusNotFound, "Media not found")
		return
	}
	if err := h.media.Delete(r.Context(), key); err != nil {
		if errors.Is(err, media.ErrNotFound) {
			writeMessage(w, r, http.StatusNotFound, "Media not found")
			return
		}
		fail(w, r, err, mediaResource, "Failed to delete media")
		return
	}
	writeJSON(w, r, http.StatusOK, MessageResponse{Message: "Media deleted successfully"})
}
