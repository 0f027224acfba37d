package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"LostAndFound/internal/config"
	"LostAndFound/internal/middleware"
	"LostAndFound/internal/model"
	"LostAndFound/internal/service"
)

// ItemHandler serves the lost-item CRUD endpoints.
type ItemHandler struct {
	Registry *service.RegistryService
	Logger   *zap.SugaredLogger
	Config   *config.Config
}

func NewItemHandler(registry *service.RegistryService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{Registry: registry, Logger: logger, Config: cfg}
}

// dateOnly is the wire format of expiration_date.
const dateOnly = "2006-01-02"

// ItemDTO is the wire representation of an item. Dates travel as ISO text.
type ItemDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	FoundLocation   string `json:"found_location"`
	StorageLocation string `json:"storage_location"`
	FoundDate       string `json:"found_date"`
	ExpirationDate  string `json:"expiration_date"`
	Status          string `json:"status"`
	ImageURL        string `json:"image_url,omitempty"`
	Description     string `json:"description,omitempty"`
}

func toDTO(it model.Item) ItemDTO {
	return ItemDTO{
		ID:              it.ID,
		Name:            it.Name,
		FoundLocation:   it.FoundLocation,
		StorageLocation: it.StorageLocation,
		FoundDate:       it.FoundDate.UTC().Format(time.RFC3339),
		ExpirationDate:  it.ExpirationDate.UTC().Format(dateOnly),
		Status:          it.Status,
		ImageURL:        it.ImageURL,
		Description:     it.Description,
	}
}

// List returns all items, most recently found first. Public.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Registry.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		http.Error(w, "failed to fetch items", http.StatusInternalServerError)
		return
	}

	dtos := make([]ItemDTO, 0, len(items))
	for _, it := range items {
		dtos = append(dtos, toDTO(it))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Create registers a new item from a multipart form with an optional image.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())

	maxBody := int64(h.Config.BlobMaxSizeMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("Create: invalid multipart form", "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	item := model.Item{
		Name:            r.FormValue("name"),
		FoundLocation:   r.FormValue("found_location"),
		StorageLocation: r.FormValue("storage_location"),
		Status:          r.FormValue("status"),
		Description:     r.FormValue("description"),
	}

	if v := r.FormValue("found_date"); v != "" {
		t, err := parseFoundDate(v)
		if err != nil {
			http.Error(w, "invalid found_date", http.StatusBadRequest)
			return
		}
		item.FoundDate = t
	}
	if v := r.FormValue("expiration_date"); v != "" {
		t, err := parseExpirationDate(v)
		if err != nil {
			http.Error(w, "invalid expiration_date", http.StatusBadRequest)
			return
		}
		item.ExpirationDate = t
	}

	var image *service.ImageUpload
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		image = &service.ImageUpload{FileName: header.Filename, Data: file}
	}

	id, err := h.Registry.Create(r.Context(), uid, item, image)
	switch {
	case errors.Is(err, service.ErrAuthRequired):
		http.Error(w, "login required", http.StatusUnauthorized)
		return
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.Logger.Errorw("Create: service error", "user_id", uid, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus changes the status of one item. Admin only.
func (h *ItemHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	err := h.Registry.UpdateStatus(r.Context(), uid, id, req.Status)
	switch {
	case errors.Is(err, service.ErrAuthRequired):
		http.Error(w, "login required", http.StatusUnauthorized)
		return
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, service.ErrUpdate):
		// unknown ids and storage failures surface the same to the caller
		http.Error(w, "failed to update status", http.StatusNotFound)
		return
	case err != nil:
		h.Logger.Errorw("UpdateStatus: service error", "item_id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes one item and, best effort, its image. Admin only.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	err := h.Registry.Delete(r.Context(), uid, id)
	switch {
	case errors.Is(err, service.ErrAuthRequired):
		http.Error(w, "login required", http.StatusUnauthorized)
		return
	case errors.Is(err, service.ErrFetch):
		http.Error(w, "item not found", http.StatusNotFound)
		return
	case err != nil:
		h.Logger.Errorw("Delete: service error", "item_id", id, "error", err)
		http.Error(w, "failed to delete item", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseFoundDate accepts RFC 3339 or the datetime-local form format.
func parseFoundDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", v)
}

// parseExpirationDate accepts a plain date or RFC 3339.
func parseExpirationDate(v string) (time.Time, error) {
	if t, err := time.Parse(dateOnly, v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}
