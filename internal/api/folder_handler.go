package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cardfolio/cardfolio-api/internal/api/shared"
	"github.com/cardfolio/cardfolio-api/internal/service"
)

// FolderHandler handles folder CRUD requests.
type FolderHandler struct {
	folders   *service.FolderService
	validator *validator.Validate
}

// NewFolderHandler creates a new FolderHandler with the given dependencies.
func NewFolderHandler(folders *service.FolderService) *FolderHandler {
	return &FolderHandler{
		folders:   folders,
		validator: validator.New(),
	}
}

// List handles GET /api/folders.
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	folders, err := h.folders.ListFolders(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, folders)
}

// Create handles POST /api/folders.
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateFolderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	folder, err := h.folders.CreateFolder(r.Context(), userID, req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, folder)
}

// Get handles GET /api/folders/{id}.
func (h *FolderHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, folderID, ok := requireUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	folder, err := h.folders.GetFolder(r.Context(), userID, folderID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, folder)
}

// Update handles PUT /api/folders/{id}.
func (h *FolderHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, folderID, ok := requireUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req CreateFolderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	folder, err := h.folders.UpdateFolder(r.Context(), userID, folderID, req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, folder)
}

// Delete handles DELETE /api/folders/{id}.
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, folderID, ok := requireUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.folders.DeleteFolder(r.Context(), userID, folderID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
