package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cardfolio/cardfolio-api/internal/api/shared"
	"github.com/cardfolio/cardfolio-api/internal/service"
)

// GenerationHandler exposes the AI card generation endpoints: the bare
// gateway that returns candidates, and generate-and-persist into a folder.
type GenerationHandler struct {
	generations *service.GenerationService
	validator   *validator.Validate
}

// NewGenerationHandler creates a new GenerationHandler with the given dependencies.
func NewGenerationHandler(generations *service.GenerationService) *GenerationHandler {
	return &GenerationHandler{
		generations: generations,
		validator:   validator.New(),
	}
}

// Generate handles POST /api/generate-cards. It validates the request,
// makes a single upstream call, and returns candidate cards without
// persisting anything.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	req, ok := h.decodeGenerationRequest(w, r)
	if !ok {
		return
	}

	cards, err := h.generations.GenerateCards(r.Context(), req.Text, req.Count)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateCardsResponse{Cards: cards})
}

// GenerateIntoFolder handles POST /api/folders/{id}/cards/generate. It
// generates cards, persists them sequentially into the folder, and returns
// the new cards along with the refreshed folder.
func (h *GenerationHandler) GenerateIntoFolder(w http.ResponseWriter, r *http.Request) {
	userID, folderID, ok := requireUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	req, ok := h.decodeGenerationRequest(w, r)
	if !ok {
		return
	}

	cards, folder, err := h.generations.GenerateCardsIntoFolder(
		r.Context(), userID, folderID, req.Text, req.Count)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, GenerateIntoFolderResponse{
		Cards:  cards,
		Folder: folder,
	})
}

// decodeGenerationRequest decodes and tag-validates the shared generation
// payload, writing the error response itself on failure.
func (h *GenerationHandler) decodeGenerationRequest(
	w http.ResponseWriter,
	r *http.Request,
) (GenerateCardsRequest, bool) {
	var req GenerateCardsRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return req, false
	}

	return req, true
}
