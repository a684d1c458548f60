package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cardfolio/cardfolio-api/internal/api/shared"
	"github.com/cardfolio/cardfolio-api/internal/service"
)

// CardHandler handles manual card creation and deletion.
type CardHandler struct {
	cards     *service.CardService
	validator *validator.Validate
}

// NewCardHandler creates a new CardHandler with the given dependencies.
func NewCardHandler(cards *service.CardService) *CardHandler {
	return &CardHandler{
		cards:     cards,
		validator: validator.New(),
	}
}

// Create handles POST /api/folders/{id}/cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, folderID, ok := requireUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	card, err := h.cards.CreateCard(r.Context(), userID, folderID, req.Question, req.Answer)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, card)
}

// Delete handles DELETE /api/cards/{id}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, cardID, ok := requireUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.cards.DeleteCard(r.Context(), userID, cardID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
