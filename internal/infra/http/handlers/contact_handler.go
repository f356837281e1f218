package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bigtree-group/marketing-webhooks/internal/infra/http/middleware"
	"github.com/bigtree-group/marketing-webhooks/internal/usecase"
)

type ContactHandler struct {
	UC *usecase.ContactUseCase
}

func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{UC: uc}
}

func (h *ContactHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeFail(w, http.StatusUnprocessableEntity, "invalid JSON body")
		return
	}

	if err := h.UC.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLead("contact")
	writeSuccess(w)
}
