package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bigtree-group/marketing-webhooks/internal/infra/http/middleware"
	"github.com/bigtree-group/marketing-webhooks/internal/usecase"
)

type SpecsheetHandler struct {
	UC *usecase.SpecsheetRequestUseCase
}

func NewSpecsheetHandler(uc *usecase.SpecsheetRequestUseCase) *SpecsheetHandler {
	return &SpecsheetHandler{UC: uc}
}

func (h *SpecsheetHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SpecsheetRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeFail(w, http.StatusUnprocessableEntity, "invalid JSON body")
		return
	}

	if err := h.UC.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLead("specsheet")
	writeSuccess(w)
}
