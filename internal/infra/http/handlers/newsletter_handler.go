package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bigtree-group/marketing-webhooks/internal/infra/http/middleware"
	"github.com/bigtree-group/marketing-webhooks/internal/usecase"
)

// NewsletterHandler accepts the signup form. The marketing site posts it
// form-encoded; JSON is accepted too for newer form builders.
type NewsletterHandler struct {
	UC *usecase.NewsletterUseCase
}

func NewNewsletterHandler(uc *usecase.NewsletterUseCase) *NewsletterHandler {
	return &NewsletterHandler{UC: uc}
}

func (h *NewsletterHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.NewsletterInput

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeFail(w, http.StatusUnprocessableEntity, "invalid JSON body")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeFail(w, http.StatusUnprocessableEntity, "invalid form body")
			return
		}
		input.Email = r.PostFormValue("email")
	}

	if err := h.UC.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLead("newsletter")
	writeSuccess(w)
}
