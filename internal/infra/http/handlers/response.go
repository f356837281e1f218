package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bigtree-group/marketing-webhooks/internal/usecase"
)

// Envelope is the JSON body every webhook answers with.
type Envelope struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, Envelope{Status: "success"})
}

func writeFail(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, Envelope{Status: "fail", Detail: detail})
}

// writeUseCaseError maps the error taxonomy onto response codes:
// validation → 422, domain (product not found) → 404, technical → 500.
func writeUseCaseError(w http.ResponseWriter, err error) {
	if verrs, ok := usecase.AsValidationErrors(err); ok {
		writeFail(w, http.StatusUnprocessableEntity, verrs.Error())
		return
	}
	if usecase.IsDomainError(err) {
		writeFail(w, http.StatusNotFound, err.Error())
		return
	}
	writeFail(w, http.StatusInternalServerError, err.Error())
}
