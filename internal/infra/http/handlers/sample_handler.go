package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/bigtree-group/marketing-webhooks/internal/infra/http/middleware"
	"github.com/bigtree-group/marketing-webhooks/internal/infra/queue"
	"github.com/bigtree-group/marketing-webhooks/internal/usecase"
)

// SampleHandler defers the whole side-effect chain when Background is set:
// validate, queue, answer 200. Nothing after the queue publish is visible
// to the client.
type SampleHandler struct {
	UC         *usecase.SampleRequestUseCase
	Producer   queue.QueueProducerInterface
	Background bool
}

func NewSampleHandler(uc *usecase.SampleRequestUseCase, producer queue.QueueProducerInterface, background bool) *SampleHandler {
	return &SampleHandler{
		UC:         uc,
		Producer:   producer,
		Background: background,
	}
}

func (h *SampleHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SampleRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeFail(w, http.StatusUnprocessableEntity, "invalid JSON body")
		return
	}

	if errs := usecase.ValidateSampleRequestInput(input); len(errs) > 0 {
		writeUseCaseError(w, usecase.ValidationErrors(errs))
		return
	}

	if h.Background && h.Producer != nil {
		job := queue.LeadJob{Kind: queue.KindSampleRequest, Lead: *input.ToLead()}
		if err := h.Producer.PublishLeadJob(r.Context(), job); err != nil {
			log.Printf("❌ Failed to queue sample request job: %v", err)
			writeFail(w, http.StatusInternalServerError, "failed to queue sample request")
			return
		}
		middleware.RecordLead("sample_request")
		writeSuccess(w)
		return
	}

	if err := h.UC.Process(r.Context(), input.ToLead()); err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLead("sample_request")
	writeSuccess(w)
}
