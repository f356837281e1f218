package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/bigtree-group/marketing-webhooks/internal/infra/http/middleware"
	"github.com/bigtree-group/marketing-webhooks/internal/infra/queue"
	"github.com/bigtree-group/marketing-webhooks/internal/usecase"
)

// EnquiryHandler runs validation and the product fan-out synchronously so
// a dead product ID still surfaces as a 404. With Background set, the
// heavy tail (audit row, PDFs, email, CRM) is queued and the client gets
// its 200 before any of it runs — those failures are only logged.
type EnquiryHandler struct {
	UC         *usecase.ProductEnquiryUseCase
	Producer   queue.QueueProducerInterface
	Background bool
}

func NewEnquiryHandler(uc *usecase.ProductEnquiryUseCase, producer queue.QueueProducerInterface, background bool) *EnquiryHandler {
	return &EnquiryHandler{
		UC:         uc,
		Producer:   producer,
		Background: background,
	}
}

func (h *EnquiryHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.ProductEnquiryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeFail(w, http.StatusUnprocessableEntity, "invalid JSON body")
		return
	}

	lead, products, err := h.UC.Prepare(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	if h.Background && h.Producer != nil {
		job := queue.LeadJob{Kind: queue.KindEnquiryFulfillment, Lead: *lead}
		if err := h.Producer.PublishLeadJob(r.Context(), job); err != nil {
			log.Printf("❌ Failed to queue enquiry job: %v", err)
			writeFail(w, http.StatusInternalServerError, "failed to queue enquiry")
			return
		}
		middleware.RecordLead("product_enquiry")
		writeSuccess(w)
		return
	}

	if err := h.UC.Fulfill(r.Context(), lead, products); err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLead("product_enquiry")
	writeSuccess(w)
}
