package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CartItem is one product reference inside an enquiry cart.
type CartItem struct {
	ProductID int `json:"id"`
	Quantity  int `json:"quantity"`
}

// Lead is a captured contact/enquiry record destined for the
// spreadsheet and/or the CRM. Written once, never mutated.
type Lead struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	Project   string `json:"project"`
	Message   string `json:"message"`

	RequestSample string     `json:"request_sample,omitempty"`
	Quantity      string     `json:"quantity,omitempty"`
	CartItems     []CartItem `json:"cart_items,omitempty"`
	ProductIDs    []int      `json:"product_ids,omitempty"`

	Source    string    `json:"source"` // Product Inquiry, Sample Request, Contact Form
	CreatedAt time.Time `json:"created_at"`
}

func NewLead(source string) *Lead {
	return &Lead{
		ID:        uuid.New().String(),
		Source:    source,
		CreatedAt: time.Now(),
	}
}

// FullName joins first and last name. Enquiry forms only carry a single
// name field, which lands in FirstName.
func (l *Lead) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(l.FirstName) + " " + strings.TrimSpace(l.LastName))
}

// ReferencedProductIDs flattens cart items and the plain ID list into one
// slice, in submission order.
func (l *Lead) ReferencedProductIDs() []int {
	var out []int
	for _, item := range l.CartItems {
		out = append(out, item.ProductID)
	}
	out = append(out, l.ProductIDs...)
	return out
}

// ProductIDStrings is the comma-joinable form used by the spreadsheet row
// and the CRM Products field.
func (l *Lead) ProductIDStrings() []string {
	ids := l.ReferencedProductIDs()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, strconv.Itoa(id))
	}
	return out
}

// Timestamp renders CreatedAt in the store's local zone (GST, UTC+4),
// matching the spreadsheet's historical format.
func (l *Lead) Timestamp() string {
	gst := time.FixedZone("GST", 4*3600)
	return l.CreatedAt.In(gst).Format("2006-01-02 15:04:05")
}
