package usecase

import (
	"github.com/bigtree-group/marketing-webhooks/internal/entity"
)

type NewsletterInput struct {
	Email string `json:"email"`
}

type SpecsheetRequestInput struct {
	ProductID int    `json:"product_id"`
	Email     string `json:"email"`
}

type CartItemInput struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

type ProductEnquiryInput struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Company       string          `json:"company"`
	Project       string          `json:"project"`
	Message       string          `json:"message"`
	RequestSample string          `json:"request_sample"`
	CartItems     []CartItemInput `json:"cart_items"`
}

func (in ProductEnquiryInput) ToLead() *entity.Lead {
	lead := entity.NewLead("Product Inquiry")
	lead.FirstName = in.Name
	lead.Email = in.Email
	lead.Phone = in.Phone
	lead.Company = in.Company
	lead.Project = in.Project
	lead.Message = in.Message
	lead.RequestSample = in.RequestSample
	for _, item := range in.CartItems {
		lead.CartItems = append(lead.CartItems, entity.CartItem{
			ProductID: item.ID,
			Quantity:  item.Quantity,
		})
	}
	return lead
}

type SampleRequestInput struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Project    string `json:"project"`
	Quantity   string `json:"quantity"`
	Message    string `json:"message"`
	ProductIDs []int  `json:"product_ids"`
}

func (in SampleRequestInput) ToLead() *entity.Lead {
	lead := entity.NewLead("Sample Request")
	lead.FirstName = in.FirstName
	lead.LastName = in.LastName
	lead.Email = in.Email
	lead.Phone = in.Phone
	lead.Company = in.Company
	lead.Project = in.Project
	lead.Quantity = in.Quantity
	lead.Message = in.Message
	lead.ProductIDs = in.ProductIDs
	return lead
}

type ContactInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	Project   string `json:"project"`
	Message   string `json:"message"`
}

func (in ContactInput) ToLead() *entity.Lead {
	lead := entity.NewLead("Contact Form")
	lead.FirstName = in.FirstName
	lead.LastName = in.LastName
	lead.Email = in.Email
	lead.Phone = in.Phone
	lead.Company = in.Company
	lead.Location = in.Location
	lead.Project = in.Project
	lead.Message = in.Message
	return lead
}
