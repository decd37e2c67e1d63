package inquiry

import (
	"context"

	"massagefinder/models"

	inquiryRepo "massagefinder/database/repository/inquiry"
)

// InquiryInput carries the public submission form fields.
type InquiryInput struct {
	OwnerName      string `json:"ownerName"`
	ContactNumber  string `json:"contactNumber"`
	Email          string `json:"email"`
	ShopName       string `json:"shopName"`
	ShopLocation   string `json:"shopLocation"`
	InquiryDetails string `json:"inquiryDetails"`
}

// InquiryService defines submission plus the admin tracking operations.
type InquiryService interface {
	// SubmitInquiry validates and persists a new inquiry with status "new".
	SubmitInquiry(ctx context.Context, input InquiryInput) (*models.Inquiry, error)
	// ListInquiries returns all inquiries, newest first.
	ListInquiries(ctx context.Context) ([]models.Inquiry, error)
	// UpdateStatus transitions an inquiry to the given status.
	UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error
	// DeleteInquiry removes an inquiry.
	DeleteInquiry(ctx context.Context, id string) error
}

// DefaultInquiryService is the production implementation of InquiryService.
type DefaultInquiryService struct {
	Repo inquiryRepo.InquiryRepository
}
