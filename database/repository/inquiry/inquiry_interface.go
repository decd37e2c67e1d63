package inquiryRepo

import (
	"context"
	"errors"

	"massagefinder/models"
)

var (
	// ErrNotFound signals that the referenced inquiry does not exist.
	ErrNotFound = errors.New("inquiry not found")
	// ErrUnavailable signals that the document store could not be reached.
	ErrUnavailable = errors.New("store unavailable")
)

// InquiryRepository defines data access for shop-listing inquiries.
type InquiryRepository interface {
	// Create inserts a new inquiry and assigns its ID.
	Create(ctx context.Context, inquiry *models.Inquiry) error
	// GetAll retrieves all inquiries, newest first.
	GetAll(ctx context.Context) ([]models.Inquiry, error)
	// UpdateStatus transitions an inquiry's status.
	UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error
	// Delete removes an inquiry.
	Delete(ctx context.Context, id string) error
}
