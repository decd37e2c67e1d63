package inquiry

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"massagefinder/models"
	"massagefinder/utils"

	"go.uber.org/zap"
)

// ValidationError signals malformed inquiry input, caught before any store call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// SubmitInquiry validates the public form and persists the inquiry.
func (s *DefaultInquiryService) SubmitInquiry(ctx context.Context, input InquiryInput) (*models.Inquiry, error) {
	input.OwnerName = strings.TrimSpace(input.OwnerName)
	if input.OwnerName == "" {
		return nil, &ValidationError{Field: "ownerName", Message: "must not be empty"}
	}
	input.ContactNumber = strings.TrimSpace(input.ContactNumber)
	if input.ContactNumber == "" {
		return nil, &ValidationError{Field: "contactNumber", Message: "must not be empty"}
	}
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" {
		return nil, &ValidationError{Field: "email", Message: "must not be empty"}
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	input.ShopName = strings.TrimSpace(input.ShopName)
	if input.ShopName == "" {
		return nil, &ValidationError{Field: "shopName", Message: "must not be empty"}
	}
	input.InquiryDetails = strings.TrimSpace(input.InquiryDetails)
	if input.InquiryDetails == "" {
		return nil, &ValidationError{Field: "inquiryDetails", Message: "must not be empty"}
	}

	inq := &models.Inquiry{
		OwnerName:      input.OwnerName,
		ContactNumber:  input.ContactNumber,
		Email:          input.Email,
		ShopName:       input.ShopName,
		ShopLocation:   strings.TrimSpace(input.ShopLocation),
		InquiryDetails: input.InquiryDetails,
	}
	if err := s.Repo.Create(ctx, inq); err != nil {
		return nil, fmt.Errorf("failed to submit inquiry: %w", err)
	}
	utils.GetLogger().Info("inquiry submitted",
		zap.String("inquiryID", inq.ID), zap.String("shopName", inq.ShopName))
	return inq, nil
}

// ListInquiries returns all inquiries, newest first.
func (s *DefaultInquiryService) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	return s.Repo.GetAll(ctx)
}

// UpdateStatus transitions an inquiry's status.
func (s *DefaultInquiryService) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Field: "id", Message: "must not be empty"}
	}
	if !status.Valid() {
		return &ValidationError{Field: "status", Message: "must be one of new, read, contacted"}
	}
	return s.Repo.UpdateStatus(ctx, id, status)
}

// DeleteInquiry removes an inquiry.
func (s *DefaultInquiryService) DeleteInquiry(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Field: "id", Message: "must not be empty"}
	}
	return s.Repo.Delete(ctx, id)
}
