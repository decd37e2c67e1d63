package inquiryRepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"massagefinder/models"

	"github.com/google/uuid"
)

// MemoryInquiryRepo implements InquiryRepository in memory, for local
// development and tests.
type MemoryInquiryRepo struct {
	mu        sync.Mutex
	inquiries map[string]models.Inquiry
}

// NewMemoryInquiryRepo creates an empty in-memory InquiryRepository.
func NewMemoryInquiryRepo() *MemoryInquiryRepo {
	return &MemoryInquiryRepo{inquiries: make(map[string]models.Inquiry)}
}

func (r *MemoryInquiryRepo) Create(ctx context.Context, inquiry *models.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inquiry.ID = uuid.NewString()
	inquiry.Status = models.InquiryStatusNew
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now()
	}
	r.inquiries[inquiry.ID] = *inquiry
	return nil
}

func (r *MemoryInquiryRepo) GetAll(ctx context.Context) ([]models.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inquiries := make([]models.Inquiry, 0, len(r.inquiries))
	for _, inquiry := range r.inquiries {
		inquiries = append(inquiries, inquiry)
	}
	sort.SliceStable(inquiries, func(i, j int) bool {
		return inquiries[i].CreatedAt.After(inquiries[j].CreatedAt)
	})
	return inquiries, nil
}

func (r *MemoryInquiryRepo) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inquiry, ok := r.inquiries[id]
	if !ok {
		return fmt.Errorf("failed to update inquiry %s status: %w", id, ErrNotFound)
	}
	inquiry.Status = status
	r.inquiries[id] = inquiry
	return nil
}

func (r *MemoryInquiryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.inquiries[id]; !ok {
		return fmt.Errorf("failed to delete inquiry %s: %w", id, ErrNotFound)
	}
	delete(r.inquiries, id)
	return nil
}
