package inquiryRepo

import (
	"context"
	"fmt"
	"time"

	"massagefinder/database"
	"massagefinder/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const inquiriesCollection = "shopInquiries"

// FirestoreInquiryRepo implements InquiryRepository using Firestore.
type FirestoreInquiryRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreInquiryRepo creates a new instance of InquiryRepository using Firestore.
func NewFirestoreInquiryRepo() InquiryRepository {
	return &FirestoreInquiryRepo{
		coll: database.FirestoreClient.Collection(inquiriesCollection),
	}
}

func mapErr(op string, err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Create inserts a new inquiry with status "new" and a server timestamp.
func (r *FirestoreInquiryRepo) Create(ctx context.Context, inquiry *models.Inquiry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	inquiry.Status = models.InquiryStatusNew
	doc := r.coll.NewDoc()
	if _, err := doc.Create(ctx, inquiry); err != nil {
		return mapErr("failed to create inquiry", err)
	}
	inquiry.ID = doc.ID
	return nil
}

// GetAll retrieves all inquiries ordered newest first.
func (r *FirestoreInquiryRepo) GetAll(ctx context.Context) ([]models.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	inquiries := []models.Inquiry{}
	iter := r.coll.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr("failed to retrieve inquiries", err)
		}
		var inquiry models.Inquiry
		if err := doc.DataTo(&inquiry); err != nil {
			return nil, fmt.Errorf("failed to decode inquiry %s: %w", doc.Ref.ID, err)
		}
		inquiry.ID = doc.Ref.ID
		if !inquiry.Status.Valid() {
			inquiry.Status = models.InquiryStatusNew
		}
		inquiries = append(inquiries, inquiry)
	}
	return inquiries, nil
}

// UpdateStatus transitions an inquiry's status field.
func (r *FirestoreInquiryRepo) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
	})
	if err != nil {
		return mapErr(fmt.Sprintf("failed to update inquiry %s status", id), err)
	}
	return nil
}

// Delete removes an inquiry document.
func (r *FirestoreInquiryRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := r.coll.Doc(id)
	if _, err := doc.Get(ctx); err != nil {
		return mapErr(fmt.Sprintf("failed to fetch inquiry %s", id), err)
	}
	if _, err := doc.Delete(ctx); err != nil {
		return mapErr(fmt.Sprintf("failed to delete inquiry %s", id), err)
	}
	return nil
}
