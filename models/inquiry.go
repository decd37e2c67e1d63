package models

import "time"

// InquiryStatus tracks how far an admin has taken a shop-listing inquiry.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusRead      InquiryStatus = "read"
	InquiryStatusContacted InquiryStatus = "contacted"
)

// Valid reports whether s is one of the known inquiry statuses.
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusNew, InquiryStatusRead, InquiryStatusContacted:
		return true
	}
	return false
}

// Inquiry is a shop-listing request from a prospective owner, stored under
// shopInquiries/{inquiryId}. It has no relationship to Shop documents.
type Inquiry struct {
	ID             string        `json:"id" firestore:"-"`
	OwnerName      string        `json:"ownerName" firestore:"ownerName"`
	ContactNumber  string        `json:"contactNumber" firestore:"contactNumber"`
	Email          string        `json:"email" firestore:"email"`
	ShopName       string        `json:"shopName" firestore:"shopName"`
	ShopLocation   string        `json:"shopLocation,omitempty" firestore:"shopLocation"`
	InquiryDetails string        `json:"inquiryDetails" firestore:"inquiryDetails"`
	CreatedAt      time.Time     `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	Status         InquiryStatus `json:"status" firestore:"status"`
}
