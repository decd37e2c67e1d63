package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService uploads shop images and returns a URL suitable for the
// shop's imageUrl field.
type StorageService interface {
	// UploadShopImage uploads the file at localFilePath into the shop-images
	// folder and returns its public HTTPS URL.
	UploadShopImage(ctx context.Context, localFilePath string) (string, error)
	// DeleteShopImage removes an uploaded image by its public ID.
	DeleteShopImage(ctx context.Context, publicID string) error
}

// StorageServiceImpl implements StorageService using Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
