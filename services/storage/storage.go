package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// shopImageFolder is the Cloudinary folder holding listing images.
const shopImageFolder = "massagefinder/shops"

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
	}
}

// UploadShopImage uploads a shop image and returns its secure URL. The URL is
// stored verbatim in the shop's imageUrl field.
func (s *StorageServiceImpl) UploadShopImage(ctx context.Context, localFilePath string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: shopImageFolder,
	})
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to upload shop image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("StorageServiceImpl: no secure URL returned")
	}
	return result.SecureURL, nil
}

// DeleteShopImage deletes an uploaded image given its public ID.
func (s *StorageServiceImpl) DeleteShopImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete shop image: %w", err)
	}
	return nil
}
