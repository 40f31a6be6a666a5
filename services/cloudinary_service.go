package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService stores product and blog imagery. Assets live under one
// folder per owning record so deletion can sweep the whole prefix.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// imageUploadParams builds the standard image settings. The SDK takes
// pointer booleans, hence the locals.
func imageUploadParams(folder, publicID string) uploader.UploadParams {
	unique := true
	overwrite := false
	params := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if publicID != "" {
		params.PublicID = publicID
	}
	return params
}

// UploadImage pushes one image and returns its https URL
func (s *CloudinaryService) UploadImage(ctx context.Context, file multipart.File, filename string, folder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, imageUploadParams(folder, filename))
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}
	return result.SecureURL, nil
}

// UploadMultipleImages uploads a form's image set and returns the URLs in
// the same order
func (s *CloudinaryService) UploadMultipleImages(ctx context.Context, files []*multipart.FileHeader, folder string) ([]string, error) {
	urls := make([]string, 0, len(files))
	for i, header := range files {
		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file %s: %w", header.Filename, err)
		}

		url, err := s.UploadImage(ctx, file, fmt.Sprintf("%s_%d", header.Filename, i), folder)
		file.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// DeleteImage removes a single asset by public ID
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

// DeleteFolder removes every asset under a prefix, then the folder entries
// themselves. Cloudinary drops empty folders on its own, so the second step
// can fail harmlessly.
func (s *CloudinaryService) DeleteFolder(ctx context.Context, folderPath string) error {
	if _, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{folderPath},
	}); err != nil {
		return fmt.Errorf("failed to delete assets in folder %s: %w", folderPath, err)
	}
	log.Printf("[cloudinary] cleared assets under %s", folderPath)

	for _, folder := range []string{folderPath + "/primary", folderPath + "/other", folderPath} {
		s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{Folder: folder})
	}
	return nil
}
