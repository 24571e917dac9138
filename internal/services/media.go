package services

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const previewTransformation = "pg_1,w_600,c_scale,f_png"

// HostedAsset holds the URLs produced by the hosting step.
type HostedAsset struct {
	PDFURL     string
	PreviewURL string
}

// MediaService stores the uploaded document with the media host and derives
// a hosted URL plus a first-page preview image URL. Callers treat every
// failure as non-fatal.
type MediaService interface {
	Upload(ctx context.Context, filePath string, withPreview bool) (*HostedAsset, error)
}

type mediaService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewMediaService(cloudName, apiKey, apiSecret, folder string) (MediaService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	return &mediaService{
		cld:    cld,
		folder: folder,
	}, nil
}

// Upload implements MediaService.
func (m *mediaService) Upload(ctx context.Context, filePath string, withPreview bool) (*HostedAsset, error) {
	resp, err := m.cld.Upload.Upload(ctx, filePath, uploader.UploadParams{
		Folder:       m.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to media host: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("media host rejected upload: %s", resp.Error.Message)
	}

	asset := &HostedAsset{PDFURL: resp.SecureURL}

	if withPreview {
		previewURL, err := m.buildPreviewURL(resp.PublicID)
		if err != nil {
			return nil, fmt.Errorf("failed to build preview url: %w", err)
		}
		asset.PreviewURL = previewURL
	}

	return asset, nil
}

func (m *mediaService) buildPreviewURL(publicID string) (string, error) {
	img, err := m.cld.Image(publicID)
	if err != nil {
		return "", err
	}

	img.Transformation = previewTransformation

	return img.String()
}
