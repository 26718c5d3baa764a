package media

import (
	"fmt"

	"github.com/gsccapital/website/api/internal/config"
)

// New builds the uploader selected by cfg.Backend.
func New(cfg config.MediaConfig) (Uploader, error) {
	switch cfg.Backend {
	case "cloudinary", "":
		u, err := NewCloudinaryUploader(cfg.CloudName, cfg.APIKey, cfg.APISecret, cfg.UploadPreset, cfg.Folder, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return u, nil
	case "s3":
		u, err := NewS3Uploader(cfg.AWSRegion, cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.S3Bucket, cfg.Folder, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return u, nil
	default:
		return nil, fmt.Errorf("unsupported media backend %q", cfg.Backend)
	}
}
