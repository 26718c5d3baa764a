package media

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// cloudinaryAPI is the subset of uploader.API used here.
type cloudinaryAPI interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
	UnsignedUpload(ctx context.Context, file interface{}, uploadPreset string, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
}

// CloudinaryUploader sends images to Cloudinary as data URIs. Uploads are
// signed when API credentials are configured and go through the unsigned
// preset otherwise.
type CloudinaryUploader struct {
	api     cloudinaryAPI
	signed  bool
	preset  string
	folder  string
	timeout time.Duration
}

// NewCloudinaryUploader builds an uploader for the given cloud.
func NewCloudinaryUploader(cloudName, apiKey, apiSecret, preset, folder string, timeout time.Duration) (*CloudinaryUploader, error) {
	if cloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud name must not be empty")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("create cloudinary client: %w", err)
	}
	return &CloudinaryUploader{
		api:     &cld.Upload,
		signed:  apiKey != "" && apiSecret != "",
		preset:  preset,
		folder:  folder,
		timeout: timeout,
	}, nil
}

// Upload returns the secure URL of the stored image.
func (u *CloudinaryUploader) Upload(ctx context.Context, file File) (string, error) {
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	params := uploader.UploadParams{Folder: u.folder}
	var (
		resp *uploader.UploadResult
		err  error
	)
	if u.signed {
		params.UploadPreset = u.preset
		resp, err = u.api.Upload(ctx, DataURI(file), params)
	} else {
		resp, err = u.api.UnsignedUpload(ctx, DataURI(file), u.preset, params)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHost, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: empty response", ErrHost)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", ErrHost, resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("%w: response carried no secure url", ErrHost)
	}
	return resp.SecureURL, nil
}
