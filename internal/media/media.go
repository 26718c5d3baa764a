package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// MaxUploadSize is the largest accepted image, in bytes.
const MaxUploadSize = 5 << 20

var (
	// ErrMissingFile is returned when the request carries no file part.
	ErrMissingFile = errors.New("no file provided")
	// ErrUnsupportedType is returned for MIME types outside the allow-list.
	ErrUnsupportedType = errors.New("invalid file type, only images are allowed")
	// ErrTooLarge is returned for files above MaxUploadSize.
	ErrTooLarge = errors.New("file too large, maximum size is 5MB")
	// ErrHost wraps every failure reported by the image host.
	ErrHost = errors.New("image host upload failed")
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// File is a validated image ready to be sent to a host.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Uploader stores an image and returns its public HTTPS URL.
type Uploader interface {
	Upload(ctx context.Context, file File) (string, error)
}

// ReadFile validates a multipart part and reads it into memory. Size and type
// are checked before any bytes leave the process.
func ReadFile(header *multipart.FileHeader) (File, error) {
	if header == nil {
		return File{}, ErrMissingFile
	}
	if header.Size > MaxUploadSize {
		return File{}, ErrTooLarge
	}

	f, err := header.Open()
	if err != nil {
		return File{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		return File{}, fmt.Errorf("read upload: %w", err)
	}

	file := File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
	if err := Validate(&file); err != nil {
		return File{}, err
	}
	return file, nil
}

// Validate enforces the size ceiling and the MIME allow-list. A missing
// content type is sniffed from the payload.
func Validate(file *File) error {
	if len(file.Data) == 0 {
		return ErrMissingFile
	}
	if len(file.Data) > MaxUploadSize {
		return ErrTooLarge
	}

	contentType := normalizeType(file.ContentType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = normalizeType(http.DetectContentType(file.Data))
	}
	if _, ok := allowedTypes[contentType]; !ok {
		return ErrUnsupportedType
	}
	file.ContentType = contentType
	return nil
}

// DataURI encodes the file as data:<mime>;base64,<payload>.
func DataURI(file File) string {
	return "data:" + file.ContentType + ";base64," + base64.StdEncoding.EncodeToString(file.Data)
}

// Extension returns the canonical file extension for an allowed MIME type.
func Extension(contentType string) string {
	if ext, ok := allowedTypes[normalizeType(contentType)]; ok {
		return ext
	}
	return ".jpg"
}

func normalizeType(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}
