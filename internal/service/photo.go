package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/storage"
)

// maxPhotoSize caps uploads at 20 MB.
const maxPhotoSize = 20 << 20

var photoContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// PhotoService uploads job photos to object storage and attaches them
// to jobs.
type PhotoService struct {
	storage storage.ObjectStorage
	jobs    *JobService
}

// NewPhotoService creates a photo service.
func NewPhotoService(store storage.ObjectStorage, jobs *JobService) *PhotoService {
	return &PhotoService{storage: store, jobs: jobs}
}

// PhotoUpload carries an incoming photo file plus its metadata.
type PhotoUpload struct {
	Filename   string
	Size       int64
	Reader     io.Reader
	Caption    string
	Phase      string
	UploadedBy string
}

// Attach uploads the photo and appends it to the job's photo list.
// Parameters:
//   - ctx: request context.
//   - jobID: target job ID.
//   - upload: the file and its metadata.
// Returns:
//   - *domain.JobPhoto: the stored photo entry.
//   - error: non-nil on validation or storage failure.
func (s *PhotoService) Attach(ctx context.Context, jobID string, upload *PhotoUpload) (*domain.JobPhoto, error) {
	if upload.Size <= 0 || upload.Size > maxPhotoSize {
		return nil, &domain.MalformedInputError{
			Field:  "photo",
			Value:  upload.Filename,
			Reason: fmt.Sprintf("file size must be between 1 byte and %d bytes", maxPhotoSize),
		}
	}

	ext := strings.ToLower(path.Ext(upload.Filename))
	contentType, ok := photoContentTypes[ext]
	if !ok {
		return nil, &domain.MalformedInputError{
			Field:  "photo",
			Value:  upload.Filename,
			Reason: "unsupported image format, expected jpg, png, gif, or webp",
		}
	}

	data, err := io.ReadAll(io.LimitReader(upload.Reader, maxPhotoSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read photo: %w", err)
	}
	if int64(len(data)) > maxPhotoSize {
		return nil, &domain.MalformedInputError{
			Field:  "photo",
			Value:  upload.Filename,
			Reason: "file exceeds the maximum allowed size",
		}
	}

	width, height := probeDimensions(data)

	key := "photos/" + uuid.New().String() + ext
	if err := s.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}

	now := time.Now().UTC()
	photo := domain.JobPhoto{
		URL:        s.storage.GetURL(key),
		StorageKey: key,
		Caption:    upload.Caption,
		Phase:      upload.Phase,
		Width:      width,
		Height:     height,
		UploadedBy: upload.UploadedBy,
		TakenAt:    &now,
	}

	if _, err := s.jobs.AppendPhoto(ctx, jobID, photo); err != nil {
		// Job update failed, best effort cleanup of the orphaned object
		_ = s.storage.Delete(ctx, key)
		return nil, err
	}
	return &photo, nil
}

// probeDimensions decodes just the image header. Unknown formats yield
// zero dimensions rather than an error.
func probeDimensions(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
