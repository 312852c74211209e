package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
)

// memStorage is an in-memory object store for tests.
type memStorage struct {
	objects map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}}
}

func (m *memStorage) Upload(_ context.Context, key string, reader io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.objects[key] = data
	return nil
}

func (m *memStorage) Download(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, errors.New("no such object")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStorage) GetURL(key string) string {
	return "https://cdn.test/" + key
}

func (m *memStorage) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func (m *memStorage) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.objects[key]
	return ok, nil
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newPhotoFixture(t *testing.T) (*PhotoService, *JobService, *memStorage) {
	t.Helper()
	jobs := NewJobService(repository.NewJobRepository(newTestDB(t)))
	store := newMemStorage()
	return NewPhotoService(store, jobs), jobs, store
}

func TestPhotoAttach(t *testing.T) {
	photos, jobs, store := newPhotoFixture(t)
	ctx := context.Background()

	job, err := jobs.Create(ctx, &domain.Job{CustomerID: "cust-1", Type: domain.JobTypeDetach})
	require.NoError(t, err)

	data := encodePNG(t, 640, 480)
	photo, err := photos.Attach(ctx, job.ID, &PhotoUpload{
		Filename:   "roof.png",
		Size:       int64(len(data)),
		Reader:     bytes.NewReader(data),
		Caption:    "north face before detach",
		Phase:      "detach",
		UploadedBy: "tech-1",
	})
	require.NoError(t, err)

	assert.Equal(t, 640, photo.Width)
	assert.Equal(t, 480, photo.Height)
	assert.True(t, strings.HasPrefix(photo.StorageKey, "photos/"))
	assert.True(t, strings.HasSuffix(photo.StorageKey, ".png"))
	assert.Equal(t, "https://cdn.test/"+photo.StorageKey, photo.URL)

	exists, err := store.Exists(ctx, photo.StorageKey)
	require.NoError(t, err)
	assert.True(t, exists)

	// The photo is appended to the stored job
	stored, err := jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, stored.Photos, 1)
	assert.Equal(t, "north face before detach", stored.Photos[0].Caption)
}

func TestPhotoAttachUnknownJobCleansUp(t *testing.T) {
	photos, _, store := newPhotoFixture(t)
	ctx := context.Background()

	data := encodePNG(t, 10, 10)
	_, err := photos.Attach(ctx, "missing", &PhotoUpload{
		Filename: "roof.png",
		Size:     int64(len(data)),
		Reader:   bytes.NewReader(data),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// The orphaned object was removed
	assert.Empty(t, store.objects)
}

func TestPhotoAttachRejectsUnsupportedFormat(t *testing.T) {
	photos, jobs, _ := newPhotoFixture(t)
	ctx := context.Background()

	job, err := jobs.Create(ctx, &domain.Job{CustomerID: "cust-1", Type: domain.JobTypeDetach})
	require.NoError(t, err)

	_, err = photos.Attach(ctx, job.ID, &PhotoUpload{
		Filename: "notes.pdf",
		Size:     4,
		Reader:   strings.NewReader("%PDF"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedInput))
}

func TestPhotoAttachRejectsEmptyFile(t *testing.T) {
	photos, _, _ := newPhotoFixture(t)

	_, err := photos.Attach(context.Background(), "job-1", &PhotoUpload{
		Filename: "roof.jpg",
		Size:     0,
		Reader:   strings.NewReader(""),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedInput))
}
