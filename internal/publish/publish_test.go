package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hansriess/academic-site/internal/storage"
)

// fakeStore records Put calls and serves canned presign responses.
type fakeStore struct {
	putKey      string
	putBody     []byte
	putOpts     storage.PutObjectOptions
	putErr      error
	presignURL  string
	presignErr  error
	presignKey  string
	presignCall int
}

func (f *fakeStore) Put(_ context.Context, key string, r io.Reader, opt storage.PutObjectOptions) (storage.ObjectInfo, error) {
	if f.putErr != nil {
		return storage.ObjectInfo{}, f.putErr
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return storage.ObjectInfo{}, err
	}
	f.putKey = key
	f.putBody = body
	f.putOpts = opt
	return storage.ObjectInfo{Key: key, Size: int64(len(body))}, nil
}

func (f *fakeStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	f.presignCall++
	f.presignKey = key
	return f.presignURL, f.presignErr
}

// writeArtifact drops a fake compiled PDF plus the aux files a compile run
// leaves behind, and returns the PDF path.
func writeArtifact(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"cv.aux", "cv.log", "cv.out"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("aux"), 0644))
	}
	pdfPath := filepath.Join(dir, "cv.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.5 content"), 0644))
	return pdfPath
}

func assertAuxFilesRemoved(t *testing.T, dir string) {
	t.Helper()
	for _, name := range []string{"cv.aux", "cv.log", "cv.out"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.True(t, os.IsNotExist(err), name)
	}
}

func TestPublish_UploadsAndPresigns(t *testing.T) {
	pdfPath := writeArtifact(t)
	store := &fakeStore{presignURL: "https://store.example/cv.pdf?sig=abc"}

	p := &Publisher{Store: store}
	url := p.Publish(context.Background(), pdfPath)

	assert.Equal(t, "https://store.example/cv.pdf?sig=abc", url)
	assert.Equal(t, ArtifactKey, store.putKey)
	assert.Equal(t, ArtifactKey, store.presignKey)
	assert.Equal(t, []byte("%PDF-1.5 content"), store.putBody)
	assert.Equal(t, "application/pdf", store.putOpts.ContentType)
	assert.Equal(t, int64(len("%PDF-1.5 content")), store.putOpts.Size)

	assertAuxFilesRemoved(t, filepath.Dir(pdfPath))
	// The artifact itself stays on disk for local serving.
	_, err := os.Stat(pdfPath)
	assert.NoError(t, err)
}

func TestPublish_NilStoreSkipsUpload(t *testing.T) {
	pdfPath := writeArtifact(t)

	p := &Publisher{}
	url := p.Publish(context.Background(), pdfPath)

	assert.Empty(t, url)
	assertAuxFilesRemoved(t, filepath.Dir(pdfPath))
}

func TestPublish_UploadFailureIsNonFatal(t *testing.T) {
	pdfPath := writeArtifact(t)
	store := &fakeStore{putErr: errors.New("connection refused")}

	p := &Publisher{Store: store}
	url := p.Publish(context.Background(), pdfPath)

	assert.Empty(t, url)
	assert.Zero(t, store.presignCall)
	assertAuxFilesRemoved(t, filepath.Dir(pdfPath))
}

func TestPublish_PresignFailureIsNonFatal(t *testing.T) {
	pdfPath := writeArtifact(t)
	store := &fakeStore{presignErr: errors.New("clock skew")}

	p := &Publisher{Store: store}
	url := p.Publish(context.Background(), pdfPath)

	assert.Empty(t, url)
	assert.Equal(t, ArtifactKey, store.putKey)
}

func TestPublish_MissingArtifactCleansUpAnyway(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cv.aux"), []byte("aux"), 0644))
	store := &fakeStore{presignURL: "https://store.example/cv.pdf"}

	p := &Publisher{Store: store}
	url := p.Publish(context.Background(), filepath.Join(dir, "cv.pdf"))

	assert.Empty(t, url)
	_, err := os.Stat(filepath.Join(dir, "cv.aux"))
	assert.True(t, os.IsNotExist(err))
}
