// Package publish uploads the compiled CV artifact to the object store and
// cleans up the compiler's working files.
package publish

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hansriess/academic-site/internal/storage"
	"github.com/hansriess/academic-site/internal/typeset"
)

const (
	// ArtifactKey is the fixed object-store key of the published CV.
	// Each run overwrites the previous artifact.
	ArtifactKey = "cv.pdf"

	// presignExpiry bounds the lifetime of download URLs handed to
	// visitors; the key itself is stable.
	presignExpiry = 24 * time.Hour
)

// Publisher uploads compiled artifacts. Store may be nil, in which case
// publishing is skipped and the artifact stays local.
type Publisher struct {
	Store storage.Storage
}

// Publish uploads the artifact at pdfPath under ArtifactKey with the PDF
// content type and returns a presigned download URL. Upload failure is
// non-fatal by contract: the error is logged, "" is returned, and the run
// still counts as a success. Auxiliary compile files are always removed
// afterwards, whatever the upload outcome.
func (p *Publisher) Publish(ctx context.Context, pdfPath string) string {
	defer typeset.CleanupArtifacts(filepath.Dir(pdfPath))

	if p.Store == nil {
		return ""
	}

	url, err := p.upload(ctx, pdfPath)
	if err != nil {
		log.Printf("cv publish: upload failed (non-fatal): %v", err)
		return ""
	}
	return url
}

func (p *Publisher) upload(ctx context.Context, pdfPath string) (string, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to open artifact %s: %w", pdfPath, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat artifact: %w", err)
	}

	_, err = p.Store.Put(ctx, ArtifactKey, f, storage.PutObjectOptions{
		Size:        stat.Size(),
		ContentType: "application/pdf",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload artifact: %w", err)
	}

	return p.Store.PresignGet(ctx, ArtifactKey, presignExpiry)
}
