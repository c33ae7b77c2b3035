package objectstore

import (
	"context"
	"io"
	"path"
	"time"

	"github.com/ae-scientist/tower/rp"
)

// PresignTTL is how long generated upload and download URLs stay valid.
const PresignTTL = 3600 * time.Second

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Store

// Store is the object-storage surface the control plane composes. Uploads
// overwrite by key, so every producer derives keys deterministically and
// re-sends are absorbed.
type Store interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error

	PresignUpload(ctx context.Context, key, contentType string, metadata map[string]string) (url string, err error)
	PresignDownload(ctx context.Context, key string) (url string, err error)

	Exists(ctx context.Context, key string) (exists bool, size int64, err error)
	List(ctx context.Context, prefix string) ([]rp.StoredFile, error)

	MultipartInit(ctx context.Context, key, contentType string, parts int) (uploadID string, partURLs []string, err error)
	MultipartComplete(ctx context.Context, key, uploadID string, parts []rp.MultipartCompletedPart) error
	MultipartAbort(ctx context.Context, key, uploadID string) error
}

// ArtifactKey derives the canonical object key for a run artifact.
func ArtifactKey(runID, artifactType, filename string) string {
	return path.Join("research-pipeline", runID, artifactType, filename)
}

// RunPrefix is the key prefix under which all of a run's artifacts live.
func RunPrefix(runID string) string {
	return path.Join("research-pipeline", runID) + "/"
}

// DatasetKey derives the object key for a user-owned dataset file.
func DatasetKey(userID, filename string) string {
	return path.Join("datasets", userID, filename)
}

// DatasetPrefix is the key prefix for a user's datasets.
func DatasetPrefix(userID string) string {
	return path.Join("datasets", userID) + "/"
}
