package repository

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

// repository stores repair-job photos in a GridFS bucket. Files are
// named repair-jobs/<jobID>/<filename> and addressed publicly through
// the returned retrieval URL.
type repository struct {
	bucket  *mongo.GridFSBucket
	baseURL string
}

func NewPhotoRepository(bucket *mongo.GridFSBucket, publicBaseURL string) *repository {
	return &repository{bucket: bucket, baseURL: publicBaseURL}
}

// Upload stores the blob and returns its retrieval URL.
func (r *repository) Upload(ctx context.Context, jobID, filename string, src io.Reader) (string, error) {
	const op = "repository.photo.Upload"

	if jobID == "" || filename == "" {
		return "", fmt.Errorf("%s: %w: job id and filename are required", op, model.ErrValidation)
	}

	path := fmt.Sprintf("repair-jobs/%s/%s", jobID, filename)

	id, err := r.bucket.UploadFromStream(ctx, path, src,
		options.GridFSUpload().SetMetadata(bson.M{
			"job_id":   jobID,
			"filename": filename,
		}),
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Sprintf("%s/photos/%s", r.baseURL, id.Hex()), nil
}

// Download streams a stored photo into w.
func (r *repository) Download(ctx context.Context, id string, w io.Writer) error {
	const op = "repository.photo.Download"

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%s: %w: malformed photo id", op, model.ErrValidation)
	}

	if _, err := r.bucket.DownloadToStream(ctx, oid, w); err != nil {
		if errors.Is(err, mongo.ErrFileNotFound) {
			return model.ErrPhotoNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
