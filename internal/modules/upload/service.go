// README: Image upload to Firebase Storage with collision-free object names.
package upload

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

type Service struct {
	bucket     *storage.BucketHandle
	bucketName string
}

func NewService(bucket *storage.BucketHandle, bucketName string) *Service {
	return &Service{bucket: bucket, bucketName: bucketName}
}

// Image streams the file into the temporary uploads folder and returns its
// public URL. A uuid prefix keeps client filenames from colliding.
func (s *Service) Image(ctx context.Context, filename string, r io.Reader) (string, error) {
	object := fmt.Sprintf("temp_uploads/%s_%s", uuid.New().String(), filename)
	w := s.bucket.Object(object).NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("upload %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload %s: %w", object, err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, object), nil
}
