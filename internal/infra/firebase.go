// README: Firebase Admin SDK initialisation for the Storage bucket.
package infra

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewStorageBucket returns a handle to the Firebase Storage bucket used for
// image uploads. If credentialsFile is non-empty it is used as the
// service-account JSON path; otherwise application-default credentials /
// GOOGLE_APPLICATION_CREDENTIALS are used.
func NewStorageBucket(ctx context.Context, credentialsFile, bucket string) (*storage.BucketHandle, error) {
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucket}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase app.Storage: %w", err)
	}
	return client.Bucket(bucket)
}
