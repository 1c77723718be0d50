package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	EnsureBucket(ctx context.Context, bucketName string) error
	UploadObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, contentType string) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
