package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	UploadObject(ctx context.Context, reader io.Reader, size int64, bucketName, objectName, contentType string) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
