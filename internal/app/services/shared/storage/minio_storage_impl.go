package storage

import (
	"context"
	"io"
	"net/url"
	"time"
	"vitalsign-service/internal/app/contracts"
	"vitalsign-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

// UploadObject creates bucketName on first use and returns the stored object name.
func (m *minioStorage) UploadObject(ctx context.Context, reader io.Reader, size int64, bucketName, objectName, contentType string) (string, error) {
	exists, err := m.MinioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}
	if !exists {
		if err := m.MinioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return "", exceptions.ErrMinioCreateObject(err, bucketName)
		}
	}

	_, err = m.MinioClient.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return objectName, nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiryTime, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioGetPresignedURL(err, bucketName)
	}
	return presignedURL.String(), nil
}
