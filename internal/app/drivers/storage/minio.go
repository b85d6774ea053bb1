package storage

import (
	"fmt"
	"log"
	"vitalsign-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinio returns nil when MINIO_HOST is empty.
func NewMinio(driverConfig *config.DriverConfig) *minio.Client {
	if driverConfig.Minio.Host == "" {
		log.Println("Minio host not set, report uploads are disabled")
		return nil
	}

	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize Minio Client: %s", err.Error())
	}

	log.Println("Successfully connected to minio")
	return minioClient
}
