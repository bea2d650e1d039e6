// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/highgrip/storefront-backend/internal/config"
)

// StorageService stores product photos in S3, with a local-URL fallback when
// no AWS credentials are configured.
type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

const (
	productImageFolder  = "products"
	productImageMaxSize = 10 * 1024 * 1024 // 10MB
)

var productImageTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.AWS.AccessKeyID == "" {
		// Local development without S3
		return &StorageService{config: cfg}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   cfg,
	}, nil
}

func (s *StorageService) UploadProductImage(file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	if header.Size > productImageMaxSize {
		return nil, fmt.Errorf("file size %d bytes exceeds maximum allowed size %d bytes", header.Size, productImageMaxSize)
	}

	fileExt := strings.ToLower(filepath.Ext(header.Filename))
	allowed := false
	for _, ext := range productImageTypes {
		if fileExt == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("file type %s is not allowed", fileExt)
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if !isValidImage(fileBytes) {
		return nil, fmt.Errorf("invalid image file")
	}

	key := s.generateFileName(header.Filename)
	contentType := header.Header.Get("Content-Type")

	if s.s3Client != nil {
		return s.uploadToS3(fileBytes, key, contentType)
	}
	return s.uploadToLocal(fileBytes, key, contentType)
}

func (s *StorageService) uploadToS3(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ACL:           aws.String("public-read"),
	}

	if _, err := s.s3Client.PutObject(params); err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		URL:      s.getS3URL(key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) uploadToLocal(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	path := filepath.Join("uploads", key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(path, fileBytes, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	url := fmt.Sprintf("http://%s:%s/uploads/%s", s.config.Server.Host, s.config.Server.Port, key)

	return &UploadResult{
		URL:      url,
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) DeleteFile(key string) error {
	if s.s3Client == nil {
		return nil
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

func (s *StorageService) generateFileName(originalName string) string {
	id := uuid.New()
	ext := filepath.Ext(originalName)
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s_%s%s", productImageFolder, timestamp, id.String()[:8], ext)
}

func (s *StorageService) getS3URL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", s.config.AWS.CloudFrontURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}

func isValidImage(buffer []byte) bool {
	// JPEG
	if len(buffer) >= 3 && buffer[0] == 0xFF && buffer[1] == 0xD8 && buffer[2] == 0xFF {
		return true
	}
	// PNG
	if len(buffer) >= 8 && buffer[0] == 0x89 && buffer[1] == 0x50 && buffer[2] == 0x4E && buffer[3] == 0x47 {
		return true
	}
	// GIF
	if len(buffer) >= 6 && (string(buffer[0:6]) == "GIF87a" || string(buffer[0:6]) == "GIF89a") {
		return true
	}
	// WebP
	if len(buffer) >= 12 && string(buffer[0:4]) == "RIFF" && string(buffer[8:12]) == "WEBP" {
		return true
	}
	return false
}
