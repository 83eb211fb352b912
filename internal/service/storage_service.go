package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/teodor-vladconstantin/job-navigator/internal/config"
)

// ErrBucketNotFound marks a reference whose bucket does not exist on this
// deployment; the object was most likely uploaded against another project.
var ErrBucketNotFound = errors.New("bucket not found")

// ObjectStorage is the consumed surface of the managed object store.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error
	CreateSignedURL(ctx context.Context, bucket, path string, expiresIn int) (string, error)
	PublicURL(bucket, path string) string
	Download(ctx context.Context, bucket, path string) ([]byte, string, error)
	BaseURL() string
}

// StorageService talks to the storage REST API (upload, signed URL issuance,
// public URL construction, direct download).
type StorageService struct {
	client  *resty.Client
	baseURL string
}

func NewStorageService() *StorageService {
	cfg := config.LoadStorageConfig()
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetAuthToken(cfg.ServiceKey)
	return &StorageService{client: client, baseURL: strings.TrimRight(cfg.URL, "/")}
}

func (s *StorageService) BaseURL() string {
	return s.baseURL
}

// Upload stores data at bucket/path, overwriting an existing object.
func (s *StorageService) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "true").
		SetBody(data).
		Post(fmt.Sprintf("/storage/v1/object/%s/%s", bucket, path))
	if err != nil {
		return fmt.Errorf("storage upload: %w", err)
	}
	if resp.IsError() {
		return storageError("storage upload", resp)
	}
	return nil
}

// CreateSignedURL issues a fresh time-limited URL for a private object.
func (s *StorageService) CreateSignedURL(ctx context.Context, bucket, path string, expiresIn int) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]int{"expiresIn": expiresIn}).
		Post(fmt.Sprintf("/storage/v1/object/sign/%s/%s", bucket, path))
	if err != nil {
		return "", fmt.Errorf("storage sign: %w", err)
	}
	if resp.IsError() {
		return "", storageError("storage sign", resp)
	}

	signed := gjson.GetBytes(resp.Body(), "signedURL").String()
	if signed == "" {
		return "", fmt.Errorf("storage sign: empty signedURL in response")
	}
	return s.baseURL + "/storage/v1" + signed, nil
}

// PublicURL builds the public URL form for an object in a public bucket.
func (s *StorageService) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, bucket, path)
}

// Download fetches the object bytes directly, returning the content type as
// reported by the store.
func (s *StorageService) Download(ctx context.Context, bucket, path string) ([]byte, string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/storage/v1/object/%s/%s", bucket, path))
	if err != nil {
		return nil, "", fmt.Errorf("storage download: %w", err)
	}
	if resp.IsError() {
		return nil, "", storageError("storage download", resp)
	}
	return resp.Body(), resp.Header().Get("Content-Type"), nil
}

func storageError(op string, resp *resty.Response) error {
	msg := gjson.GetBytes(resp.Body(), "message").String()
	if msg == "" {
		msg = resp.Status()
	}
	if strings.Contains(strings.ToLower(msg), "bucket not found") {
		return fmt.Errorf("%s: %w", op, ErrBucketNotFound)
	}
	return fmt.Errorf("%s: %s", op, msg)
}
