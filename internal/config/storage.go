package config

import (
	"os"
	"strconv"
	"sync"
)

type StorageConfig struct {
	URL           string
	ServiceKey    string
	CVBucket      string
	GuestCVBucket string
	SignedURLTTL  int // seconds
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		cvBucket := os.Getenv("STORAGE_CV_BUCKET")
		if cvBucket == "" {
			cvBucket = "cvs"
		}
		guestBucket := os.Getenv("STORAGE_GUEST_CV_BUCKET")
		if guestBucket == "" {
			guestBucket = "guest-cvs"
		}
		ttl, _ := strconv.Atoi(os.Getenv("STORAGE_SIGNED_URL_TTL"))
		if ttl == 0 {
			ttl = 300
		}
		storageConfig = &StorageConfig{
			URL:           os.Getenv("STORAGE_URL"),
			ServiceKey:    os.Getenv("STORAGE_SERVICE_KEY"),
			CVBucket:      cvBucket,
			GuestCVBucket: guestBucket,
			SignedURLTTL:  ttl,
		}
	})
	return storageConfig
}
