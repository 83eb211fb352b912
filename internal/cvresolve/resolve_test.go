package cvresolve

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/teodor-vladconstantin/job-navigator/internal/service"
)

const testBase = "https://abc.supabase.co"

type fakeStore struct {
	signErr     error
	publicURL   bool
	downloadErr error

	signCalls     int
	downloadCalls int
	lastBucket    string
	lastPath      string
}

func (f *fakeStore) BaseURL() string { return testBase }

func (f *fakeStore) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error {
	return nil
}

func (f *fakeStore) CreateSignedURL(ctx context.Context, bucket, path string, expiresIn int) (string, error) {
	f.signCalls++
	f.lastBucket, f.lastPath = bucket, path
	if f.signErr != nil {
		return "", f.signErr
	}
	return fmt.Sprintf("%s/storage/v1/object/sign/%s/%s?token=fresh", testBase, bucket, path), nil
}

func (f *fakeStore) PublicURL(bucket, path string) string {
	if !f.publicURL {
		return ""
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", testBase, bucket, path)
}

func (f *fakeStore) Download(ctx context.Context, bucket, path string) ([]byte, string, error) {
	f.downloadCalls++
	if f.downloadErr != nil {
		return nil, "", f.downloadErr
	}
	return []byte("%PDF-1.4"), "application/pdf", nil
}

func newTestResolver(store service.ObjectStorage) *Resolver {
	return NewResolver(store, "cvs", "guest-cvs", 300)
}

func TestResolve_ForeignURLPassesThrough(t *testing.T) {
	store := &fakeStore{}
	r := newTestResolver(store)

	raw := "https://other-project.supabase.co/storage/v1/object/public/cvs/u1/cv.pdf"
	got, err := r.Resolve(context.Background(), raw, "cvs")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.URL != raw {
		t.Errorf("URL = %q, want raw reference unchanged", got.URL)
	}
	if store.signCalls != 0 {
		t.Errorf("foreign URL should not be re-signed, got %d sign calls", store.signCalls)
	}
}

func TestResolve_SignedURLIsResigned(t *testing.T) {
	store := &fakeStore{}
	r := newTestResolver(store)

	raw := testBase + "/storage/v1/object/sign/guest-cvs/job1/old-cv.pdf?token=stale&exp=1"
	got, err := r.Resolve(context.Background(), raw, "cvs")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if store.lastBucket != "guest-cvs" || store.lastPath != "job1/old-cv.pdf" {
		t.Errorf("re-signed %s/%s, want guest-cvs/job1/old-cv.pdf", store.lastBucket, store.lastPath)
	}
	if got.URL == raw {
		t.Error("expected a fresh signed URL, got the stale one back")
	}
}

func TestResolve_BarePathWithBucketPrefix(t *testing.T) {
	store := &fakeStore{}
	r := newTestResolver(store)

	got, err := r.Resolve(context.Background(), "guest-cvs/job1/abc-cv.pdf", "cvs")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if store.lastBucket != "guest-cvs" {
		t.Errorf("bucket = %q, want prefix to win over fallback", store.lastBucket)
	}
	if store.lastPath != "job1/abc-cv.pdf" {
		t.Errorf("path = %q, want bucket prefix stripped", store.lastPath)
	}
	if got.URL == "" {
		t.Error("expected a signed URL")
	}
}

func TestResolve_BarePathWithoutPrefixUsesFallback(t *testing.T) {
	store := &fakeStore{}
	r := newTestResolver(store)

	if _, err := r.Resolve(context.Background(), "u1/cv.pdf", "guest-cvs"); err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if store.lastBucket != "guest-cvs" {
		t.Errorf("bucket = %q, want caller fallback", store.lastBucket)
	}
	if store.lastPath != "u1/cv.pdf" {
		t.Errorf("path = %q, want unchanged bare path", store.lastPath)
	}
}

func TestResolve_PublicURLMarkerIsStripped(t *testing.T) {
	store := &fakeStore{}
	r := newTestResolver(store)

	raw := testBase + "/storage/v1/object/public/cvs/u1/cv.pdf"
	if _, err := r.Resolve(context.Background(), raw, "guest-cvs"); err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if store.lastBucket != "cvs" || store.lastPath != "u1/cv.pdf" {
		t.Errorf("resolved %s/%s, want cvs/u1/cv.pdf", store.lastBucket, store.lastPath)
	}
}

func TestResolve_EmptyReference(t *testing.T) {
	store := &fakeStore{}
	r := newTestResolver(store)

	for _, raw := range []string{"", "   "} {
		_, err := r.Resolve(context.Background(), raw, "cvs")
		if err == nil {
			t.Fatalf("Resolve(%q) expected error, got nil", raw)
		}
		if !errors.Is(err, ErrEmptyReference) {
			t.Errorf("Resolve(%q) error = %v, want ErrEmptyReference", raw, err)
		}
	}
	if store.signCalls != 0 || store.downloadCalls != 0 {
		t.Error("empty reference must not trigger network calls")
	}
}

func TestResolve_BucketNotFoundIsClassified(t *testing.T) {
	store := &fakeStore{signErr: service.ErrBucketNotFound}
	r := newTestResolver(store)

	_, err := r.Resolve(context.Background(), "u1/cv.pdf", "cvs")
	if err == nil {
		t.Fatal("expected error")
	}
	var resErr *ResolveError
	if !errors.As(err, &resErr) || !resErr.BucketMissing {
		t.Errorf("error = %v, want ResolveError with BucketMissing", err)
	}
}

func TestResolve_BucketNotFoundRawURLLastResort(t *testing.T) {
	store := &fakeStore{signErr: service.ErrBucketNotFound}
	r := newTestResolver(store)

	raw := testBase + "/storage/v1/object/public/cvs/u1/cv.pdf"
	got, err := r.Resolve(context.Background(), raw, "cvs")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.URL != raw {
		t.Errorf("URL = %q, want raw URL as last resort", got.URL)
	}
}

func TestResolve_SignFailureFallsBackToPublicURL(t *testing.T) {
	store := &fakeStore{signErr: errors.New("object not found"), publicURL: true}
	r := newTestResolver(store)

	got, err := r.Resolve(context.Background(), "u1/cv.pdf", "cvs")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	want := testBase + "/storage/v1/object/public/cvs/u1/cv.pdf"
	if got.URL != want {
		t.Errorf("URL = %q, want public fallback %q", got.URL, want)
	}
	if store.downloadCalls != 0 {
		t.Error("public fallback should not download")
	}
}

func TestResolve_DownloadFallbackReturnsBytes(t *testing.T) {
	store := &fakeStore{signErr: errors.New("object not found")}
	r := newTestResolver(store)

	got, err := r.Resolve(context.Background(), "u1/cv.pdf", "cvs")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(got.Data) == 0 || got.ContentType != "application/pdf" {
		t.Errorf("expected downloaded bytes with content type, got %d bytes %q", len(got.Data), got.ContentType)
	}
	if got.URL != "" {
		t.Error("download fallback should not also set a URL")
	}
}

func TestBucketAndPath_Shapes(t *testing.T) {
	r := newTestResolver(&fakeStore{})
	cases := []struct {
		raw      string
		fallback string
		bucket   string
		path     string
	}{
		{"u1/cv.pdf", "cvs", "cvs", "u1/cv.pdf"},
		{"cvs/u1/cv.pdf", "guest-cvs", "cvs", "u1/cv.pdf"},
		{"guest-cvs/job1/x.pdf", "cvs", "guest-cvs", "job1/x.pdf"},
		{"/cvs//u1//cv.pdf", "guest-cvs", "guest-cvs", "u1/cv.pdf"},
		{testBase + "/storage/v1/object/sign/cvs/u1/cv.pdf?token=t", "guest-cvs", "cvs", "u1/cv.pdf"},
		{testBase + "/storage/v1/object/public/guest-cvs/job1/x.pdf", "cvs", "guest-cvs", "job1/x.pdf"},
	}
	for _, c := range cases {
		bucket, path := r.BucketAndPath(c.raw, c.fallback)
		if bucket != c.bucket || path != c.path {
			t.Errorf("BucketAndPath(%q, %q) = %s/%s, want %s/%s",
				c.raw, c.fallback, bucket, path, c.bucket, c.path)
		}
	}
}
