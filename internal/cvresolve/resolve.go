// Package cvresolve turns a stored CV reference of unknown shape into
// something an employer can actually open.
//
// Historical data carries at least four shapes for "where is this file": a
// bare object path, a public URL, a previously-issued signed URL, and URLs
// pointing at a differently-configured deployment. Write paths now store
// canonical bucket-prefixed paths; this resolver is the compatibility shim
// for everything already in the database and can go away once rows are
// backfilled.
package cvresolve

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/teodor-vladconstantin/job-navigator/internal/service"
)

// ErrEmptyReference is returned for an empty or unusable reference before
// any network call is attempted.
var ErrEmptyReference = errors.New("cv reference is empty")

// ResolveError classifies resolution failures so callers can distinguish a
// missing bucket (object likely belongs to another deployment) from a
// generic failure.
type ResolveError struct {
	BucketMissing bool
	Err           error
}

func (e *ResolveError) Error() string {
	if e.BucketMissing {
		return fmt.Sprintf("cv resolve: bucket not found: %v", e.Err)
	}
	return fmt.Sprintf("cv resolve: %v", e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// Resolved is the outcome of a resolution. Either URL is set, or Data holds
// the object bytes from the direct-download fallback; in the latter case the
// caller must serve and drop the bytes, not retain them.
type Resolved struct {
	URL         string
	Data        []byte
	ContentType string
	Bucket      string
	Path        string
}

// Resolver resolves CV references against one deployment's storage.
type Resolver struct {
	store        service.ObjectStorage
	cvBucket     string
	guestBucket  string
	signTTL      int
	markerRe     *regexp.Regexp // .../object/{public|sign}/<bucket>/<path>
	signedRe     *regexp.Regexp // signed-URL shape, path up to the query string
	prefixRe     *regexp.Regexp // bare "<bucket>/<path>"
	objectMarker *regexp.Regexp
}

func NewResolver(store service.ObjectStorage, cvBucket, guestBucket string, signTTL int) *Resolver {
	buckets := regexp.QuoteMeta(cvBucket) + "|" + regexp.QuoteMeta(guestBucket)
	return &Resolver{
		store:        store,
		cvBucket:     cvBucket,
		guestBucket:  guestBucket,
		signTTL:      signTTL,
		markerRe:     regexp.MustCompile(`storage/v1/object/(?:public|sign)/(` + buckets + `)/([^?]+)`),
		signedRe:     regexp.MustCompile(`object/sign/(` + buckets + `)/([^?]+)`),
		prefixRe:     regexp.MustCompile(`^(` + buckets + `)/(.+)$`),
		objectMarker: regexp.MustCompile(`object/(?:public|sign)/(` + buckets + `)/(.*)$`),
	}
}

// normalizePath strips URL markers, duplicate slashes and known bucket
// prefixes from a raw reference, leaving a bare object path. Absolute URLs
// pass through untouched.
func (r *Resolver) normalizePath(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "http") {
		return cleaned
	}

	if m := r.objectMarker.FindStringSubmatch(cleaned); m != nil && m[2] != "" {
		cleaned = m[2]
	}

	cleaned = strings.TrimLeft(cleaned, "/")
	for strings.Contains(cleaned, "//") {
		cleaned = strings.ReplaceAll(cleaned, "//", "/")
	}
	cleaned = strings.TrimPrefix(cleaned, r.cvBucket+"/")
	cleaned = strings.TrimPrefix(cleaned, r.guestBucket+"/")
	return cleaned
}

// BucketAndPath resolves the owning bucket and bare object path for a raw
// reference. An explicit bucket in the reference wins over fallbackBucket.
func (r *Resolver) BucketAndPath(raw, fallbackBucket string) (bucket, path string) {
	bucket = fallbackBucket
	path = r.normalizePath(raw)

	if m := r.markerRe.FindStringSubmatch(raw); m != nil {
		bucket, path = m[1], m[2]
	}
	if m := r.prefixRe.FindStringSubmatch(raw); m != nil {
		bucket, path = m[1], m[2]
	}
	return bucket, path
}

// Resolve produces a renderable reference for raw, preferring a fresh signed
// URL. fallbackBucket applies when the reference itself names no bucket:
// the CV bucket for authenticated applications, the guest bucket for guest
// ones. An empty reference fails fast with no network call.
func (r *Resolver) Resolve(ctx context.Context, raw, fallbackBucket string) (*Resolved, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, &ResolveError{Err: ErrEmptyReference}
	}

	base := r.store.BaseURL()

	// A URL pointing at another deployment cannot be resolved further.
	if strings.HasPrefix(raw, "http") && base != "" && !strings.Contains(raw, base) {
		return &Resolved{URL: raw, Bucket: fallbackBucket, Path: raw}, nil
	}

	// A signed URL for this deployment may be near expiry: extract the
	// object path and issue a fresh one.
	if strings.HasPrefix(raw, base) && strings.Contains(raw, "/storage/v1/object/sign/") {
		if m := r.signedRe.FindStringSubmatch(raw); m != nil && m[2] != "" {
			return r.sign(ctx, m[1], m[2], raw)
		}
	}

	bucket, path := r.BucketAndPath(raw, fallbackBucket)

	// Same-deployment public URL: the marker regex already extracted the
	// object path; anything still URL-shaped at this point is final.
	if strings.HasPrefix(path, "http") {
		return &Resolved{URL: path, Bucket: bucket, Path: path}, nil
	}

	if path == "" {
		return nil, &ResolveError{Err: ErrEmptyReference}
	}

	return r.sign(ctx, bucket, path, raw)
}

func (r *Resolver) sign(ctx context.Context, bucket, path, raw string) (*Resolved, error) {
	signed, err := r.store.CreateSignedURL(ctx, bucket, path, r.signTTL)
	if err == nil {
		return &Resolved{URL: signed, Bucket: bucket, Path: path}, nil
	}

	if errors.Is(err, service.ErrBucketNotFound) {
		// Last resort: a raw URL may still open on whatever deployment
		// issued it.
		if strings.HasPrefix(raw, "http") {
			return &Resolved{URL: raw, Bucket: bucket, Path: raw}, nil
		}
		return nil, &ResolveError{BucketMissing: true, Err: err}
	}

	// Public URL fallback covers buckets configured public.
	if pub := r.store.PublicURL(bucket, path); pub != "" {
		return &Resolved{URL: pub, Bucket: bucket, Path: path}, nil
	}

	// Direct download as the final fallback; caller serves the bytes and
	// releases them when the preview closes.
	data, contentType, dlErr := r.store.Download(ctx, bucket, path)
	if dlErr != nil {
		if errors.Is(dlErr, service.ErrBucketNotFound) {
			return nil, &ResolveError{BucketMissing: true, Err: dlErr}
		}
		return nil, &ResolveError{Err: dlErr}
	}
	return &Resolved{Data: data, ContentType: contentType, Bucket: bucket, Path: path}, nil
}
