package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teodor-vladconstantin/job-navigator/internal/cache"
	"github.com/teodor-vladconstantin/job-navigator/internal/dto"
	"github.com/teodor-vladconstantin/job-navigator/internal/model"
	"github.com/teodor-vladconstantin/job-navigator/internal/repository"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

type fakeCache struct {
	entries map[string][]byte
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	b, ok := value.([]byte)
	if !ok {
		return cache.ErrInvalidValue
	}
	f.entries[key] = b
	f.sets++
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string, value interface{}) error {
	b, ok := f.entries[key]
	if !ok {
		return cache.ErrNotFound
	}
	switch v := value.(type) {
	case *string:
		*v = string(b)
	case *[]byte:
		*v = b
	default:
		return cache.ErrInvalidValue
	}
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) Close() error { return nil }

func TestListActiveServedFromCache(t *testing.T) {
	c := newFakeCache()
	uc := NewJobUsecase(nil, nil, c, zap.NewNop())

	params := repository.JobListParams{
		Search:   "golang",
		Location: "Cluj-Napoca",
		Page:     1,
		PageSize: 20,
	}
	want := JobListResult{
		Jobs:  []model.JobWithCompany{{Job: model.Job{ID: uuid.New(), Title: "Golang Developer pentru echipa noastră"}}},
		Total: 1,
	}
	payload, err := json.Marshal(&want)
	if err != nil {
		t.Fatal(err)
	}
	c.entries[listingCacheKey(params)] = payload

	// A nil repository proves the database is never touched on a hit.
	got, err := uc.ListActive(context.Background(), params)
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	if got.Total != want.Total || len(got.Jobs) != 1 || got.Jobs[0].Title != want.Jobs[0].Title {
		t.Errorf("ListActive() = %+v, want cached %+v", got, want)
	}
}

func TestListingCacheKeyVariesPerParamTuple(t *testing.T) {
	base := repository.JobListParams{Search: "go", Location: "all", Page: 1, PageSize: 20}
	variants := []repository.JobListParams{
		{Search: "go", Location: "all", Page: 2, PageSize: 20},
		{Search: "go", Location: "Iași", Page: 1, PageSize: 20},
		{Search: "go", Location: "all", JobTypes: []string{"remote"}, Page: 1, PageSize: 20},
		{Search: "rust", Location: "all", Page: 1, PageSize: 20},
	}
	baseKey := listingCacheKey(base)
	for _, v := range variants {
		if listingCacheKey(v) == baseKey {
			t.Errorf("params %+v produced the same cache key as %+v", v, base)
		}
	}
	if listingCacheKey(base) != baseKey {
		t.Error("identical params produced different cache keys")
	}
}

func validJobRequest() dto.JobWriteRequest {
	return dto.JobWriteRequest{
		Title:       "Senior Go Developer",
		Description: "Căutăm un inginer cu experiență în servicii distribuite și baze de date relaționale.",
		Location:    "București",
		JobType:     model.JobTypeRemote,
		Seniority:   model.SenioritySenior,
		CompanyID:   uuid.NewString(),
	}
}

func intPtr(v int) *int { return &v }

func TestCreateJobRejectsBeforeAnyWrite(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *dto.JobWriteRequest)
		wantForm string // field key expected in the form error, if any
		wantErr  error
	}{
		{
			name:     "title too short",
			mutate:   func(r *dto.JobWriteRequest) { r.Title = "Dev" },
			wantForm: "title",
		},
		{
			name:     "description too short",
			mutate:   func(r *dto.JobWriteRequest) { r.Description = "Program în Go." },
			wantForm: "description",
		},
		{
			name:     "unknown job type",
			mutate:   func(r *dto.JobWriteRequest) { r.JobType = "freelance" },
			wantForm: "job_type",
		},
		{
			// no company selected gets the create-a-company-first
			// guidance, not a bare field error
			name:    "no company selected",
			mutate:  func(r *dto.JobWriteRequest) { r.CompanyID = "" },
			wantErr: ErrCompanyRequired,
		},
		{
			name: "salary bounds reversed",
			mutate: func(r *dto.JobWriteRequest) {
				r.SalaryMin = intPtr(9000)
				r.SalaryMax = intPtr(5000)
			},
			wantErr: ErrSalaryRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// nil repositories: every rejection must happen before a
			// database call.
			uc := NewJobUsecase(nil, nil, newFakeCache(), zap.NewNop())
			req := validJobRequest()
			tt.mutate(&req)

			_, err := uc.Create(uuid.New(), req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			var formErr *util.FormError
			if !errors.As(err, &formErr) {
				t.Fatalf("Create() error = %v, want *util.FormError", err)
			}
			if _, ok := formErr.Errors[tt.wantForm]; !ok {
				t.Errorf("form errors = %v, want entry for %q", formErr.Errors, tt.wantForm)
			}
		})
	}
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	uc := NewJobUsecase(nil, nil, newFakeCache(), zap.NewNop())

	err := uc.ChangeStatus(uuid.New(), uuid.New(), "archived")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("ChangeStatus() error = %v, want %v", err, ErrInvalidTransition)
	}
}
