package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teodor-vladconstantin/job-navigator/internal/dto"
	"github.com/teodor-vladconstantin/job-navigator/internal/model"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

type fakeProfileStore struct {
	profiles map[uuid.UUID]*model.Profile
}

func (f *fakeProfileStore) FindByUserID(userID uuid.UUID) (*model.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

type fakeJobStore struct {
	jobs map[uuid.UUID]*model.JobWithCompany
}

func (f *fakeJobStore) FindByID(id uuid.UUID) (*model.JobWithCompany, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return j, nil
}

type fakeApplicationStore struct {
	existing map[string]bool // jobID|candidateID
	created  []*model.Application
	affected int64
}

func (f *fakeApplicationStore) ExistsForJobAndCandidate(jobID, candidateID uuid.UUID) (bool, error) {
	return f.existing[jobID.String()+"|"+candidateID.String()], nil
}

func (f *fakeApplicationStore) Create(app *model.Application) error {
	f.created = append(f.created, app)
	return nil
}

func (f *fakeApplicationStore) ListByCandidate(uuid.UUID) ([]model.ApplicationWithJob, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListByEmployer(uuid.UUID) ([]model.ApplicationWithJob, error) {
	return nil, nil
}

func (f *fakeApplicationStore) UpdateStatusForEmployer(id, employerID uuid.UUID, status string) (int64, error) {
	return f.affected, nil
}

type fakeGuestStore struct {
	created []*model.GuestApplication
}

func (f *fakeGuestStore) Create(app *model.GuestApplication) error {
	f.created = append(f.created, app)
	return nil
}

func (f *fakeGuestStore) ListByEmployer(uuid.UUID) ([]model.GuestApplicationWithJob, error) {
	return nil, nil
}

type fakeUploader struct {
	uploads  int
	lastPath string
	failWith error
}

func (f *fakeUploader) Upload(_ context.Context, bucket, path string, data []byte, contentType string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.uploads++
	f.lastPath = path
	return nil
}

func (f *fakeUploader) CreateSignedURL(context.Context, string, string, int) (string, error) {
	return "", nil
}

func (f *fakeUploader) PublicURL(string, string) string { return "" }

func (f *fakeUploader) Download(context.Context, string, string) ([]byte, string, error) {
	return nil, "", nil
}

func (f *fakeUploader) BaseURL() string { return "" }

type applyFixture struct {
	uc           *ApplicationUsecase
	profiles     *fakeProfileStore
	jobs         *fakeJobStore
	applications *fakeApplicationStore
	guests       *fakeGuestStore
	storage      *fakeUploader
	candidateID  uuid.UUID
	jobID        uuid.UUID
}

func newApplyFixture() *applyFixture {
	candidateID := uuid.New()
	jobID := uuid.New()
	f := &applyFixture{
		profiles: &fakeProfileStore{profiles: map[uuid.UUID]*model.Profile{
			candidateID: {
				UserID: candidateID,
				Role:   model.RoleCandidate,
				CvURL:  "cvs/" + candidateID.String() + "/abc-cv.pdf",
			},
		}},
		jobs: &fakeJobStore{jobs: map[uuid.UUID]*model.JobWithCompany{
			jobID: {Job: model.Job{ID: jobID, Status: "active"}},
		}},
		applications: &fakeApplicationStore{existing: map[string]bool{}},
		guests:       &fakeGuestStore{},
		storage:      &fakeUploader{},
		candidateID:  candidateID,
		jobID:        jobID,
	}
	f.uc = NewApplicationUsecase(f.applications, f.guests, f.profiles, f.jobs, f.storage, "guest-cvs", zap.NewNop())
	return f
}

func TestApplyHappyPath(t *testing.T) {
	f := newApplyFixture()

	app, err := f.uc.Apply(f.candidateID, f.jobID)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if app.Status != model.ApplicationStatusSubmitted {
		t.Errorf("status = %q, want %q", app.Status, model.ApplicationStatusSubmitted)
	}
	if want := f.profiles.profiles[f.candidateID].CvURL; app.CvURL != want {
		t.Errorf("cv url = %q, want profile snapshot %q", app.CvURL, want)
	}
	if len(f.applications.created) != 1 {
		t.Errorf("created %d applications, want 1", len(f.applications.created))
	}
}

func TestApplyPreconditions(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *applyFixture)
		wantErr error
	}{
		{
			name: "employer role",
			mutate: func(f *applyFixture) {
				f.profiles.profiles[f.candidateID].Role = model.RoleEmployer
			},
			wantErr: ErrNotCandidate,
		},
		{
			name: "no cv on profile",
			mutate: func(f *applyFixture) {
				f.profiles.profiles[f.candidateID].CvURL = ""
			},
			wantErr: ErrMissingCV,
		},
		{
			name: "job gone",
			mutate: func(f *applyFixture) {
				delete(f.jobs.jobs, f.jobID)
			},
			wantErr: ErrJobNotFound,
		},
		{
			name: "already applied",
			mutate: func(f *applyFixture) {
				f.applications.existing[f.jobID.String()+"|"+f.candidateID.String()] = true
			},
			wantErr: ErrAlreadyApplied,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newApplyFixture()
			tt.mutate(f)

			_, err := f.uc.Apply(f.candidateID, f.jobID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Apply() error = %v, want %v", err, tt.wantErr)
			}
			if len(f.applications.created) != 0 {
				t.Errorf("created %d applications, want none", len(f.applications.created))
			}
		})
	}
}

func validGuestRequest() dto.GuestApplyRequest {
	return dto.GuestApplyRequest{
		Name:        "Ana Pop",
		Email:       "ana@example.com",
		Phone:       "0712345678",
		AcceptTerms: true,
	}
}

func pdfUpload(size int) *CVUpload {
	return &CVUpload{
		Filename:    "Ana Pop CV.pdf",
		ContentType: "application/pdf",
		Data:        make([]byte, size),
	}
}

func TestGuestApplyHappyPath(t *testing.T) {
	f := newApplyFixture()

	app, err := f.uc.GuestApply(context.Background(), f.jobID, validGuestRequest(), pdfUpload(1024))
	if err != nil {
		t.Fatalf("GuestApply() error = %v", err)
	}
	if f.storage.uploads != 1 {
		t.Fatalf("uploads = %d, want 1", f.storage.uploads)
	}
	wantPrefix := "guest-cvs/" + f.jobID.String() + "/"
	if !strings.HasPrefix(app.CvURL, wantPrefix) {
		t.Errorf("cv url = %q, want prefix %q", app.CvURL, wantPrefix)
	}
	if !strings.HasSuffix(app.CvURL, "-Ana_Pop_CV.pdf") {
		t.Errorf("cv url = %q, want sanitized filename suffix", app.CvURL)
	}
	if app.CoverLetter != nil {
		t.Errorf("cover letter = %v, want nil for empty input", *app.CoverLetter)
	}
	if len(f.guests.created) != 1 {
		t.Errorf("created %d guest applications, want 1", len(f.guests.created))
	}
}

func TestGuestApplyKeepsCoverLetter(t *testing.T) {
	f := newApplyFixture()
	req := validGuestRequest()
	req.CoverLetter = "Sunt foarte interesată de acest rol."

	app, err := f.uc.GuestApply(context.Background(), f.jobID, req, pdfUpload(1024))
	if err != nil {
		t.Fatalf("GuestApply() error = %v", err)
	}
	if app.CoverLetter == nil || *app.CoverLetter != req.CoverLetter {
		t.Errorf("cover letter = %v, want %q", app.CoverLetter, req.CoverLetter)
	}
}

func TestGuestApplyRejections(t *testing.T) {
	tests := []struct {
		name    string
		req     func() dto.GuestApplyRequest
		file    *CVUpload
		wantErr error
	}{
		{
			name: "terms not accepted",
			req: func() dto.GuestApplyRequest {
				r := validGuestRequest()
				r.AcceptTerms = false
				return r
			},
			file:    pdfUpload(1024),
			wantErr: ErrTermsNotAccepted,
		},
		{
			name:    "no file",
			req:     validGuestRequest,
			file:    nil,
			wantErr: ErrFileRequired,
		},
		{
			name: "not a pdf",
			req:  validGuestRequest,
			file: &CVUpload{
				Filename:    "cv.docx",
				ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
				Data:        make([]byte, 1024),
			},
			wantErr: ErrNotPDF,
		},
		{
			name:    "over size limit",
			req:     validGuestRequest,
			file:    pdfUpload(MaxCVSize + 1),
			wantErr: ErrFileTooLarge,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newApplyFixture()

			_, err := f.uc.GuestApply(context.Background(), f.jobID, tt.req(), tt.file)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("GuestApply() error = %v, want %v", err, tt.wantErr)
			}
			if f.storage.uploads != 0 {
				t.Errorf("uploads = %d, want none", f.storage.uploads)
			}
			if len(f.guests.created) != 0 {
				t.Errorf("created %d guest applications, want none", len(f.guests.created))
			}
		})
	}
}

func TestGuestApplyInvalidPhone(t *testing.T) {
	f := newApplyFixture()
	req := validGuestRequest()
	req.Phone = "12345"

	_, err := f.uc.GuestApply(context.Background(), f.jobID, req, pdfUpload(1024))

	var formErr *util.FormError
	if !errors.As(err, &formErr) {
		t.Fatalf("GuestApply() error = %v, want *util.FormError", err)
	}
	if _, ok := formErr.Errors["phone"]; !ok {
		t.Errorf("form errors = %v, want entry for phone", formErr.Errors)
	}
	if f.storage.uploads != 0 {
		t.Errorf("uploads = %d, want none", f.storage.uploads)
	}
}

func TestGuestApplyUploadFailureWritesNoRow(t *testing.T) {
	f := newApplyFixture()
	f.storage.failWith = errors.New("storage unavailable")

	_, err := f.uc.GuestApply(context.Background(), f.jobID, validGuestRequest(), pdfUpload(1024))
	if err == nil {
		t.Fatal("GuestApply() error = nil, want upload failure")
	}
	if len(f.guests.created) != 0 {
		t.Errorf("created %d guest applications after failed upload, want none", len(f.guests.created))
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		affected int64
		wantErr  error
	}{
		{name: "moves to viewed", status: model.ApplicationStatusViewed, affected: 1},
		{name: "unknown status", status: "archived", affected: 1, wantErr: ErrInvalidTransition},
		{name: "foreign application", status: model.ApplicationStatusViewed, affected: 0, wantErr: ErrApplicationNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newApplyFixture()
			f.applications.affected = tt.affected

			err := f.uc.UpdateStatus(uuid.New(), uuid.New(), tt.status)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("UpdateStatus() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
