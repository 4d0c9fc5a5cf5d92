package ports

import (
	"context"

	"github.com/resumebuilderpro/resume-api/internal/core/domain"
)

// CreateResumeInput carries all data needed to create a resume.
type CreateResumeInput struct {
	OwnerID string
	Title   string
	Payload domain.Payload
}

// UpdateResumeInput is a partial update: nil fields are left untouched.
type UpdateResumeInput struct {
	ID      string
	OwnerID string
	Title   *string
	Status  *domain.Status
	Payload *domain.Payload
}

// ExportResult is the rendered artifact handed back by Export.
type ExportResult struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ResumeService defines the owner-scoped resume use cases. Every call
// takes the owner id extracted from the session token; a resume belonging
// to someone else is reported absent, never forbidden.
type ResumeService interface {
	Create(ctx context.Context, in CreateResumeInput) (*domain.Resume, error)
	List(ctx context.Context, ownerID string) ([]*domain.Resume, error)
	Get(ctx context.Context, id, ownerID string) (*domain.Resume, error)
	Update(ctx context.Context, in UpdateResumeInput) (*domain.Resume, error)
	Delete(ctx context.Context, id, ownerID string) error
	// Export renders an owner-verified resume through the configured
	// rendering pipeline.
	Export(ctx context.Context, id, ownerID string) (*ExportResult, error)
}
