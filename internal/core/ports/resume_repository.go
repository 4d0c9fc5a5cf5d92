package ports

import (
	"context"

	"github.com/resumebuilderpro/resume-api/internal/core/domain"
)

// ResumeRepository defines persistence operations for resumes.
type ResumeRepository interface {
	// Create assigns a fresh id and timestamps, writes the primary record,
	// and adds the id to the owner's index and the global index.
	Create(ctx context.Context, resume *domain.Resume) error
	// Find returns the resume only when it exists and belongs to ownerID.
	// An ownership mismatch is indistinguishable from absence
	// (domain.ErrResumeNotFound in both cases).
	Find(ctx context.Context, id, ownerID string) (*domain.Resume, error)
	// ListByOwner returns the owner's resumes sorted by UpdatedAt
	// descending. Index entries whose primary record is gone are skipped.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Resume, error)
	// Update rewrites the primary record and refreshes UpdatedAt. Index
	// membership is untouched; ownership cannot change.
	Update(ctx context.Context, resume *domain.Resume) error
	// Delete removes the primary record and both index memberships after
	// proving ownership. Reports whether anything was removed.
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}
