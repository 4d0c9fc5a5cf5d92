package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/resumebuilderpro/resume-api/internal/core/domain"
	"github.com/resumebuilderpro/resume-api/internal/core/ports"
)

const (
	resumeKeyPrefix  = "resume:"
	resumesIndexKey  = "resumes:index"
	ownerIndexPrefix = "user_resumes:"
)

func resumeKey(id string) string        { return resumeKeyPrefix + id }
func ownerIndexKey(owner string) string { return ownerIndexPrefix + owner }

// storedResume is the persisted wire format of a resume record.
type storedResume struct {
	ID        string         `json:"id"`
	OwnerID   string         `json:"owner_id"`
	Title     string         `json:"title"`
	Payload   domain.Payload `json:"payload"`
	Status    string         `json:"status"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

// ResumeRepository persists resumes in the record store. Every resume is
// reachable through its primary key, the owner's index set, and the global
// index set; the three are kept consistent by best effort only.
type ResumeRepository struct {
	store ports.RecordStore
	now   func() time.Time
}

func NewResumeRepository(store ports.RecordStore) *ResumeRepository {
	return &ResumeRepository{store: store, now: time.Now}
}

// Create assigns the generated id and creation timestamps, writes the
// primary record, and indexes it under the owner and globally.
func (r *ResumeRepository) Create(ctx context.Context, resume *domain.Resume) error {
	if resume.ID == "" {
		resume.ID = uuid.NewString()
	}
	now := r.now().UTC()
	resume.CreatedAt = now
	resume.UpdatedAt = now

	value, err := marshalResume(resume)
	if err != nil {
		return err
	}
	if err := r.store.Put(ctx, resumeKey(resume.ID), value); err != nil {
		return err
	}
	if err := r.store.IndexAdd(ctx, ownerIndexKey(resume.OwnerID), resume.ID); err != nil {
		return err
	}
	return r.store.IndexAdd(ctx, resumesIndexKey, resume.ID)
}

// Find fetches a resume by id. Absence and ownership mismatch are
// deliberately indistinguishable so a caller cannot learn that a record
// exists but belongs to someone else.
func (r *ResumeRepository) Find(ctx context.Context, id, ownerID string) (*domain.Resume, error) {
	value, err := r.store.Get(ctx, resumeKey(id))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrResumeNotFound
		}
		return nil, err
	}
	resume, err := unmarshalResume(value)
	if err != nil {
		return nil, err
	}
	if resume.OwnerID != ownerID {
		return nil, domain.ErrResumeNotFound
	}
	return resume, nil
}

// ListByOwner resolves the owner's index and fetches each primary record.
// Dangling index entries are skipped: an id left behind by an interrupted
// delete must not fail the whole listing.
func (r *ResumeRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Resume, error) {
	ids, err := r.store.IndexMembers(ctx, ownerIndexKey(ownerID))
	if err != nil {
		return nil, err
	}

	resumes := make([]*domain.Resume, 0, len(ids))
	for _, id := range ids {
		value, err := r.store.Get(ctx, resumeKey(id))
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		resume, err := unmarshalResume(value)
		if err != nil {
			return nil, err
		}
		if resume.OwnerID != ownerID {
			continue
		}
		resumes = append(resumes, resume)
	}

	sort.Slice(resumes, func(i, j int) bool {
		return resumes[i].UpdatedAt.After(resumes[j].UpdatedAt)
	})
	return resumes, nil
}

// Update rewrites the primary record with a refreshed UpdatedAt. Callers
// prove ownership through Find first; index membership never changes here.
func (r *ResumeRepository) Update(ctx context.Context, resume *domain.Resume) error {
	resume.UpdatedAt = r.now().UTC()
	value, err := marshalResume(resume)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, resumeKey(resume.ID), value)
}

// Delete proves ownership, removes both index memberships, then the
// primary record. Reports false when the resume is absent or foreign.
func (r *ResumeRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	if _, err := r.Find(ctx, id, ownerID); err != nil {
		if errors.Is(err, domain.ErrResumeNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := r.store.IndexRemove(ctx, ownerIndexKey(ownerID), id); err != nil {
		return false, err
	}
	if err := r.store.IndexRemove(ctx, resumesIndexKey, id); err != nil {
		return false, err
	}
	return r.store.Delete(ctx, resumeKey(id))
}

func marshalResume(resume *domain.Resume) ([]byte, error) {
	return json.Marshal(storedResume{
		ID:        resume.ID,
		OwnerID:   resume.OwnerID,
		Title:     resume.Title,
		Payload:   resume.Payload,
		Status:    string(resume.Status),
		CreatedAt: resume.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: resume.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
}

func unmarshalResume(value []byte) (*domain.Resume, error) {
	var sr storedResume
	if err := json.Unmarshal(value, &sr); err != nil {
		return nil, fmt.Errorf("decode resume record: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, sr.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("decode resume record: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, sr.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("decode resume record: %w", err)
	}
	return &domain.Resume{
		ID:        sr.ID,
		OwnerID:   sr.OwnerID,
		Title:     sr.Title,
		Payload:   sr.Payload,
		Status:    domain.Status(sr.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
