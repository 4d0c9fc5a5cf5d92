package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/resumebuilderpro/resume-api/internal/core/domain"
	"github.com/resumebuilderpro/resume-api/internal/core/ports"
)

// ResumeService implements the owner-scoped resume use cases.
type ResumeService struct {
	repo     ports.ResumeRepository
	renderer ports.Renderer
	logger   zerolog.Logger
}

func NewResumeService(repo ports.ResumeRepository, renderer ports.Renderer, logger zerolog.Logger) *ResumeService {
	return &ResumeService{repo: repo, renderer: renderer, logger: logger}
}

// Create stores a new resume for the owner and returns the full record,
// including the generated id and timestamps.
func (s *ResumeService) Create(ctx context.Context, in ports.CreateResumeInput) (*domain.Resume, error) {
	resume := &domain.Resume{
		OwnerID: in.OwnerID,
		Title:   in.Title,
		Payload: in.Payload,
		Status:  domain.StatusDraft,
	}
	if err := s.repo.Create(ctx, resume); err != nil {
		s.logger.Error().Err(err).Str("owner_id", in.OwnerID).Msg("failed to create resume")
		return nil, err
	}

	s.logger.Info().Str("resume_id", resume.ID).Str("owner_id", resume.OwnerID).Msg("resume created")
	return resume, nil
}

func (s *ResumeService) List(ctx context.Context, ownerID string) ([]*domain.Resume, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *ResumeService) Get(ctx context.Context, id, ownerID string) (*domain.Resume, error) {
	return s.repo.Find(ctx, id, ownerID)
}

// Update applies only the fields present in the partial input. Ownership
// is proved first; the owner of a resume cannot change.
func (s *ResumeService) Update(ctx context.Context, in ports.UpdateResumeInput) (*domain.Resume, error) {
	resume, err := s.repo.Find(ctx, in.ID, in.OwnerID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		resume.Title = *in.Title
	}
	if in.Status != nil {
		if !in.Status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		resume.Status = *in.Status
	}
	if in.Payload != nil {
		resume.Payload = *in.Payload
	}

	if err := s.repo.Update(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (s *ResumeService) Delete(ctx context.Context, id, ownerID string) error {
	removed, err := s.repo.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrResumeNotFound
	}
	s.logger.Info().Str("resume_id", id).Str("owner_id", ownerID).Msg("resume deleted")
	return nil
}

// Export hands an owner-verified resume to the rendering pipeline.
func (s *ResumeService) Export(ctx context.Context, id, ownerID string) (*ports.ExportResult, error) {
	resume, err := s.repo.Find(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.Render(resume)
	if err != nil {
		s.logger.Error().Err(err).Str("resume_id", id).Msg("failed to render resume")
		return nil, err
	}

	return &ports.ExportResult{
		Data:        data,
		Filename:    exportFilename(resume.Title, s.renderer.FileExtension()),
		ContentType: s.renderer.ContentType(),
	}, nil
}

// exportFilename strips anything that could break a Content-Disposition
// header, keeping letters, digits, spaces, dashes and underscores.
func exportFilename(title, ext string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	name := strings.TrimSpace(b.String())
	if name == "" {
		name = "resume"
	}
	return name + "_Resume" + ext
}
