package ports

import "github.com/resumebuilderpro/resume-api/internal/core/domain"

// Renderer turns a fully materialized resume into a downloadable artifact.
// The core's only obligation towards it is handing over an owner-verified,
// existent resume.
type Renderer interface {
	Render(resume *domain.Resume) ([]byte, error)
	ContentType() string
	// FileExtension is appended to the sanitized title when building the
	// download filename.
	FileExtension() string
}
