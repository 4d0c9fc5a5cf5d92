package record

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/resumebuilderpro/resume-api/internal/core/domain"
	"github.com/resumebuilderpro/resume-api/internal/core/ports"
)

// EnsureDemoUser creates the demo account when it does not exist yet and
// returns it either way. Called at startup when demo credentials are
// configured; returns nil without error when they are not.
func EnsureDemoUser(ctx context.Context, users ports.UserRepository, hasher ports.CredentialHasher, email, password, fullName string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, nil
	}

	existing, err := users.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	digest, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: digest,
		CreatedAt:    time.Now().UTC(),
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureDemoResumes seeds sample resumes for the demo account so a fresh
// deployment has something to show. A no-op when the account already owns
// any resume.
func EnsureDemoResumes(ctx context.Context, resumes ports.ResumeRepository, user *domain.User) error {
	if user == nil {
		return nil
	}

	existing, err := resumes.ListByOwner(ctx, user.ID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, resume := range sampleResumes(user) {
		if err := resumes.Create(ctx, resume); err != nil {
			return err
		}
	}
	return nil
}

func sampleResumes(user *domain.User) []*domain.Resume {
	firstName, lastName, _ := strings.Cut(user.FullName, " ")

	contact := func(summary string) domain.PersonalDetails {
		return domain.PersonalDetails{
			FirstName: firstName,
			LastName:  lastName,
			Email:     user.Email,
			Phone:     "+1 (555) 123-4567",
			City:      "San Francisco",
			State:     "CA",
			LinkedIn:  "https://linkedin.com/in/demo-user",
			Website:   "https://demo-portfolio.com",
			Summary:   summary,
		}
	}

	engineer := &domain.Resume{
		OwnerID: user.ID,
		Title:   "Software Engineer Resume",
		Status:  domain.StatusActive,
		Payload: domain.Payload{
			Personal: contact("Senior engineer building scalable web applications."),
			Experience: []domain.Experience{
				{
					ID:          uuid.NewString(),
					Company:     "Tech Innovations Inc.",
					Position:    "Senior Software Engineer",
					StartDate:   "2022-01",
					Current:     true,
					Description: "Led development of scalable web applications. Implemented CI/CD pipelines and mentored junior developers.",
				},
				{
					ID:          uuid.NewString(),
					Company:     "StartupXYZ",
					Position:    "Full Stack Developer",
					StartDate:   "2020-06",
					EndDate:     "2021-12",
					Description: "Built responsive web applications and designed RESTful APIs.",
				},
			},
			Education: []domain.Education{{
				ID:           uuid.NewString(),
				Institution:  "University of California, Berkeley",
				Degree:       "Bachelor of Science",
				FieldOfStudy: "Computer Science",
				StartDate:    "2016-08",
				EndDate:      "2020-05",
				GPA:          "3.8",
			}},
			Skills: domain.Skills{
				Technical: []string{"JavaScript", "TypeScript", "React", "Node.js", "Python", "PostgreSQL", "AWS", "Docker"},
				Soft:      []string{"Mentoring", "Agile/Scrum"},
			},
		},
	}

	manager := &domain.Resume{
		OwnerID: user.ID,
		Title:   "Product Manager Resume",
		Status:  domain.StatusDraft,
		Payload: domain.Payload{
			Personal: contact("Product manager for B2B SaaS platforms."),
			Experience: []domain.Experience{{
				ID:          uuid.NewString(),
				Company:     "Product Solutions Corp",
				Position:    "Senior Product Manager",
				StartDate:   "2021-03",
				Current:     true,
				Description: "Led product strategy and roadmap for a B2B SaaS platform serving 10,000+ users.",
			}},
			Education: []domain.Education{{
				ID:           uuid.NewString(),
				Institution:  "University of California, Berkeley",
				Degree:       "Bachelor of Science",
				FieldOfStudy: "Business Administration",
				StartDate:    "2016-08",
				EndDate:      "2020-05",
			}},
			Skills: domain.Skills{
				Technical: []string{"SQL", "Analytics", "Roadmapping"},
				Soft:      []string{"Stakeholder management", "Cross-functional leadership"},
			},
		},
	}

	return []*domain.Resume{engineer, manager}
}
