package services

import (
	"errors"
	"fmt"

	"navjot.dev/internal/models"
)

// ErrProjectNotFound is returned for an unknown slug
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects []models.Project
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects []models.Project) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects in authored order
func (s *ProjectService) GetAll() []models.Project {
	return s.projects
}

// GetFeatured returns the projects flagged as featured
func (s *ProjectService) GetFeatured() []models.Project {
	var featured []models.Project
	for _, p := range s.projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// GetBySlug returns a specific project by slug
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	for i := range s.projects {
		if s.projects[i].Slug == slug {
			return &s.projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, slug)
}
