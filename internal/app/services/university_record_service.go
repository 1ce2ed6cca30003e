package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/app/repositories"
)

// UniversityRecordService stores reviews and contacts attached to a university
type UniversityRecordService struct {
	universities UniversityStore
	reviews      ReviewStore
	contacts     ContactStore
}

// NewUniversityRecordService creates a new university record service
func NewUniversityRecordService(universities UniversityStore, reviews ReviewStore, contacts ContactStore) *UniversityRecordService {
	return &UniversityRecordService{
		universities: universities,
		reviews:      reviews,
		contacts:     contacts,
	}
}

// CreateReview attaches a review to the named university
func (s *UniversityRecordService) CreateReview(ctx context.Context, universityName, content string) (*models.Review, error) {
	universityID, err := s.universityID(ctx, universityName)
	if err != nil {
		return nil, err
	}

	review := &models.Review{UniversityID: universityID, Content: content}
	if _, err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("error creating review: %w", err)
	}
	return review, nil
}

// CreateContact attaches a contact point to the named university
func (s *UniversityRecordService) CreateContact(ctx context.Context, universityName string, contact *models.Contact) (*models.Contact, error) {
	universityID, err := s.universityID(ctx, universityName)
	if err != nil {
		return nil, err
	}

	contact.UniversityID = universityID
	if _, err := s.contacts.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("error creating contact: %w", err)
	}
	return contact, nil
}

func (s *UniversityRecordService) universityID(ctx context.Context, name string) (int64, error) {
	if anyBlank(name) {
		return 0, errIncompleteData
	}

	university, err := s.universities.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, errUniversityNotFound
		}
		return 0, fmt.Errorf("error getting university: %w", err)
	}
	return university.ID, nil
}
