package services

import (
	"context"
	"testing"

	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/pkg/apperrors"
)

func TestUniversityRecords(t *testing.T) {
	st := seededStore(t)
	svc := st.recordService()
	ctx := context.Background()

	review, err := svc.CreateReview(ctx, "Bogazici", "Great campus")
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if review.ID == 0 || review.UniversityID != st.universities.rows[0].ID {
		t.Errorf("review = %+v", review)
	}

	contact, err := svc.CreateContact(ctx, "Bogazici", &models.Contact{Name: "Registrar", Email: "r@example.edu", PhoneNumber: "1"})
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if contact.UniversityID != st.universities.rows[0].ID {
		t.Errorf("contact = %+v", contact)
	}

	if _, err := svc.CreateReview(ctx, "Nowhere", "x"); !apperrors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("unknown university: got %v", err)
	}
	if _, err := svc.CreateContact(ctx, "", &models.Contact{}); !apperrors.Is(err, apperrors.ErrIncompleteData) {
		t.Errorf("blank university: got %v", err)
	}
}
