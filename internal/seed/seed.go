package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/unicommunity/internal/app/models/dto"
	"github.com/yigit/unicommunity/internal/pkg/apperrors"
)

// Registrar is the registration entry point used to create seed data
type Registrar interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
}

// DefaultData is a demo university hierarchy, registered parent first
var DefaultData = []dto.RegisterRequest{
	{UserType: "university", Name: "Demo University"},
	{UserType: "faculty", Name: "Engineering Faculty", UniversityName: "Demo University"},
	{UserType: "department", Name: "Computer Engineering", FacultyName: "Engineering Faculty"},
	{UserType: "department", Name: "Electrical Engineering", FacultyName: "Engineering Faculty"},
	{UserType: "faculty", Name: "Science Faculty", UniversityName: "Demo University"},
	{UserType: "department", Name: "Physics", FacultyName: "Science Faculty"},
}

// CreateDefaultData registers DefaultData through the registration service.
// Entries that already exist are skipped so the seed can run on every start.
// Courses are not seeded because course names are not unique.
func CreateDefaultData(ctx context.Context, registrar Registrar, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (University/Faculties/Departments)...")
	var finalErr error // collect errors without stopping the process

	for i := range DefaultData {
		req := DefaultData[i]
		_, err := registrar.Register(ctx, &req)
		switch {
		case err == nil:
			lgr.Info().Str("type", req.UserType).Str("name", req.Name).Msg("Default data created")
		case apperrors.Is(err, apperrors.ErrResourceAlreadyExists):
			lgr.Debug().Str("type", req.UserType).Str("name", req.Name).Msg("Default data already exists")
		default:
			lgr.Error().Err(err).Str("type", req.UserType).Str("name", req.Name).Msg("Error creating default data")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
