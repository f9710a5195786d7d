package services

import (
	"ClinicRecords/models"
	"ClinicRecords/repositories"
	"context"
)

type PhoneNumberService struct {
	repository *repositories.PhoneNumberRepository
}

func NewPhoneNumberService(repository *repositories.PhoneNumberRepository) *PhoneNumberService {
	return &PhoneNumberService{repository: repository}
}

func (s *PhoneNumberService) Add(ctx context.Context, number *models.PersonPhoneNumber) error {
	return s.repository.Add(ctx, number)
}

func (s *PhoneNumberService) ListByPerson(ctx context.Context, personID uint) ([]models.PersonPhoneNumber, error) {
	return s.repository.ListByPerson(ctx, personID)
}
