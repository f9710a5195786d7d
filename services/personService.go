package services

import (
	"ClinicRecords/models"
	"ClinicRecords/repositories"
	"context"
)

type PersonService struct {
	repository *repositories.PersonRepository
}

func NewPersonService(repository *repositories.PersonRepository) *PersonService {
	return &PersonService{repository: repository}
}

func (s *PersonService) Create(ctx context.Context, person *models.Person) error {
	return s.repository.Create(ctx, person)
}

func (s *PersonService) GetByID(ctx context.Context, id uint) (*models.Person, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *PersonService) AnyExists(ctx context.Context) (bool, error) {
	return s.repository.AnyExists(ctx)
}

func (s *PersonService) DeletePersonAndRelated(ctx context.Context, id uint) error {
	return s.repository.DeletePersonAndRelated(ctx, id)
}
