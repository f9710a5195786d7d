package services

import (
	"ClinicRecords/repositories"
	"context"
)

type AdminService struct {
	repository *repositories.AdminRepository
}

func NewAdminService(repository *repositories.AdminRepository) *AdminService {
	return &AdminService{repository: repository}
}

func (s *AdminService) Initialize(ctx context.Context) error {
	return s.repository.Initialize(ctx)
}

func (s *AdminService) Wipe(ctx context.Context) error {
	return s.repository.Wipe(ctx)
}
