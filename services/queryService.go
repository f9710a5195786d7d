package services

import (
	"ClinicRecords/repositories"
	"context"
)

type QueryService struct {
	repository *repositories.QueryRepository
}

func NewQueryService(repository *repositories.QueryRepository) *QueryService {
	return &QueryService{repository: repository}
}

func (s *QueryService) Search(ctx context.Context, table, search string) ([]repositories.Row, error) {
	return s.repository.Search(ctx, table, search)
}
