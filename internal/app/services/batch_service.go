package services

import (
	"context"
	"fmt"

	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
)

// BatchService manages batches and their branch seat pools.
type BatchService struct {
	batches BatchStore
}

// NewBatchService creates a new batch service
func NewBatchService(batches BatchStore) *BatchService {
	return &BatchService{batches: batches}
}

// CreateBatch creates a new batch for an enrollment year.
func (s *BatchService) CreateBatch(ctx context.Context, req dto.CreateBatchRequest) (*models.Batch, error) {
	branches := make([]models.Branch, 0, len(req.Branches))
	seen := make(map[models.Department]bool, len(req.Branches))
	total := 0

	for _, b := range req.Branches {
		if seen[b.Name] {
			return nil, apperrors.ErrBranchAlreadyExists
		}
		seen[b.Name] = true

		if b.CurrentSeatCount > b.TotalStudentsIntake {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("branch %s seat count %d exceeds intake %d", b.Name, b.CurrentSeatCount, b.TotalStudentsIntake))
		}

		branches = append(branches, models.Branch{
			Name:                b.Name,
			TotalStudentsIntake: b.TotalStudentsIntake,
			CurrentSeatCount:    b.CurrentSeatCount,
		})
		total += b.CurrentSeatCount
	}

	batch := &models.Batch{
		Year:                  req.Year,
		Branches:              branches,
		TotalEnrolledStudents: total,
	}

	if err := s.batches.Create(ctx, batch); err != nil {
		return nil, err
	}

	return batch, nil
}

// GetBatches returns every batch.
func (s *BatchService) GetBatches(ctx context.Context) ([]models.Batch, error) {
	return s.batches.GetAll(ctx)
}

// GetBatch returns the batch for a year.
func (s *BatchService) GetBatch(ctx context.Context, year int) (*models.Batch, error) {
	return s.batches.GetByYear(ctx, year)
}

// DeleteBatch removes the batch for a year and returns it.
func (s *BatchService) DeleteBatch(ctx context.Context, year int) (*models.Batch, error) {
	return s.batches.DeleteByYear(ctx, year)
}

// AddBranch adds a new branch seat pool to an existing batch.
func (s *BatchService) AddBranch(ctx context.Context, year int, req dto.AddBranchRequest) (*models.Batch, error) {
	if req.CurrentSeatCount > req.TotalStudentsIntake {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("branch %s seat count %d exceeds intake %d", req.Name, req.CurrentSeatCount, req.TotalStudentsIntake))
	}

	return s.batches.AddBranch(ctx, year, models.Branch{
		Name:                req.Name,
		TotalStudentsIntake: req.TotalStudentsIntake,
		CurrentSeatCount:    req.CurrentSeatCount,
	})
}

// UpdateBranch patches a branch of an existing batch. A patch that would
// leave the branch occupancy above its intake is rejected before the
// write, combining patched and stored values.
func (s *BatchService) UpdateBranch(ctx context.Context, year int, name models.Department, req dto.UpdateBranchRequest) (*models.Batch, error) {
	if req.CurrentSeatCount != 0 || req.TotalStudentsIntake != 0 {
		batch, err := s.batches.GetByYear(ctx, year)
		if err != nil {
			return nil, err
		}

		branch := batch.Branch(name)
		if branch == nil {
			return nil, apperrors.ErrBranchNotFound
		}

		seats := branch.CurrentSeatCount
		if req.CurrentSeatCount != 0 {
			seats = req.CurrentSeatCount
		}
		intake := branch.TotalStudentsIntake
		if req.TotalStudentsIntake != 0 {
			intake = req.TotalStudentsIntake
		}

		if seats > intake {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("branch %s seat count %d exceeds intake %d", name, seats, intake))
		}
	}

	return s.batches.UpdateBranch(ctx, year, name, req)
}

// VacantSeats returns the seat-utilization report for a year.
func (s *BatchService) VacantSeats(ctx context.Context, year int) (*dto.VacantSeatsReport, error) {
	return s.batches.VacantSeatsByYear(ctx, year)
}
