package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/db"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
)

// BatchRepository is the seat ledger. It owns the occupancy invariant
// 0 <= currentSeatCount <= totalStudentsIntake for every branch: seat
// movements go through conditional increments, never read-modify-write.
type BatchRepository struct {
	coll *mongo.Collection
}

// NewBatchRepository creates a new batch repository
func NewBatchRepository(database *mongo.Database) *BatchRepository {
	return &BatchRepository{
		coll: database.Collection(db.BatchCollection),
	}
}

// Create inserts a new batch. The unique year index rejects duplicates.
func (r *BatchRepository) Create(ctx context.Context, batch *models.Batch) error {
	_, err := r.coll.InsertOne(ctx, batch)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrBatchAlreadyExists
		}
		return fmt.Errorf("error creating batch: %w", err)
	}
	return nil
}

// GetAll retrieves all batches
func (r *BatchRepository) GetAll(ctx context.Context) ([]models.Batch, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error retrieving batches: %w", err)
	}
	defer cursor.Close(ctx)

	var batches []models.Batch
	if err := cursor.All(ctx, &batches); err != nil {
		return nil, fmt.Errorf("error decoding batches: %w", err)
	}

	return batches, nil
}

// GetByYear retrieves a batch by its year
func (r *BatchRepository) GetByYear(ctx context.Context, year int) (*models.Batch, error) {
	var batch models.Batch
	err := r.coll.FindOne(ctx, bson.M{"year": year}).Decode(&batch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrBatchNotFound
		}
		return nil, fmt.Errorf("error retrieving batch: %w", err)
	}

	return &batch, nil
}

// DeleteByYear deletes a batch and returns the removed document.
func (r *BatchRepository) DeleteByYear(ctx context.Context, year int) (*models.Batch, error) {
	var deleted models.Batch
	err := r.coll.FindOneAndDelete(ctx, bson.M{"year": year}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrBatchNotFound
		}
		return nil, fmt.Errorf("error deleting batch: %w", err)
	}

	return &deleted, nil
}

// AddBranch appends a branch to an existing batch in one conditional
// update: the filter only matches when no branch with that name exists.
func (r *BatchRepository) AddBranch(ctx context.Context, year int, branch models.Branch) (*models.Batch, error) {
	filter := bson.M{
		"year":          year,
		"branches.name": bson.M{"$ne": branch.Name},
	}
	update := bson.M{"$push": bson.M{"branches": branch}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Batch
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.classifyBranchMiss(ctx, year, branch.Name, apperrors.ErrBranchAlreadyExists)
		}
		return nil, fmt.Errorf("error adding branch: %w", err)
	}

	return &updated, nil
}

// UpdateBranch patches a named branch in place. Zero-valued patch
// fields are skipped.
func (r *BatchRepository) UpdateBranch(ctx context.Context, year int, name models.Department, patch dto.UpdateBranchRequest) (*models.Batch, error) {
	set := bson.M{}
	if patch.NewBranchName != "" {
		set["branches.$.name"] = patch.NewBranchName
	}
	if patch.TotalStudentsIntake != 0 {
		set["branches.$.totalStudentsIntake"] = patch.TotalStudentsIntake
	}
	if patch.CurrentSeatCount != 0 {
		set["branches.$.currentSeatCount"] = patch.CurrentSeatCount
	}
	if len(set) == 0 {
		return r.GetByYear(ctx, year)
	}

	filter := bson.M{"year": year, "branches.name": name}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Batch
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.classifyBranchMiss(ctx, year, name, apperrors.ErrBranchNotFound)
		}
		return nil, fmt.Errorf("error updating branch: %w", err)
	}

	return &updated, nil
}

// HasCapacity reports whether the branch still has a free seat.
func (r *BatchRepository) HasCapacity(ctx context.Context, year int, name models.Department) (bool, error) {
	batch, err := r.GetByYear(ctx, year)
	if err != nil {
		return false, err
	}

	branch := batch.Branch(name)
	if branch == nil {
		return false, apperrors.ErrBranchNotFound
	}

	return branch.CurrentSeatCount < branch.TotalStudentsIntake, nil
}

// ReserveSeat takes one seat in the branch with a single conditional
// update: the filter matches only while currentSeatCount is strictly
// below totalStudentsIntake, so concurrent reservations cannot overshoot
// the intake. Returns ErrSeatNotAvailable when the branch is full.
func (r *BatchRepository) ReserveSeat(ctx context.Context, year int, name models.Department) error {
	res, err := r.coll.UpdateOne(ctx,
		seatAvailableFilter(year, name),
		occupancyUpdate(1),
		options.Update().SetArrayFilters(branchArrayFilters(name)),
	)
	if err != nil {
		return fmt.Errorf("error reserving seat: %w", err)
	}

	if res.MatchedCount == 0 {
		return r.classifyBranchMiss(ctx, year, name, apperrors.ErrSeatNotAvailable)
	}

	return nil
}

// ReleaseSeat returns one seat to the branch, guarded so occupancy never
// drops below zero. Releasing an already-empty branch is a no-op.
func (r *BatchRepository) ReleaseSeat(ctx context.Context, year int, name models.Department) error {
	res, err := r.coll.UpdateOne(ctx,
		seatOccupiedFilter(year, name),
		occupancyUpdate(-1),
		options.Update().SetArrayFilters(branchArrayFilters(name)),
	)
	if err != nil {
		return fmt.Errorf("error releasing seat: %w", err)
	}

	if res.MatchedCount == 0 {
		// Missing batch/branch is still an error; a zero occupancy is not.
		if err := r.classifyBranchMiss(ctx, year, name, nil); err != nil {
			return err
		}
	}

	return nil
}

// VacantSeatsByYear computes seat utilization for a year at batch and
// per-branch granularity via the store's aggregation pipeline.
func (r *BatchRepository) VacantSeatsByYear(ctx context.Context, year int) (*dto.VacantSeatsReport, error) {
	cursor, err := r.coll.Aggregate(ctx, vacantSeatsPipeline(year))
	if err != nil {
		return nil, fmt.Errorf("vacant seats aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []dto.VacantSeatsReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("vacant seats cursor error: %w", err)
	}

	if len(reports) == 0 {
		return nil, apperrors.ErrBatchNotFound
	}

	return &reports[0], nil
}

// classifyBranchMiss resolves a zero-match conditional update into the
// precise error: missing batch, missing branch, or the fallback (full
// branch, duplicate branch, ...) when both exist.
func (r *BatchRepository) classifyBranchMiss(ctx context.Context, year int, name models.Department, fallback error) error {
	batch, err := r.GetByYear(ctx, year)
	if err != nil {
		return err
	}
	if batch.Branch(name) == nil {
		if errors.Is(fallback, apperrors.ErrBranchAlreadyExists) {
			// AddBranch excludes the name in its filter, so the branch
			// may legitimately exist here.
			return fallback
		}
		return apperrors.ErrBranchNotFound
	}
	return fallback
}
