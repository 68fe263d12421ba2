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

// StudentRepository handles student persistence. Roll numbers are the
// natural key; the unique index on rollNumber backs that.
type StudentRepository struct {
	coll *mongo.Collection
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(database *mongo.Database) *StudentRepository {
	return &StudentRepository{
		coll: database.Collection(db.StudentCollection),
	}
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	_, err := r.coll.InsertOne(ctx, student)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrRollNumberAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByRollNumber retrieves a single student by roll number.
func (r *StudentRepository) GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	var student models.Student
	err := r.coll.FindOne(ctx, bson.M{"rollNumber": rollNumber}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// Find retrieves students matching the given filter. An empty result is
// reported as not found so callers never serve empty listings silently.
func (r *StudentRepository) Find(ctx context.Context, filter bson.M) ([]models.Student, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("error decoding students: %w", err)
	}

	if len(students) == 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	return students, nil
}

// FindByRollNumbers retrieves the students whose roll numbers appear in
// the given set. Missing roll numbers are simply absent from the result.
func (r *StudentRepository) FindByRollNumbers(ctx context.Context, rollNumbers []string) ([]models.Student, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"rollNumber": bson.M{"$in": rollNumbers}})
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("error decoding students: %w", err)
	}

	return students, nil
}

// Update applies a partial $set to the student and returns the updated
// document.
func (r *StudentRepository) Update(ctx context.Context, rollNumber string, set bson.M) (*models.Student, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Student
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"rollNumber": rollNumber}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return &updated, nil
}

// DeleteByRollNumber removes a student and returns the deleted document
// so the caller can release the seat it occupied.
func (r *StudentRepository) DeleteByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	var deleted models.Student
	err := r.coll.FindOneAndDelete(ctx, bson.M{"rollNumber": rollNumber}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error deleting student: %w", err)
	}

	return &deleted, nil
}

// AnalyticsByBatch groups the student body per admission year with
// per-department head counts.
func (r *StudentRepository) AnalyticsByBatch(ctx context.Context) ([]dto.StudentBatchAnalytics, error) {
	cursor, err := r.coll.Aggregate(ctx, studentAnalyticsPipeline())
	if err != nil {
		return nil, fmt.Errorf("student analytics aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []dto.StudentBatchAnalytics
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("student analytics cursor error: %w", err)
	}

	if len(rows) == 0 {
		return nil, apperrors.ErrAnalyticsEmpty
	}

	return rows, nil
}

// studentAnalyticsPipeline counts students per (batch, department), then
// folds the departments of each batch into a name-keyed object.
func studentAnalyticsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"batch": "$batch", "department": "$department"},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$_id.batch",
			"totalStudents": bson.M{"$sum": "$count"},
			"branches": bson.M{"$push": bson.M{
				"k": "$_id.department",
				"v": "$count",
			}},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":           0,
			"year":          "$_id",
			"totalStudents": 1,
			"branches":      bson.M{"$arrayToObject": "$branches"},
		}}},
		{{Key: "$sort", Value: bson.M{"year": 1}}},
	}
}
