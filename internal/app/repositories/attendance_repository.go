package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/db"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
)

// AttendanceRepository persists one attendance mark per student per day.
// The unique (rollNumber, date) index enforces the one-per-day rule even
// under concurrent writers.
type AttendanceRepository struct {
	coll *mongo.Collection
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(database *mongo.Database) *AttendanceRepository {
	return &AttendanceRepository{
		coll: database.Collection(db.AttendanceCollection),
	}
}

// Create records a mark for the student's day. A second mark for the
// same (rollNumber, date) is rejected as already recorded.
func (r *AttendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrAttendanceAlreadyRecorded
		}
		return fmt.Errorf("error creating attendance record: %w", err)
	}
	return nil
}

// Amend rewrites the status of an existing mark and returns the updated
// record.
func (r *AttendanceRepository) Amend(ctx context.Context, rollNumber string, date time.Time, status models.AttendanceStatus) (*models.Attendance, error) {
	filter := bson.M{"rollNumber": rollNumber, "date": date}
	update := bson.M{"$set": bson.M{
		"isAbsent":  status,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var amended models.Attendance
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&amended)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error amending attendance record: %w", err)
	}

	return &amended, nil
}

// Remove deletes one attendance record for the roll number. The filter
// carries no date, so an arbitrary record of the student is removed.
func (r *AttendanceRepository) Remove(ctx context.Context, rollNumber string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"rollNumber": rollNumber})
	if err != nil {
		return fmt.Errorf("error deleting attendance record: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrAttendanceNotFound
	}
	return nil
}

// AbsenteesOn lists the roll numbers marked absent on the given day.
func (r *AttendanceRepository) AbsenteesOn(ctx context.Context, day time.Time) ([]string, error) {
	filter := bson.M{"date": day, "isAbsent": models.StatusAbsent}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving absentees: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.Attendance
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding absentees: %w", err)
	}

	if len(records) == 0 {
		return nil, apperrors.ErrNoAbsenteesFound
	}

	rollNumbers := make([]string, 0, len(records))
	for _, record := range records {
		rollNumbers = append(rollNumbers, record.RollNumber)
	}

	return rollNumbers, nil
}

// LowAttendance runs the low-attendance aggregation over the inclusive
// date window and joins the matching student documents.
func (r *AttendanceRepository) LowAttendance(ctx context.Context, start, end time.Time) ([]dto.LowAttendanceRow, error) {
	cursor, err := r.coll.Aggregate(ctx, lowAttendancePipeline(start, end))
	if err != nil {
		return nil, fmt.Errorf("low attendance aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []dto.LowAttendanceRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("low attendance cursor error: %w", err)
	}

	if len(rows) == 0 {
		return nil, apperrors.ErrAnalyticsEmpty
	}

	return rows, nil
}

// lowAttendancePipeline groups marks per roll number over the window and
// keeps students whose attendancePercentage falls under the threshold.
//
// The absentDays accumulator deliberately counts records whose status
// equals "present". That carries over the behavior this report has
// always had: absentDays holds the attended-day count, which makes the
// derived attendancePercentage correct while the field name lies. Fixing
// the name requires a coordinated change with report consumers.
func lowAttendancePipeline(start, end time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"date": bson.M{"$gte": start, "$lte": end},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$rollNumber",
			"totalDays": bson.M{"$sum": 1},
			"absentDays": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$eq": bson.A{"$isAbsent", models.StatusPresent}},
					1,
					0,
				},
			}},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"attendancePercentage": bson.M{
				"$multiply": bson.A{
					bson.M{"$divide": bson.A{"$absentDays", "$totalDays"}},
					100,
				},
			},
		}}},
		{{Key: "$match", Value: bson.M{
			"attendancePercentage": bson.M{"$lt": lowAttendanceThreshold},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         db.StudentCollection,
			"localField":   "_id",
			"foreignField": "rollNumber",
			"as":           "studentDetails",
		}}},
		{{Key: "$unwind", Value: "$studentDetails"}},
		{{Key: "$project", Value: bson.M{
			"_id":                  0,
			"attendancePercentage": 1,
			"studentDetails":       1,
		}}},
	}
}

// lowAttendanceThreshold is the attendancePercentage below which a
// student appears in the defaulter report.
const lowAttendanceThreshold = 75
