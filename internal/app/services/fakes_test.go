package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
)

// fakeBatchStore is an in-memory BatchStore mirroring the conditional
// seat semantics of the real repository.
type fakeBatchStore struct {
	batches      map[int]*models.Batch
	reserveCalls int
	releaseCalls int
}

func newFakeBatchStore(batches ...*models.Batch) *fakeBatchStore {
	s := &fakeBatchStore{batches: make(map[int]*models.Batch)}
	for _, b := range batches {
		s.batches[b.Year] = b
	}
	return s
}

func (s *fakeBatchStore) Create(_ context.Context, batch *models.Batch) error {
	if _, ok := s.batches[batch.Year]; ok {
		return apperrors.ErrBatchAlreadyExists
	}
	s.batches[batch.Year] = batch
	return nil
}

func (s *fakeBatchStore) GetAll(_ context.Context) ([]models.Batch, error) {
	out := make([]models.Batch, 0, len(s.batches))
	for _, b := range s.batches {
		out = append(out, *b)
	}
	return out, nil
}

func (s *fakeBatchStore) GetByYear(_ context.Context, year int) (*models.Batch, error) {
	b, ok := s.batches[year]
	if !ok {
		return nil, apperrors.ErrBatchNotFound
	}
	return b, nil
}

func (s *fakeBatchStore) DeleteByYear(_ context.Context, year int) (*models.Batch, error) {
	b, ok := s.batches[year]
	if !ok {
		return nil, apperrors.ErrBatchNotFound
	}
	delete(s.batches, year)
	return b, nil
}

func (s *fakeBatchStore) AddBranch(_ context.Context, year int, branch models.Branch) (*models.Batch, error) {
	b, ok := s.batches[year]
	if !ok {
		return nil, apperrors.ErrBatchNotFound
	}
	if b.Branch(branch.Name) != nil {
		return nil, apperrors.ErrBranchAlreadyExists
	}
	b.Branches = append(b.Branches, branch)
	return b, nil
}

func (s *fakeBatchStore) UpdateBranch(_ context.Context, year int, name models.Department, patch dto.UpdateBranchRequest) (*models.Batch, error) {
	b, ok := s.batches[year]
	if !ok {
		return nil, apperrors.ErrBatchNotFound
	}
	branch := b.Branch(name)
	if branch == nil {
		return nil, apperrors.ErrBranchNotFound
	}
	if patch.NewBranchName != "" {
		branch.Name = patch.NewBranchName
	}
	if patch.TotalStudentsIntake != 0 {
		branch.TotalStudentsIntake = patch.TotalStudentsIntake
	}
	if patch.CurrentSeatCount != 0 {
		branch.CurrentSeatCount = patch.CurrentSeatCount
	}
	return b, nil
}

func (s *fakeBatchStore) HasCapacity(_ context.Context, year int, name models.Department) (bool, error) {
	b, ok := s.batches[year]
	if !ok {
		return false, apperrors.ErrBatchNotFound
	}
	branch := b.Branch(name)
	if branch == nil {
		return false, apperrors.ErrBranchNotFound
	}
	return branch.CurrentSeatCount < branch.TotalStudentsIntake, nil
}

func (s *fakeBatchStore) ReserveSeat(_ context.Context, year int, name models.Department) error {
	s.reserveCalls++
	b, ok := s.batches[year]
	if !ok {
		return apperrors.ErrBatchNotFound
	}
	branch := b.Branch(name)
	if branch == nil {
		return apperrors.ErrBranchNotFound
	}
	if branch.CurrentSeatCount >= branch.TotalStudentsIntake {
		return apperrors.ErrSeatNotAvailable
	}
	branch.CurrentSeatCount++
	b.TotalEnrolledStudents++
	return nil
}

func (s *fakeBatchStore) ReleaseSeat(_ context.Context, year int, name models.Department) error {
	s.releaseCalls++
	b, ok := s.batches[year]
	if !ok {
		return apperrors.ErrBatchNotFound
	}
	branch := b.Branch(name)
	if branch == nil {
		return apperrors.ErrBranchNotFound
	}
	if branch.CurrentSeatCount > 0 {
		branch.CurrentSeatCount--
		b.TotalEnrolledStudents--
	}
	return nil
}

func (s *fakeBatchStore) VacantSeatsByYear(_ context.Context, year int) (*dto.VacantSeatsReport, error) {
	b, ok := s.batches[year]
	if !ok {
		return nil, apperrors.ErrBatchNotFound
	}

	report := &dto.VacantSeatsReport{
		Batch:         b.Year,
		TotalStudents: b.TotalEnrolledStudents,
		Branch:        make(map[string]dto.BranchVacancy, len(b.Branches)),
	}
	occupied := 0
	for _, branch := range b.Branches {
		report.TotalStudentsIntake += branch.TotalStudentsIntake
		occupied += branch.CurrentSeatCount
		report.Branch[string(branch.Name)] = dto.BranchVacancy{
			TotalStudents:       branch.CurrentSeatCount,
			TotalStudentsIntake: branch.TotalStudentsIntake,
			AvailableIntake:     branch.Available(),
		}
	}
	report.AvailableIntake = report.TotalStudentsIntake - occupied
	return report, nil
}

// fakeStudentStore is an in-memory StudentStore.
type fakeStudentStore struct {
	students map[string]*models.Student
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	s := &fakeStudentStore{students: make(map[string]*models.Student)}
	for _, st := range students {
		s.students[st.RollNumber] = st
	}
	return s
}

func (s *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	if _, ok := s.students[student.RollNumber]; ok {
		return apperrors.ErrRollNumberAlreadyExists
	}
	s.students[student.RollNumber] = student
	return nil
}

func (s *fakeStudentStore) GetByRollNumber(_ context.Context, rollNumber string) (*models.Student, error) {
	st, ok := s.students[rollNumber]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return st, nil
}

func (s *fakeStudentStore) Find(_ context.Context, filter bson.M) ([]models.Student, error) {
	var out []models.Student
	for _, st := range s.students {
		if dept, ok := filter["department"]; ok && st.Department != dept.(models.Department) {
			continue
		}
		if batch, ok := filter["batch"]; ok && st.Batch != batch.(int) {
			continue
		}
		out = append(out, *st)
	}
	if len(out) == 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	return out, nil
}

func (s *fakeStudentStore) FindByRollNumbers(_ context.Context, rollNumbers []string) ([]models.Student, error) {
	var out []models.Student
	for _, rn := range rollNumbers {
		if st, ok := s.students[rn]; ok {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (s *fakeStudentStore) Update(_ context.Context, rollNumber string, set bson.M) (*models.Student, error) {
	st, ok := s.students[rollNumber]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	for key, value := range set {
		switch key {
		case "name":
			st.Name = value.(string)
		case "mobileNumber":
			st.MobileNumber = value.(int64)
		case "currentSemester":
			st.CurrentSemester = value.(int)
		default:
			return nil, fmt.Errorf("unexpected update key %q", key)
		}
	}
	return st, nil
}

func (s *fakeStudentStore) DeleteByRollNumber(_ context.Context, rollNumber string) (*models.Student, error) {
	st, ok := s.students[rollNumber]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	delete(s.students, rollNumber)
	return st, nil
}

func (s *fakeStudentStore) AnalyticsByBatch(_ context.Context) ([]dto.StudentBatchAnalytics, error) {
	byYear := make(map[int]*dto.StudentBatchAnalytics)
	for _, st := range s.students {
		row, ok := byYear[st.Batch]
		if !ok {
			row = &dto.StudentBatchAnalytics{Year: st.Batch, Branches: make(map[string]int)}
			byYear[st.Batch] = row
		}
		row.TotalStudents++
		row.Branches[string(st.Department)]++
	}
	if len(byYear) == 0 {
		return nil, apperrors.ErrAnalyticsEmpty
	}
	out := make([]dto.StudentBatchAnalytics, 0, len(byYear))
	for _, row := range byYear {
		out = append(out, *row)
	}
	return out, nil
}

// fakeAttendanceStore is an in-memory AttendanceStore keyed by
// (rollNumber, day). It holds the student store the real pipeline
// reaches through $lookup.
type fakeAttendanceStore struct {
	records  map[string]*models.Attendance
	students *fakeStudentStore
}

func newFakeAttendanceStore(students *fakeStudentStore) *fakeAttendanceStore {
	return &fakeAttendanceStore{
		records:  make(map[string]*models.Attendance),
		students: students,
	}
}

func attendanceKey(rollNumber string, date time.Time) string {
	return fmt.Sprintf("%s@%s", rollNumber, date.Format("2006-01-02"))
}

func (s *fakeAttendanceStore) Create(_ context.Context, record *models.Attendance) error {
	key := attendanceKey(record.RollNumber, record.Date)
	if _, ok := s.records[key]; ok {
		return apperrors.ErrAttendanceAlreadyRecorded
	}
	s.records[key] = record
	return nil
}

func (s *fakeAttendanceStore) Amend(_ context.Context, rollNumber string, date time.Time, status models.AttendanceStatus) (*models.Attendance, error) {
	record, ok := s.records[attendanceKey(rollNumber, date)]
	if !ok {
		return nil, apperrors.ErrAttendanceNotFound
	}
	record.IsAbsent = status
	return record, nil
}

func (s *fakeAttendanceStore) Remove(_ context.Context, rollNumber string) error {
	for key, record := range s.records {
		if record.RollNumber == rollNumber {
			delete(s.records, key)
			return nil
		}
	}
	return apperrors.ErrAttendanceNotFound
}

func (s *fakeAttendanceStore) AbsenteesOn(_ context.Context, day time.Time) ([]string, error) {
	var out []string
	for _, record := range s.records {
		if record.Date.Equal(day) && record.IsAbsent == models.StatusAbsent {
			out = append(out, record.RollNumber)
		}
	}
	if len(out) == 0 {
		return nil, apperrors.ErrNoAbsenteesFound
	}
	return out, nil
}

func (s *fakeAttendanceStore) LowAttendance(_ context.Context, start, end time.Time) ([]dto.LowAttendanceRow, error) {
	// Mirrors the store pipeline, including its inverted accumulator:
	// absentDays counts present-status records, so the percentage is the
	// share of attended days.
	type tally struct{ absentDays, totalDays int }
	byRoll := make(map[string]*tally)

	for _, record := range s.records {
		if record.Date.Before(start) || record.Date.After(end) {
			continue
		}
		tl, ok := byRoll[record.RollNumber]
		if !ok {
			tl = &tally{}
			byRoll[record.RollNumber] = tl
		}
		tl.totalDays++
		if record.IsAbsent == models.StatusPresent {
			tl.absentDays++
		}
	}

	var out []dto.LowAttendanceRow
	for rollNumber, tl := range byRoll {
		percentage := float64(tl.absentDays) / float64(tl.totalDays) * 100
		if percentage >= 75 {
			continue
		}
		student, ok := s.students.students[rollNumber]
		if !ok {
			continue
		}
		out = append(out, dto.LowAttendanceRow{
			AttendancePercentage: percentage,
			StudentDetails:       *student,
		})
	}
	if len(out) == 0 {
		return nil, apperrors.ErrAnalyticsEmpty
	}
	return out, nil
}

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	users map[int64]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[int64]*models.User)}
	for _, u := range users {
		s.users[u.MobileNumber] = u
	}
	return s
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if _, ok := s.users[user.MobileNumber]; ok {
		return apperrors.ErrMobileNumberTaken
	}
	s.users[user.MobileNumber] = user
	return nil
}

func (s *fakeUserStore) GetByMobileNumber(_ context.Context, mobileNumber int64) (*models.User, error) {
	u, ok := s.users[mobileNumber]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) GetAll(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *fakeUserStore) Update(_ context.Context, mobileNumber int64, set bson.M) (*models.User, error) {
	u, ok := s.users[mobileNumber]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	for key, value := range set {
		switch key {
		case "name":
			u.Name = value.(string)
		case "password":
			u.Password = value.(string)
		default:
			return nil, fmt.Errorf("unexpected update key %q", key)
		}
	}
	return u, nil
}

func (s *fakeUserStore) Delete(_ context.Context, mobileNumber int64) error {
	if _, ok := s.users[mobileNumber]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(s.users, mobileNumber)
	return nil
}

func (s *fakeUserStore) CountByRole(_ context.Context, role models.Role) (int64, error) {
	var count int64
	for _, u := range s.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}
