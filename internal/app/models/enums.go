package models

// Department identifies a branch within a batch. The set is closed;
// inputs are validated at the binding layer.
type Department string

const (
	DepartmentCE Department = "CE"
	DepartmentME Department = "ME"
	DepartmentEE Department = "EE"
	DepartmentEC Department = "EC"
	DepartmentCS Department = "CS"
)

// Departments lists every valid department.
var Departments = []Department{
	DepartmentCE,
	DepartmentME,
	DepartmentEE,
	DepartmentEC,
	DepartmentCS,
}

// IsValid reports whether d belongs to the closed department set.
func (d Department) IsValid() bool {
	for _, dep := range Departments {
		if d == dep {
			return true
		}
	}
	return false
}

// AttendanceStatus is the two-valued per-day attendance marker. The field
// keeps its historical name "isAbsent" on the wire and in the store.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
)

// IsValid reports whether s is one of the two attendance statuses.
func (s AttendanceStatus) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Role is the account role for API users.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff
}
