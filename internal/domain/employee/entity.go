package employee

import (
	"github.com/mealroll/console-backend-go/internal/domain/menu"
)

// Employee is a casual worker record as the upstream backend serves it.
// The record owns its attendance history; this system never mutates it
// locally except to append a newly recorded entry returned by the backend.
type Employee struct {
	ID                int                `json:"id"`
	EmployeeID        string             `json:"employee_id"`
	FingerID          string             `json:"finger_id"`
	Name              string             `json:"name"`
	Phone             string             `json:"phone"`
	Gender            Gender             `json:"gender"`
	Position          string             `json:"position"`
	Salary            menu.Amount        `json:"salary"`
	AttendanceHistory []AttendanceRecord `json:"attendance_history"`
}

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// AttendanceRecord belongs to exactly one employee. The food_menu list is
// singleton-or-empty by construction; only index 0 is meaningful.
type AttendanceRecord struct {
	ID               int              `json:"id"`
	AttendanceDate   string           `json:"attendance_date"` // YYYY-MM-DD
	AttendanceStatus AttendanceStatus `json:"attendance_status"`
	Time             string           `json:"time"`
	FoodMenu         []menu.FoodMenu  `json:"food_menu"`
}

// Menu returns the record's meal selection, if any.
func (r AttendanceRecord) Menu() (menu.FoodMenu, bool) {
	if len(r.FoodMenu) == 0 {
		return menu.FoodMenu{}, false
	}
	return r.FoodMenu[0], true
}

// ConsumedMeal reports whether the record counts toward consumption
// aggregates: Present with a recorded meal. A Present record that arrived
// without a food_menu entry is excluded, never an error.
func (r AttendanceRecord) ConsumedMeal() bool {
	return r.AttendanceStatus == StatusPresent && len(r.FoodMenu) > 0
}
