package model

import (
	"fmt"
	"strings"
	"time"
)

// DefaultPassword is issued to new accounts and must be changed at first login.
const DefaultPassword = "password"

type Role int

const (
	Patient Role = iota
	Doctor
	Pharmacist
	Administrator
)

func (r Role) String() string {
	switch r {
	case Patient:
		return "Patient"
	case Doctor:
		return "Doctor"
	case Pharmacist:
		return "Pharmacist"
	case Administrator:
		return "Administrator"
	}
	return "UNKNOWN ROLE"
}

func ParseRole(s string) (Role, error) {
	for _, role := range []Role{Patient, Doctor, Pharmacist, Administrator} {
		if strings.EqualFold(s, role.String()) {
			return role, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

type User struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Password  string `yaml:"password"`
	Role      Role   `yaml:"role"`
	Gender    string `yaml:"gender"`
	Age       int    `yaml:"age"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone"`
	BloodType string `yaml:"blood_type"`
}

func (u User) MustChangePassword() bool {
	return u.Password == DefaultPassword
}

type AppointmentStatus int

const (
	Pending AppointmentStatus = iota
	Confirmed
	Declined
	Cancelled
	Completed
)

func (s AppointmentStatus) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Confirmed:
		return "Confirmed"
	case Declined:
		return "Declined"
	case Cancelled:
		return "Cancelled"
	case Completed:
		return "Completed"
	}
	return "UNKNOWN STATUS"
}

func (s *AppointmentStatus) UnmarshalText(text []byte) error {
	for _, status := range []AppointmentStatus{Pending, Confirmed, Declined, Cancelled, Completed} {
		if strings.EqualFold(string(text), status.String()) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown appointment status %q", text)
}

// Active appointments still hold their slot.
func (s AppointmentStatus) Active() bool {
	return s == Pending || s == Confirmed
}

type Slot struct {
	DoctorID string    `yaml:"doctor"`
	Start    time.Time `yaml:"start"`
}

type Appointment struct {
	ID        string            `yaml:"id"`
	PatientID string            `yaml:"patient"`
	Slot      `yaml:",inline"`
	Status    AppointmentStatus `yaml:"status"`
}

type Medicine struct {
	Name          string `yaml:"name"`
	Stock         int    `yaml:"stock"`
	LowStockAlert int    `yaml:"low_stock_alert"`
}

func (m Medicine) Low() bool {
	return m.Stock <= m.LowStockAlert
}

type Replenishment struct {
	ID       string `yaml:"id"`
	Medicine string `yaml:"medicine"`
	Quantity int    `yaml:"quantity"`
	Approved bool   `yaml:"approved"`
}

type RecordEntry struct {
	PatientID     string    `yaml:"patient"`
	AppointmentID string    `yaml:"appointment"`
	Date          time.Time `yaml:"date"`
	Diagnosis     string    `yaml:"diagnosis"`
	Treatment     string    `yaml:"treatment"`
}

const (
	DateFormat     = "02/01/06"
	DateTimeFormat = "02/01/06 15:04"
)
