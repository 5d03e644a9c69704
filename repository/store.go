package repository

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"hms/model"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedData string

var (
	ErrBadCredentials = errors.New("incorrect user id or password")
	ErrNotFound       = errors.New("not found")
	ErrDuplicate      = errors.New("already exists")
	ErrSlotTaken      = errors.New("slot is no longer available")
	ErrInvalidState   = errors.New("invalid state")
)

type seed struct {
	Users        []model.User          `yaml:"users"`
	Slots        []model.Slot          `yaml:"slots"`
	Appointments []model.Appointment   `yaml:"appointments"`
	Records      []model.RecordEntry   `yaml:"records"`
	Inventory    []model.Medicine      `yaml:"inventory"`
	Requests     []model.Replenishment `yaml:"requests"`
}

// Store keeps the clinic data in memory. It is owned by the interaction loop and is not safe for concurrent use.
type Store struct {
	users        map[string]model.User
	slots        []model.Slot
	appointments map[string]model.Appointment
	records      []model.RecordEntry
	inventory    map[string]model.Medicine
	requests     map[string]model.Replenishment
	newID        func() string
}

func Seeded() (*Store, error) {
	return Load(strings.NewReader(seedData))
}

func Open(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer file.Close()
	return Load(file)
}

func Load(r io.Reader) (*Store, error) {
	var data seed
	if err := yaml.NewDecoder(r).Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	s := &Store{
		users:        map[string]model.User{},
		slots:        data.Slots,
		appointments: map[string]model.Appointment{},
		records:      data.Records,
		inventory:    map[string]model.Medicine{},
		requests:     map[string]model.Replenishment{},
		newID:        uuid.NewString,
	}
	for _, user := range data.Users {
		if _, ok := s.users[user.ID]; ok {
			return nil, fmt.Errorf("user %s: %w", user.ID, ErrDuplicate)
		}
		s.users[user.ID] = user
	}
	for _, appointment := range data.Appointments {
		s.appointments[appointment.ID] = appointment
	}
	for _, medicine := range data.Inventory {
		s.inventory[medicine.Name] = medicine
	}
	for _, request := range data.Requests {
		s.requests[request.ID] = request
	}
	return s, nil
}

func (s *Store) Authenticate(id, password string) (model.User, error) {
	user, ok := s.users[strings.ToUpper(id)]
	if !ok || user.Password != password {
		return model.User{}, ErrBadCredentials
	}
	return user, nil
}

func (s *Store) User(id string) (model.User, bool) {
	user, ok := s.users[id]
	return user, ok
}

func (s *Store) ChangePassword(id, password string) error {
	user, ok := s.users[id]
	if !ok {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	user.Password = password
	s.users[id] = user
	return nil
}

func (s *Store) UpdateContact(id, email, phone string) error {
	user, ok := s.users[id]
	if !ok {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	user.Email, user.Phone = email, phone
	s.users[id] = user
	return nil
}

// Staff lists every non patient account ordered by id.
func (s *Store) Staff() []model.User {
	return s.usersWhere(func(u model.User) bool { return u.Role != model.Patient })
}

func (s *Store) Doctors() []model.User {
	return s.usersWhere(func(u model.User) bool { return u.Role == model.Doctor })
}

func (s *Store) usersWhere(keep func(model.User) bool) []model.User {
	result := []model.User{}
	for _, user := range s.users {
		if keep(user) {
			result = append(result, user)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// AddStaff creates an account with the default password.
func (s *Store) AddStaff(user model.User) error {
	if user.Role == model.Patient {
		return fmt.Errorf("%s is not a staff role: %w", user.Role, ErrInvalidState)
	}
	user.ID = strings.ToUpper(user.ID)
	if _, ok := s.users[user.ID]; ok {
		return fmt.Errorf("user %s: %w", user.ID, ErrDuplicate)
	}
	user.Password = model.DefaultPassword
	s.users[user.ID] = user
	return nil
}

func (s *Store) RemoveStaff(id string) error {
	user, ok := s.users[id]
	if !ok || user.Role == model.Patient {
		return fmt.Errorf("staff %s: %w", id, ErrNotFound)
	}
	delete(s.users, id)
	return nil
}

func (s *Store) AvailableSlots() []model.Slot {
	result := make([]model.Slot, len(s.slots))
	copy(result, s.slots)
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Start.Equal(result[j].Start) {
			return result[i].Start.Before(result[j].Start)
		}
		return result[i].DoctorID < result[j].DoctorID
	})
	return result
}

// Book turns a free slot into a pending appointment.
func (s *Store) Book(patientID string, slot model.Slot) (model.Appointment, error) {
	idx := s.slotIndex(slot)
	if idx < 0 {
		return model.Appointment{}, ErrSlotTaken
	}
	s.slots = append(s.slots[:idx], s.slots[idx+1:]...)
	appointment := model.Appointment{
		ID:        s.newID(),
		PatientID: patientID,
		Slot:      slot,
		Status:    model.Pending,
	}
	s.appointments[appointment.ID] = appointment
	return appointment, nil
}

func (s *Store) slotIndex(slot model.Slot) int {
	for i, free := range s.slots {
		if free.DoctorID == slot.DoctorID && free.Start.Equal(slot.Start) {
			return i
		}
	}
	return -1
}

func (s *Store) Appointment(id string) (model.Appointment, bool) {
	appointment, ok := s.appointments[id]
	return appointment, ok
}

func (s *Store) AppointmentsForPatient(patientID string) []model.Appointment {
	return s.appointmentsWhere(func(a model.Appointment) bool { return a.PatientID == patientID })
}

func (s *Store) AppointmentsForDoctor(doctorID string) []model.Appointment {
	return s.appointmentsWhere(func(a model.Appointment) bool { return a.DoctorID == doctorID })
}

func (s *Store) AllAppointments() []model.Appointment {
	return s.appointmentsWhere(func(model.Appointment) bool { return true })
}

func (s *Store) appointmentsWhere(keep func(model.Appointment) bool) []model.Appointment {
	result := []model.Appointment{}
	for _, appointment := range s.appointments {
		if keep(appointment) {
			result = append(result, appointment)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Start.Equal(result[j].Start) {
			return result[i].Start.Before(result[j].Start)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Cancel frees the slot of an active appointment.
func (s *Store) Cancel(id string) error {
	return s.transition(id, model.Cancelled, true)
}

func (s *Store) Respond(id string, accept bool) error {
	appointment, ok := s.appointments[id]
	if !ok {
		return fmt.Errorf("appointment %s: %w", id, ErrNotFound)
	}
	if appointment.Status != model.Pending {
		return fmt.Errorf("appointment %s is %s: %w", id, appointment.Status, ErrInvalidState)
	}
	if accept {
		return s.transition(id, model.Confirmed, false)
	}
	return s.transition(id, model.Declined, true)
}

func (s *Store) transition(id string, status model.AppointmentStatus, release bool) error {
	appointment, ok := s.appointments[id]
	if !ok {
		return fmt.Errorf("appointment %s: %w", id, ErrNotFound)
	}
	if !appointment.Status.Active() {
		return fmt.Errorf("appointment %s is %s: %w", id, appointment.Status, ErrInvalidState)
	}
	appointment.Status = status
	s.appointments[id] = appointment
	if release {
		s.slots = append(s.slots, appointment.Slot)
	}
	return nil
}

// RecordOutcome completes a confirmed appointment and files the entry in the patient's record.
func (s *Store) RecordOutcome(id, diagnosis, treatment string) error {
	appointment, ok := s.appointments[id]
	if !ok {
		return fmt.Errorf("appointment %s: %w", id, ErrNotFound)
	}
	if appointment.Status != model.Confirmed {
		return fmt.Errorf("appointment %s is %s: %w", id, appointment.Status, ErrInvalidState)
	}
	appointment.Status = model.Completed
	s.appointments[id] = appointment
	s.records = append(s.records, model.RecordEntry{
		PatientID:     appointment.PatientID,
		AppointmentID: id,
		Date:          appointment.Start,
		Diagnosis:     diagnosis,
		Treatment:     treatment,
	})
	return nil
}

func (s *Store) Records(patientID string) []model.RecordEntry {
	result := []model.RecordEntry{}
	for _, entry := range s.records {
		if entry.PatientID == patientID {
			result = append(result, entry)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result
}

func (s *Store) Inventory() []model.Medicine {
	result := make([]model.Medicine, 0, len(s.inventory))
	for _, medicine := range s.inventory {
		result = append(result, medicine)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func (s *Store) RequestReplenishment(medicine string, quantity int) (model.Replenishment, error) {
	if _, ok := s.inventory[medicine]; !ok {
		return model.Replenishment{}, fmt.Errorf("medicine %s: %w", medicine, ErrNotFound)
	}
	if quantity <= 0 {
		return model.Replenishment{}, fmt.Errorf("quantity %d: %w", quantity, ErrInvalidState)
	}
	request := model.Replenishment{ID: s.newID(), Medicine: medicine, Quantity: quantity}
	s.requests[request.ID] = request
	return request, nil
}

func (s *Store) PendingRequests() []model.Replenishment {
	result := []model.Replenishment{}
	for _, request := range s.requests {
		if !request.Approved {
			result = append(result, request)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Medicine != result[j].Medicine {
			return result[i].Medicine < result[j].Medicine
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Approve adds the requested quantity to the stock.
func (s *Store) Approve(id string) error {
	request, ok := s.requests[id]
	if !ok {
		return fmt.Errorf("request %s: %w", id, ErrNotFound)
	}
	if request.Approved {
		return fmt.Errorf("request %s: %w", id, ErrInvalidState)
	}
	medicine := s.inventory[request.Medicine]
	medicine.Stock += request.Quantity
	s.inventory[request.Medicine] = medicine
	request.Approved = true
	s.requests[id] = request
	return nil
}
