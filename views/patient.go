package views

import (
	"fmt"

	"hms/model"
	"hms/validators"
	"hms/widgets"
)

type MedicalRecord struct {
	session
	patientID string
}

func NewMedicalRecord(s session, patientID string) *MedicalRecord {
	return &MedicalRecord{session: s, patientID: patientID}
}

func (v *MedicalRecord) Title() string { return "Medical Record" }

func (v *MedicalRecord) Build(widgets.Context) (widgets.Widget, error) {
	patient, ok := v.store.User(v.patientID)
	if !ok {
		return nil, fmt.Errorf("unknown patient %q", v.patientID)
	}
	details, err := widgets.NewTable([]string{"Field", "Value"},
		widgets.NewRow("Patient ID", patient.ID),
		widgets.NewRow("Name", patient.Name),
		widgets.NewRow("Gender", patient.Gender),
		widgets.NewRow("Age", fmt.Sprint(patient.Age)),
		widgets.NewRow("Blood Type", patient.BloodType),
		widgets.NewRow("Email", patient.Email),
		widgets.NewRow("Phone", patient.Phone),
	)
	if err != nil {
		return nil, err
	}

	entries := v.store.Records(v.patientID)
	rows := make([]widgets.TableRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, widgets.NewRow(entry.Date.Format(model.DateFormat), entry.Diagnosis, entry.Treatment))
	}
	history, err := widgets.NewTable([]string{"Date", "Diagnosis", "Treatment"}, rows...)
	if err != nil {
		return nil, err
	}

	box, err := widgets.NewContainer().Child(details).Border(widgets.Thin).Padding(0, 1).Shrink().Build()
	if err != nil {
		return nil, err
	}
	return page(v.session,
		box,
		widgets.VSpacer(1),
		widgets.Text("Past Diagnoses and Treatments").Style(widgets.Bold),
		history,
	), nil
}

type UpdateContact struct {
	session
}

func NewUpdateContact(s session) *UpdateContact {
	return &UpdateContact{session: s}
}

func (v *UpdateContact) Title() string { return "Update Personal Information" }

func (v *UpdateContact) Build(widgets.Context) (widgets.Widget, error) {
	user, _ := v.store.User(v.user.ID)
	return page(v.session,
		widgets.Text(fmt.Sprintf("Email: %s", user.Email)),
		widgets.Text(fmt.Sprintf("Phone: %s", user.Phone)),
		widgets.VSpacer(1),
	), nil
}

func (v *UpdateContact) Interact(ctx widgets.Context, term widgets.Terminal) error {
	var email, phone string
	form := widgets.NewMultiTextInput(
		widgets.Bind("New email", &email, validators.Email),
		widgets.Bind("New phone number", &phone, validators.Phone),
	)
	if err := form.Capture(ctx, term); err != nil {
		return err
	}
	if err := v.store.UpdateContact(v.user.ID, email, phone); err != nil {
		return err
	}
	return finish(v.session, ctx, term, "Personal information updated.")
}

type Slots struct {
	session
}

func NewSlots(s session) *Slots {
	return &Slots{session: s}
}

func (v *Slots) Title() string { return "Available Slots" }

func (v *Slots) Build(widgets.Context) (widgets.Widget, error) {
	table, err := slotTable(v.session)
	if err != nil {
		return nil, err
	}
	return page(v.session, table), nil
}

func slotTable(s session) (widgets.EnumeratedTable, error) {
	slots := s.store.AvailableSlots()
	rows := make([]widgets.TableRow, 0, len(slots))
	for _, slot := range slots {
		doctor, _ := s.store.User(slot.DoctorID)
		rows = append(rows, widgets.NewRow(slot.Start.Format(model.DateTimeFormat), doctor.Name).WithMeta(slot))
	}
	return widgets.NewEnumeratedTable([]string{"Date", "Doctor"}, rows...)
}

type Schedule struct {
	session
	table widgets.EnumeratedTable
}

func NewSchedule(s session) *Schedule {
	return &Schedule{session: s}
}

func (v *Schedule) Title() string { return "Schedule Appointment" }

func (v *Schedule) Build(widgets.Context) (widgets.Widget, error) {
	table, err := slotTable(v.session)
	if err != nil {
		return nil, err
	}
	v.table = table
	return page(v.session, table, widgets.VSpacer(1)), nil
}

func (v *Schedule) Interact(ctx widgets.Context, term widgets.Terminal) error {
	if v.table.Len() == 0 {
		return finish(v.session, ctx, term, "There are no available slots.")
	}
	row, err := widgets.NewTextInput("Select a slot", v.table.Pick).Capture(ctx, term)
	if err != nil {
		return err
	}
	appointment, err := v.store.Book(v.user.ID, row.Meta.(model.Slot))
	if err != nil {
		return finish(v.session, ctx, term, fmt.Sprintf("Could not schedule the appointment: %v.", err))
	}
	return finish(v.session, ctx, term, fmt.Sprintf("Appointment requested for %s. Reference: %s.",
		appointment.Start.Format(model.DateTimeFormat), appointment.ID))
}

type CancelAppointment struct {
	session
	table widgets.EnumeratedTable
}

func NewCancelAppointment(s session) *CancelAppointment {
	return &CancelAppointment{session: s}
}

func (v *CancelAppointment) Title() string { return "Cancel Appointment" }

func (v *CancelAppointment) Build(widgets.Context) (widgets.Widget, error) {
	active := []model.Appointment{}
	for _, a := range v.store.AppointmentsForPatient(v.user.ID) {
		if a.Status.Active() {
			active = append(active, a)
		}
	}
	table, err := widgets.NewEnumeratedTable(appointmentHeader, appointmentRows(v.session, active)...)
	if err != nil {
		return nil, err
	}
	v.table = table
	return page(v.session, table, widgets.VSpacer(1)), nil
}

func (v *CancelAppointment) Interact(ctx widgets.Context, term widgets.Terminal) error {
	if v.table.Len() == 0 {
		return finish(v.session, ctx, term, "You have no appointments to cancel.")
	}
	row, err := widgets.NewTextInput("Select an appointment", v.table.Pick).Capture(ctx, term)
	if err != nil {
		return err
	}
	ok, err := confirm(ctx, term, "Cancel this appointment?")
	if err != nil {
		return err
	}
	if !ok {
		return finish(v.session, ctx, term, "The appointment was kept.")
	}
	if err := v.store.Cancel(row.Meta.(string)); err != nil {
		return finish(v.session, ctx, term, fmt.Sprintf("Could not cancel the appointment: %v.", err))
	}
	return finish(v.session, ctx, term, "Appointment cancelled.")
}

// Appointments lists the appointments of the logged in patient or doctor.
type Appointments struct {
	session
}

func NewAppointments(s session) *Appointments {
	return &Appointments{session: s}
}

func (v *Appointments) Title() string { return "Appointments" }

func (v *Appointments) Build(widgets.Context) (widgets.Widget, error) {
	var appointments []model.Appointment
	switch v.user.Role {
	case model.Doctor:
		appointments = v.store.AppointmentsForDoctor(v.user.ID)
	case model.Administrator:
		appointments = v.store.AllAppointments()
	default:
		appointments = v.store.AppointmentsForPatient(v.user.ID)
	}
	table, err := widgets.NewTable(appointmentHeader, appointmentRows(v.session, appointments)...)
	if err != nil {
		return nil, err
	}
	return page(v.session, table), nil
}
