package views

import (
	"fmt"

	"hms/model"
	"hms/validators"
	"hms/widgets"
)

// PatientRecords lets a doctor open the record of any patient under their care.
type PatientRecords struct {
	session
	table widgets.EnumeratedTable
}

func NewPatientRecords(s session) *PatientRecords {
	return &PatientRecords{session: s}
}

func (v *PatientRecords) Title() string { return "Patients" }

func (v *PatientRecords) Build(widgets.Context) (widgets.Widget, error) {
	seen := map[string]bool{}
	rows := []widgets.TableRow{}
	for _, a := range v.store.AppointmentsForDoctor(v.user.ID) {
		if seen[a.PatientID] {
			continue
		}
		seen[a.PatientID] = true
		patient, _ := v.store.User(a.PatientID)
		rows = append(rows, widgets.NewRow(patient.ID, patient.Name).WithMeta(patient.ID))
	}
	table, err := widgets.NewEnumeratedTable([]string{"Patient ID", "Name"}, rows...)
	if err != nil {
		return nil, err
	}
	v.table = table
	return page(v.session, table, widgets.VSpacer(1)), nil
}

func (v *PatientRecords) Interact(ctx widgets.Context, term widgets.Terminal) error {
	if v.table.Len() == 0 {
		return finish(v.session, ctx, term, "You have no patients yet.")
	}
	row, err := widgets.NewTextInput("Select a patient", v.table.Pick).Capture(ctx, term)
	if err != nil {
		return err
	}
	v.nav.Push(NewMedicalRecord(v.session, row.Meta.(string)))
	return nil
}

type Requests struct {
	session
	table widgets.EnumeratedTable
}

func NewRequests(s session) *Requests {
	return &Requests{session: s}
}

func (v *Requests) Title() string { return "Appointment Requests" }

func (v *Requests) Build(widgets.Context) (widgets.Widget, error) {
	pending := []model.Appointment{}
	for _, a := range v.store.AppointmentsForDoctor(v.user.ID) {
		if a.Status == model.Pending {
			pending = append(pending, a)
		}
	}
	table, err := widgets.NewEnumeratedTable(appointmentHeader, appointmentRows(v.session, pending)...)
	if err != nil {
		return nil, err
	}
	v.table = table
	return page(v.session, table, widgets.VSpacer(1)), nil
}

// Interact handles one request per cycle; the screen is rebuilt with the remaining ones.
func (v *Requests) Interact(ctx widgets.Context, term widgets.Terminal) error {
	if v.table.Len() == 0 {
		return finish(v.session, ctx, term, "There are no pending requests.")
	}
	row, err := widgets.NewTextInput("Select a request", v.table.Pick).Capture(ctx, term)
	if err != nil {
		return err
	}
	accept, err := confirm(ctx, term, "Accept this appointment?")
	if err != nil {
		return err
	}
	if err := v.store.Respond(row.Meta.(string), accept); err != nil {
		return finish(v.session, ctx, term, fmt.Sprintf("Could not update the request: %v.", err))
	}
	return nil
}

type RecordOutcome struct {
	session
	table widgets.EnumeratedTable
}

func NewRecordOutcome(s session) *RecordOutcome {
	return &RecordOutcome{session: s}
}

func (v *RecordOutcome) Title() string { return "Record Outcome" }

func (v *RecordOutcome) Build(widgets.Context) (widgets.Widget, error) {
	confirmed := []model.Appointment{}
	for _, a := range v.store.AppointmentsForDoctor(v.user.ID) {
		if a.Status == model.Confirmed {
			confirmed = append(confirmed, a)
		}
	}
	table, err := widgets.NewEnumeratedTable(appointmentHeader, appointmentRows(v.session, confirmed)...)
	if err != nil {
		return nil, err
	}
	v.table = table
	return page(v.session, table, widgets.VSpacer(1)), nil
}

func (v *RecordOutcome) Interact(ctx widgets.Context, term widgets.Terminal) error {
	if v.table.Len() == 0 {
		return finish(v.session, ctx, term, "There are no confirmed appointments.")
	}
	row, err := widgets.NewTextInput("Select an appointment", v.table.Pick).Capture(ctx, term)
	if err != nil {
		return err
	}
	var diagnosis, treatment string
	form := widgets.NewMultiTextInput(
		widgets.Bind("Diagnosis", &diagnosis, validators.NonEmpty),
		widgets.Bind("Treatment", &treatment, validators.NonEmpty),
	)
	if err := form.Capture(ctx, term); err != nil {
		return err
	}
	if err := v.store.RecordOutcome(row.Meta.(string), diagnosis, treatment); err != nil {
		return finish(v.session, ctx, term, fmt.Sprintf("Could not record the outcome: %v.", err))
	}
	return finish(v.session, ctx, term, "Outcome recorded.")
}
