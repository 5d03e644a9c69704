// Package views holds the clinic screens. Every screen gets its collaborators
// through its constructor and asks the navigator for transitions.
package views

import (
	"hms/model"
	"hms/navigator"
	"hms/repository"
	"hms/validators"
	"hms/widgets"
)

type View = navigator.View

type session struct {
	nav   *navigator.Navigator
	store *repository.Store
	user  model.User
}

func (s session) logout() {
	s.nav.Replace(NewLogin(s.nav, s.store))
}

func page(s session, body ...widgets.Widget) widgets.Widget {
	return widgets.Column(append([]widgets.Widget{s.nav.Breadcrumbs()}, body...)...)
}

// finish reports the outcome of an action and returns to the previous screen.
func finish(s session, ctx widgets.Context, term widgets.Terminal, message string) error {
	pause := widgets.PauseGoBack()
	lines := widgets.Column(widgets.VSpacer(1), widgets.Text(message), pause).Render(ctx)
	if err := term.WriteLines(lines...); err != nil {
		return err
	}
	if err := pause.Capture(ctx, term); err != nil {
		return err
	}
	return s.nav.Pop()
}

func confirm(ctx widgets.Context, term widgets.Terminal, question string) (bool, error) {
	return widgets.NewTextInput(question+" (Y/N)", validators.YesNo).Capture(ctx, term)
}

func appointmentRows(s session, appointments []model.Appointment) []widgets.TableRow {
	rows := make([]widgets.TableRow, 0, len(appointments))
	for _, a := range appointments {
		patient, _ := s.store.User(a.PatientID)
		doctor, _ := s.store.User(a.DoctorID)
		rows = append(rows, widgets.NewRow(
			a.Start.Format(model.DateTimeFormat),
			doctor.Name,
			patient.Name,
			a.Status.String(),
		).WithMeta(a.ID))
	}
	return rows
}

var appointmentHeader = []string{"Date", "Doctor", "Patient", "Status"}
