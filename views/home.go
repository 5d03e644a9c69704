package views

import (
	"fmt"

	"hms/model"
	"hms/widgets"
)

// Home is the role specific main menu shown after a successful login.
type Home struct {
	session
	menu *widgets.Menu
}

func NewHome(s session) *Home {
	v := &Home{session: s}
	v.menu = widgets.NewMenu(v.options()...)
	return v
}

func (v *Home) options() []widgets.MenuOption {
	s := v.session
	push := func(label string, view func() View) widgets.MenuOption {
		return widgets.MenuOption{Label: label, Action: func() { s.nav.Push(view()) }}
	}
	logout := widgets.MenuOption{Label: "Log out", Action: s.logout}

	switch s.user.Role {
	case model.Patient:
		return []widgets.MenuOption{
			push("View Medical Record", func() View { return NewMedicalRecord(s, s.user.ID) }),
			push("Update Personal Information", func() View { return NewUpdateContact(s) }),
			push("View Available Appointment Slots", func() View { return NewSlots(s) }),
			push("Schedule an Appointment", func() View { return NewSchedule(s) }),
			push("Cancel an Appointment", func() View { return NewCancelAppointment(s) }),
			push("View Scheduled Appointments", func() View { return NewAppointments(s) }),
			logout,
		}
	case model.Doctor:
		return []widgets.MenuOption{
			push("View Patient Medical Records", func() View { return NewPatientRecords(s) }),
			push("View Upcoming Appointments", func() View { return NewAppointments(s) }),
			push("Accept or Decline Appointment Requests", func() View { return NewRequests(s) }),
			push("Record Appointment Outcome", func() View { return NewRecordOutcome(s) }),
			logout,
		}
	case model.Pharmacist:
		return []widgets.MenuOption{
			push("View Medication Inventory", func() View { return NewInventory(s) }),
			push("Submit Replenishment Request", func() View { return NewReplenish(s) }),
			logout,
		}
	case model.Administrator:
		return []widgets.MenuOption{
			push("View Hospital Staff", func() View { return NewStaff(s) }),
			push("Add Staff Member", func() View { return NewAddStaff(s) }),
			push("Remove Staff Member", func() View { return NewRemoveStaff(s) }),
			push("View Medication Inventory", func() View { return NewInventory(s) }),
			push("Approve Replenishment Requests", func() View { return NewApproveRequests(s) }),
			push("View All Appointments", func() View { return NewAppointments(s) }),
			logout,
		}
	}
	return []widgets.MenuOption{logout}
}

func (v *Home) Title() string {
	return v.user.Role.String() + " Menu"
}

func (v *Home) Build(widgets.Context) (widgets.Widget, error) {
	return page(v.session,
		widgets.Text(fmt.Sprintf("Welcome, %s.", v.user.Name)),
		widgets.VSpacer(1),
		v.menu,
	), nil
}

func (v *Home) Interact(ctx widgets.Context, term widgets.Terminal) error {
	return v.menu.Capture(ctx, term)
}
