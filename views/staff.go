package views

import (
	"fmt"
	"log"
	"strings"

	"hms/model"
	"hms/validators"
	"hms/widgets"
)

func staffRows(s session) []widgets.TableRow {
	staff := s.store.Staff()
	rows := make([]widgets.TableRow, 0, len(staff))
	for _, u := range staff {
		rows = append(rows, widgets.NewRow(u.ID, u.Name, u.Role.String(), u.Gender, fmt.Sprint(u.Age)).WithMeta(u.ID))
	}
	return rows
}

var staffHeader = []string{"ID", "Name", "Role", "Gender", "Age"}

type Staff struct {
	session
}

func NewStaff(s session) *Staff {
	return &Staff{session: s}
}

func (v *Staff) Title() string { return "Staff" }

func (v *Staff) Build(widgets.Context) (widgets.Widget, error) {
	table, err := widgets.NewTable(staffHeader, staffRows(v.session)...)
	if err != nil {
		return nil, err
	}
	return page(v.session, table.AlignColumn(4, widgets.End).Expand()), nil
}

type AddStaff struct {
	session
}

func NewAddStaff(s session) *AddStaff {
	return &AddStaff{session: s}
}

func (v *AddStaff) Title() string { return "Add Staff" }

var staffRoles = []string{
	model.Doctor.String(),
	model.Pharmacist.String(),
	model.Administrator.String(),
}

func (v *AddStaff) Build(widgets.Context) (widgets.Widget, error) {
	return page(v.session,
		widgets.Text(fmt.Sprintf("Roles: %s", strings.Join(staffRoles, ", "))),
		widgets.VSpacer(1),
	), nil
}

func (v *AddStaff) Interact(ctx widgets.Context, term widgets.Terminal) error {
	var user model.User
	var role string
	form := widgets.NewMultiTextInput(
		widgets.Bind("Staff ID", &user.ID, validators.NonEmpty),
		widgets.Bind("Name", &user.Name, validators.NonEmpty),
		widgets.Bind("Role", &role, validators.OneOf(staffRoles...)),
		widgets.Bind("Gender", &user.Gender, validators.OneOf("Male", "Female")),
		widgets.Bind("Age", &user.Age, validators.Age),
	).Check(func(values widgets.Values) error {
		if _, taken := v.store.User(strings.ToUpper(values["Staff ID"])); taken {
			return widgets.Invalid("Staff ID %s is already in use.", strings.ToUpper(values["Staff ID"]))
		}
		return nil
	})
	if err := form.Capture(ctx, term); err != nil {
		return err
	}
	parsed, err := model.ParseRole(role)
	if err != nil {
		return err
	}
	user.Role = parsed
	if err := v.store.AddStaff(user); err != nil {
		return finish(v.session, ctx, term, fmt.Sprintf("Could not add the staff member: %v.", err))
	}
	log.Printf("staff added: %s (%s)", strings.ToUpper(user.ID), user.Role)
	return finish(v.session, ctx, term, fmt.Sprintf("%s added with the default password.", user.Name))
}

type RemoveStaff struct {
	session
	table widgets.EnumeratedTable
}

func NewRemoveStaff(s session) *RemoveStaff {
	return &RemoveStaff{session: s}
}

func (v *RemoveStaff) Title() string { return "Remove Staff" }

func (v *RemoveStaff) Build(widgets.Context) (widgets.Widget, error) {
	table, err := widgets.NewEnumeratedTable(staffHeader, staffRows(v.session)...)
	if err != nil {
		return nil, err
	}
	v.table = table
	return page(v.session, table, widgets.VSpacer(1)), nil
}

func (v *RemoveStaff) Interact(ctx widgets.Context, term widgets.Terminal) error {
	row, err := widgets.NewTextInput("Select a staff member", v.table.Pick).Capture(ctx, term)
	if err != nil {
		return err
	}
	id := row.Meta.(string)
	if id == v.user.ID {
		return finish(v.session, ctx, term, "You cannot remove your own account.")
	}
	ok, err := confirm(ctx, term, fmt.Sprintf("Remove %s?", row.Cells[1]))
	if err != nil {
		return err
	}
	if !ok {
		return finish(v.session, ctx, term, "Nothing was removed.")
	}
	if err := v.store.RemoveStaff(id); err != nil {
		return finish(v.session, ctx, term, fmt.Sprintf("Could not remove the staff member: %v.", err))
	}
	return finish(v.session, ctx, term, fmt.Sprintf("%s removed.", row.Cells[1]))
}
