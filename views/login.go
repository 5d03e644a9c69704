package views

import (
	"fmt"
	"log"

	"hms/model"
	"hms/navigator"
	"hms/repository"
	"hms/validators"
	"hms/widgets"
)

type Login struct {
	nav   *navigator.Navigator
	store *repository.Store
}

func NewLogin(nav *navigator.Navigator, store *repository.Store) *Login {
	return &Login{nav: nav, store: store}
}

// Title is empty so the login screen stays out of the breadcrumbs.
func (v *Login) Title() string { return "" }

func (v *Login) Build(ctx widgets.Context) (widgets.Widget, error) {
	banner, err := widgets.NewContainer().
		Child(widgets.Column(
			widgets.Text("Hospital Management System (HMS)").Style(widgets.Bold),
			widgets.Text("version 1.0"),
		).CrossAxis(widgets.CrossCenter)).
		Border(widgets.Double).
		Padding(1, 2).
		Build()
	if err != nil {
		return nil, err
	}
	return widgets.Column(
		banner,
		widgets.VSpacer(1),
		widgets.Text(fmt.Sprintf("Enter %s at any prompt to go back, or here to exit.", ctx.Cancel)).Style(widgets.Faint),
	), nil
}

func (v *Login) Interact(ctx widgets.Context, term widgets.Terminal) error {
	var id, password string
	var user model.User
	form := widgets.NewMultiTextInput(
		widgets.Bind("User ID", &id, validators.NonEmpty),
		widgets.Bind("Password", &password, validators.NonEmpty),
	).Check(func(values widgets.Values) error {
		var err error
		user, err = v.store.Authenticate(values["User ID"], values["Password"])
		if err != nil {
			log.Printf("login failed for %q", values["User ID"])
			return widgets.Invalid("Incorrect User ID or password. Please try again.")
		}
		return nil
	})
	if err := form.Capture(ctx, term); err != nil {
		return err
	}

	log.Printf("login: %s as %s", user.ID, user.Role)
	s := session{nav: v.nav, store: v.store, user: user}
	if user.MustChangePassword() {
		v.nav.Push(NewUpdatePassword(s))
	} else {
		v.nav.Push(NewHome(s))
	}
	return nil
}

type UpdatePassword struct {
	session
}

func NewUpdatePassword(s session) *UpdatePassword {
	return &UpdatePassword{session: s}
}

func (v *UpdatePassword) Title() string { return "Update Password" }

func (v *UpdatePassword) Build(widgets.Context) (widgets.Widget, error) {
	return page(v.session,
		widgets.Text("You are using the default password. Please choose a new one."),
		widgets.VSpacer(1),
	), nil
}

func (v *UpdatePassword) Interact(ctx widgets.Context, term widgets.Terminal) error {
	var password, again string
	form := widgets.NewMultiTextInput(
		widgets.Bind("New password", &password, validators.Password(6)),
		widgets.Bind("Confirm password", &again, validators.NonEmpty),
	).Check(func(values widgets.Values) error {
		if values["New password"] != values["Confirm password"] {
			return widgets.Invalid("Passwords do not match. Please try again.")
		}
		if values["New password"] == model.DefaultPassword {
			return widgets.Invalid("The new password must differ from the default password.")
		}
		return nil
	})
	if err := form.Capture(ctx, term); err != nil {
		return err
	}
	if err := v.store.ChangePassword(v.user.ID, password); err != nil {
		return err
	}
	v.user.Password = password
	log.Printf("password updated for %s", v.user.ID)

	if err := v.nav.Pop(); err != nil {
		return err
	}
	v.nav.Push(NewHome(v.session))
	return nil
}
