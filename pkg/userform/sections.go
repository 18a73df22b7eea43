package userform

import (
	"fmt"

	"github.com/goliatone/go-adminform/pkg/field"
)

// Catalog carries the option lists the access and integration sections need.
// Callers typically normalize whatever their lookup endpoints return through
// field.NormalizeOptions before handing them over.
type Catalog struct {
	Languages []field.Option
	Roles     []field.Option
	Profiles  []field.Option
	Groups    []field.Option
	Companies []field.Option
	DBAuths   []field.Option
}

// DefaultLanguages is used when the catalog carries no language list.
func DefaultLanguages() []field.Option {
	return []field.Option{
		{Value: "en", Label: "English"},
		{Value: "es", Label: "Spanish"},
		{Value: "fr", Label: "French"},
		{Value: "de", Label: "German"},
	}
}

// BuildForm assembles the full user form: chrome metadata plus the five
// sections bound to the record and any validation errors. isNew selects
// create semantics (POST /users) over update (PUT /users/{id}).
func BuildForm(form FormUser, errs map[string]string, cat Catalog, userID int64, isNew bool) field.Form {
	method := "PUT"
	action := fmt.Sprintf("/users/%d", userID)
	title := "Edit user"
	if isNew {
		method = "POST"
		action = "/users"
		title = "New user"
	}

	out := field.Form{
		Name:   "user",
		Title:  title,
		Method: method,
		Action: action,
		Sections: []field.Section{
			generalSection(form, cat),
			securitySection(form),
			accessSection(form, cat),
			activitySection(form),
			integrationSection(form, cat),
		},
	}
	return out.ApplyErrors(errs)
}

func generalSection(form FormUser, cat Catalog) field.Section {
	languages := cat.Languages
	if len(languages) == 0 {
		languages = DefaultLanguages()
	}
	return field.Section{
		Name:  "general",
		Label: "General",
		Fields: []field.Field{
			{Kind: field.KindText, Name: FieldFirstName, Label: "First name", Value: form.FirstName, Required: true},
			{Kind: field.KindText, Name: FieldLastName, Label: "Last name", Value: form.LastName, Required: true},
			{Kind: field.KindEmail, Name: FieldEmail, Label: "Email", Value: form.Email, Required: true},
			{Kind: field.KindText, Name: FieldCode, Label: "Code", Value: form.Code},
			{Kind: field.KindSelect, Name: FieldLan, Label: "Language", Value: form.Lan, Options: languages},
			{Kind: field.KindFile, Name: FieldAvatar, Label: "Avatar"},
		},
	}
}

func securitySection(form FormUser) field.Section {
	return field.Section{
		Name:  "security",
		Label: "Security",
		Fields: []field.Field{
			{Kind: field.KindPassword, Name: FieldPassword, Label: "Password", Value: form.Password,
				Help: "Leave blank to keep the current password"},
			{Kind: field.KindPassword, Name: FieldPasswordConfirm, Label: "Confirm password", Value: form.PasswordConfirm},
		},
	}
}

func accessSection(form FormUser, cat Catalog) field.Section {
	return field.Section{
		Name:  "access",
		Label: "Access",
		Fields: []field.Field{
			{Kind: field.KindSelect, Name: FieldRole, Label: "Role", Value: form.Role, Options: cat.Roles},
			{Kind: field.KindSelect, Name: FieldProfile, Label: "Profile", Value: form.Profile, Options: cat.Profiles},
			{Kind: field.KindSelect, Name: FieldGroup, Label: "Group", Value: form.Group, Options: cat.Groups},
			{Kind: field.KindCheckbox, Name: FieldBlocked, Label: "Blocked", Value: form.Blocked},
		},
	}
}

func activitySection(form FormUser) field.Section {
	return field.Section{
		Name:  "activity",
		Label: "Activity",
		Fields: []field.Field{
			{Kind: field.KindCheckbox, Name: FieldActive, Label: "Active", Value: form.Active},
			{Kind: field.KindNumber, Name: FieldTries, Label: "Failed login tries", Value: form.Tries},
		},
	}
}

func integrationSection(form FormUser, cat Catalog) field.Section {
	return field.Section{
		Name:  "integration",
		Label: "System integration",
		Fields: []field.Field{
			{Kind: field.KindSelect, Name: FieldCompany, Label: "Company", Value: form.Company, Options: cat.Companies},
			{Kind: field.KindSelect, Name: FieldDBAuth, Label: "Database auth", Value: form.DBAuth, Options: cat.DBAuths},
			{Kind: field.KindNumber, Name: FieldLastApp, Label: "Last application", Value: form.LastApp, Disabled: true},
			{Kind: field.KindNumber, Name: FieldLastDB, Label: "Last database", Value: form.LastDB, Disabled: true},
		},
	}
}
