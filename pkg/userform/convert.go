package userform

import (
	"strconv"
	"strings"
	"time"
)

const (
	defaultLanguage  = "en"
	defaultCompanyID = int64(1)
)

// Converter maps between the API record and the form record. Both directions
// are total: any well-typed input converts without error. The clock is
// injectable so creation stamps are testable.
type Converter struct {
	now func() time.Time
}

// ConverterOption customises a Converter.
type ConverterOption func(*Converter)

// WithClock overrides the time source used for timestamp stamping.
func WithClock(now func() time.Time) ConverterOption {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}

// NewConverter builds a Converter with the real clock unless overridden.
func NewConverter(options ...ConverterOption) *Converter {
	c := &Converter{now: time.Now}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// ToForm widens an API record into the editable representation: nullish
// strings become empty strings, foreign-key integers become their decimal
// string (or "" when null), and the two password fields come back empty
// because the API never returns secrets.
func (c *Converter) ToForm(user APIUser) FormUser {
	return FormUser{
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		Code:            user.Code,
		Password:        "",
		PasswordConfirm: "",
		Active:          user.Active,
		Blocked:         user.Blocked,
		Tries:           intString(user.Tries),
		Lan:             user.Lan,
		Role:            user.Role,
		Profile:         intString(user.ProfileID),
		Group:           intString(user.GroupID),
		Company:         intString(user.CompanyID),
		DBAuth:          intString(user.DBAuthID),
		LastApp:         intString(user.LastApp),
		LastDB:          intString(user.LastDB),
	}
}

// ToAPI narrows the form record back into the API shape. The confirmation
// field is stripped, and a blank password drops the key entirely so updates
// keep the stored password. On create every lifecycle timestamp is stamped to
// the same epoch second and the login/try counters zeroed; on update only the
// updated stamp moves. Defaults: lan "en", company 1, tries 0.
func (c *Converter) ToAPI(form FormUser, isNew bool) APIUser {
	user := APIUser{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Code:      form.Code,
		Active:    form.Active,
		Blocked:   form.Blocked,
		Tries:     parseInt(form.Tries),
		Lan:       form.Lan,
		Role:      form.Role,
		ProfileID: parseInt(form.Profile),
		GroupID:   parseInt(form.Group),
		CompanyID: parseInt(form.Company),
		DBAuthID:  parseInt(form.DBAuth),
		LastApp:   parseInt(form.LastApp),
		LastDB:    parseInt(form.LastDB),
	}

	if form.Password != "" {
		password := form.Password
		user.Password = &password
	}

	if strings.TrimSpace(user.Lan) == "" {
		user.Lan = defaultLanguage
	}
	if user.CompanyID == nil {
		company := defaultCompanyID
		user.CompanyID = &company
	}
	if user.Tries == nil {
		tries := int64(0)
		user.Tries = &tries
	}

	now := c.now().Unix()
	if isNew {
		user.Created = now
		user.Updated = now
		user.ActivationTime = now
		user.LastLogin = 0
		user.LastTry = 0
	} else {
		user.Updated = now
	}

	return user
}

func intString(value *int64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatInt(*value, 10)
}

func parseInt(raw string) *int64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		// Conversion is total; unparseable input reads as "no value". The
		// validator owns rejecting malformed numbers before this point.
		return nil
	}
	return &value
}

func trimFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
