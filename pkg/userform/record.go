package userform

// APIUser is the server-shaped user record. Nullable foreign keys marshal as
// explicit null, never omitted; password is the one optional key, dropped
// entirely when no new password was supplied so the backend keeps the current
// one on update.
type APIUser struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Code           string  `json:"code"`
	Password       *string `json:"password,omitempty"`
	Active         bool    `json:"active"`
	Blocked        bool    `json:"blocked"`
	Tries          *int64  `json:"tries"`
	Lan            string  `json:"lan"`
	Role           string  `json:"role"`
	ProfileID      *int64  `json:"profile_id"`
	GroupID        *int64  `json:"group_id"`
	CompanyID      *int64  `json:"company_id"`
	DBAuthID       *int64  `json:"dbsauth_id"`
	LastApp        *int64  `json:"last_app"`
	LastDB         *int64  `json:"last_db"`
	Created        int64   `json:"created"`
	Updated        int64   `json:"updated"`
	ActivationTime int64   `json:"activation_time"`
	LastLogin      int64   `json:"last_login"`
	LastTry        int64   `json:"last_try"`
}

// FormUser is the editing-session record: everything a text control touches
// is widened to string, flags stay strict booleans. It lives for the lifetime
// of the editing session and is discarded on navigation away.
type FormUser struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Code            string `json:"code"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	Active          bool   `json:"active"`
	Blocked         bool   `json:"blocked"`
	Tries           string `json:"tries"`
	Lan             string `json:"lan"`
	Role            string `json:"role"`
	Profile         string `json:"profile_id"`
	Group           string `json:"group_id"`
	Company         string `json:"company_id"`
	DBAuth          string `json:"dbsauth_id"`
	LastApp         string `json:"last_app"`
	LastDB          string `json:"last_db"`
}

// Form field names, shared by the section builders, the validator, and the
// decode path so error maps line up with rendered controls.
const (
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldEmail           = "email"
	FieldCode            = "code"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password_confirm"
	FieldActive          = "active"
	FieldBlocked         = "blocked"
	FieldTries           = "tries"
	FieldLan             = "lan"
	FieldRole            = "role"
	FieldProfile         = "profile_id"
	FieldGroup           = "group_id"
	FieldCompany         = "company_id"
	FieldDBAuth          = "dbsauth_id"
	FieldLastApp         = "last_app"
	FieldLastDB          = "last_db"
	FieldAvatar          = "avatar"
)

// FromValues builds a FormUser out of committed values keyed by field name,
// as produced by field.DecodeValues. Missing keys keep zero values.
func FromValues(values map[string]any) FormUser {
	return FormUser{
		FirstName:       stringValue(values[FieldFirstName]),
		LastName:        stringValue(values[FieldLastName]),
		Email:           stringValue(values[FieldEmail]),
		Code:            stringValue(values[FieldCode]),
		Password:        stringValue(values[FieldPassword]),
		PasswordConfirm: stringValue(values[FieldPasswordConfirm]),
		Active:          boolValue(values[FieldActive]),
		Blocked:         boolValue(values[FieldBlocked]),
		Tries:           numberString(values[FieldTries]),
		Lan:             stringValue(values[FieldLan]),
		Role:            stringValue(values[FieldRole]),
		Profile:         numberString(values[FieldProfile]),
		Group:           numberString(values[FieldGroup]),
		Company:         numberString(values[FieldCompany]),
		DBAuth:          numberString(values[FieldDBAuth]),
		LastApp:         numberString(values[FieldLastApp]),
		LastDB:          numberString(values[FieldLastDB]),
	}
}

func stringValue(value any) string {
	s, _ := value.(string)
	return s
}

func boolValue(value any) bool {
	b, _ := value.(bool)
	return b
}

func numberString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case *float64:
		if v == nil {
			return ""
		}
		return trimFloat(*v)
	case float64:
		return trimFloat(v)
	default:
		return ""
	}
}
