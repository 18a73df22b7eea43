package userform

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func fixedConverter(epoch int64) *Converter {
	return NewConverter(WithClock(func() time.Time {
		return time.Unix(epoch, 0)
	}))
}

func TestToFormWidensTypes(t *testing.T) {
	profile := int64(5)
	user := APIUser{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Active:    true,
		ProfileID: &profile,
	}

	form := fixedConverter(100).ToForm(user)

	if form.Profile != "5" {
		t.Fatalf("profile should widen to string, got %q", form.Profile)
	}
	if form.Group != "" {
		t.Fatalf("null foreign key should widen to empty string, got %q", form.Group)
	}
	if !form.Active {
		t.Fatal("flag should stay a strict boolean")
	}
	if form.Password != "" || form.PasswordConfirm != "" {
		t.Fatal("password fields must be injected empty")
	}
}

func TestRoundTripIsIdempotent(t *testing.T) {
	profile := int64(5)
	raw := APIUser{ID: 1, Active: true, Blocked: false, ProfileID: &profile}
	conv := fixedConverter(1700000000)

	// The first application may inject defaults; from the second application
	// on, every editable field must be stable.
	first := conv.ToForm(conv.ToAPI(conv.ToForm(raw), false))
	second := conv.ToForm(conv.ToAPI(first, false))

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("round trip not idempotent (-first +second):\n%s", diff)
	}
	if first.Profile != "5" {
		t.Fatalf("profile must survive the round trip, got %q", first.Profile)
	}
	if !first.Active {
		t.Fatal("active must survive the round trip")
	}
}

func TestToAPIDropsEmptyPassword(t *testing.T) {
	user := fixedConverter(100).ToAPI(FormUser{Password: ""}, false)
	if user.Password != nil {
		t.Fatal("empty password must drop the key entirely")
	}

	payload, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(payload), `"password"`) {
		t.Fatalf("serialized record must not contain a password key: %s", payload)
	}
}

func TestToAPIKeepsNonEmptyPassword(t *testing.T) {
	user := fixedConverter(100).ToAPI(FormUser{Password: "secret1", PasswordConfirm: "secret1"}, false)
	if user.Password == nil || *user.Password != "secret1" {
		t.Fatalf("password should carry over, got %v", user.Password)
	}
}

func TestToAPICreateStamps(t *testing.T) {
	const epoch = int64(1700000000)
	user := fixedConverter(epoch).ToAPI(FormUser{}, true)

	if user.Created != epoch || user.Updated != epoch || user.ActivationTime != epoch {
		t.Fatalf("create must stamp created/updated/activation_time to the same second: %+v", user)
	}
	if user.LastLogin != 0 || user.LastTry != 0 {
		t.Fatalf("create must zero the login/try counters: %+v", user)
	}
}

func TestToAPIUpdateStampsOnlyUpdated(t *testing.T) {
	const epoch = int64(1700000000)
	user := fixedConverter(epoch).ToAPI(FormUser{}, false)

	if user.Updated != epoch {
		t.Fatalf("update must stamp updated, got %d", user.Updated)
	}
	if user.Created != 0 || user.ActivationTime != 0 {
		t.Fatalf("update must leave other timestamps untouched: %+v", user)
	}
}

func TestToAPIDefaults(t *testing.T) {
	user := fixedConverter(100).ToAPI(FormUser{}, true)

	if user.Lan != "en" {
		t.Fatalf("language default: want en, got %q", user.Lan)
	}
	if user.CompanyID == nil || *user.CompanyID != 1 {
		t.Fatalf("company default: want 1, got %v", user.CompanyID)
	}
	if user.Tries == nil || *user.Tries != 0 {
		t.Fatalf("tries default: want 0, got %v", user.Tries)
	}
}

func TestToAPINullableForeignKeysSerializeAsNull(t *testing.T) {
	user := fixedConverter(100).ToAPI(FormUser{}, false)

	payload, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"profile_id":null`, `"group_id":null`, `"dbsauth_id":null`, `"last_app":null`, `"last_db":null`} {
		if !strings.Contains(string(payload), key) {
			t.Fatalf("expected %s in payload: %s", key, payload)
		}
	}
}

func TestToAPIParsesNumericStrings(t *testing.T) {
	form := FormUser{Profile: " 12 ", Group: "abc", Tries: "3"}
	user := fixedConverter(100).ToAPI(form, false)

	if user.ProfileID == nil || *user.ProfileID != 12 {
		t.Fatalf("profile: want 12, got %v", user.ProfileID)
	}
	if user.GroupID != nil {
		t.Fatalf("unparseable group must read as null, got %v", user.GroupID)
	}
	if user.Tries == nil || *user.Tries != 3 {
		t.Fatalf("tries: want 3, got %v", user.Tries)
	}
}
