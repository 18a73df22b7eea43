package userform

import (
	"encoding/json"
	"testing"

	"github.com/goliatone/go-adminform/pkg/testsupport"
)

// Locks the full create-payload shape: key set, null foreign keys, injected
// defaults, and the lifecycle stamps. Regenerate with UPDATE_GOLDENS=1.
func TestCreatePayloadGolden(t *testing.T) {
	form := FormUser{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Code:            "OP-0001",
		Password:        "s3cret!",
		PasswordConfirm: "s3cret!",
		Active:          true,
		Role:            "admin",
		Profile:         "2",
	}

	payload := fixedConverter(1700000000).ToAPI(form, true)
	testsupport.WriteGolden(t, "testdata/create_payload.golden.json", payload)

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	var want map[string]any
	if err := json.Unmarshal(testsupport.MustReadGolden(t, "testdata/create_payload.golden.json"), &want); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}

	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("create payload drifted (-want +got):\n%s", diff)
	}
}
