// AngelaMos | 2026
// drive_test.go

package document

import (
	"os"
	"path/filepath"
	"testing"
)

func writeToken(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "token.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing token file: %v", err)
	}
	return path
}

func TestInspectCredentials_MissingFile(t *testing.T) {
	state, err := InspectCredentials(filepath.Join(t.TempDir(), "token.json"))
	if err != nil {
		t.Fatalf("InspectCredentials returned error: %v", err)
	}
	if state != StateUnconfigured {
		t.Fatalf("expected unconfigured, got %s", state)
	}
}

func TestInspectCredentials_RefreshTokenPresent(t *testing.T) {
	path := writeToken(t, `{
		"type": "authorized_user",
		"refresh_token": "1//refresh",
		"expiry": "2020-01-01T00:00:00Z"
	}`)

	state, err := InspectCredentials(path)
	if err != nil {
		t.Fatalf("InspectCredentials returned error: %v", err)
	}
	if state != StateValid {
		t.Fatalf("expected valid with a refresh token, got %s", state)
	}
}

func TestInspectCredentials_ExpiredWithoutRefresh(t *testing.T) {
	path := writeToken(t, `{
		"token": "ya29.stale",
		"expiry": "2020-01-01T00:00:00Z"
	}`)

	state, err := InspectCredentials(path)
	if err != nil {
		t.Fatalf("InspectCredentials returned error: %v", err)
	}
	if state != StateExpired {
		t.Fatalf("expected expired, got %s", state)
	}
}

func TestInspectCredentials_CorruptFile(t *testing.T) {
	path := writeToken(t, "not json at all")

	state, err := InspectCredentials(path)
	if err != nil {
		t.Fatalf("InspectCredentials returned error: %v", err)
	}
	if state != StateExpired {
		t.Fatalf("expected a corrupt token to count as expired, got %s", state)
	}
}

func TestCredentialState_String(t *testing.T) {
	cases := map[CredentialState]string{
		StateUnconfigured: "unconfigured",
		StateExpired:      "expired",
		StateValid:        "valid",
	}
	for state, want := range cases {
		if state.String() != want {
			t.Fatalf("state %d: expected %q, got %q", state, want, state.String())
		}
	}
}
