package respond_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	apperrors "vitals/internal/platform/errors"
	"vitals/internal/platform/respond"
)

func TestSuccessEnvelope(t *testing.T) {
	t.Parallel()
	env := respond.Success("status", map[string]int{"value": 42})
	if !env.OK || env.Command != "status" || env.Error != nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if len(env.NextActions) == 0 {
		t.Fatalf("every response carries next actions")
	}

	var buf bytes.Buffer
	if err := env.Write(&buf, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if decoded["ok"] != true {
		t.Fatalf("decoded ok = %v", decoded["ok"])
	}
	if _, present := decoded["error"]; present {
		t.Fatalf("success envelope must omit the error field")
	}
}

func TestFailureEnvelopeCarriesCodeAndFix(t *testing.T) {
	t.Parallel()
	err := apperrors.WithCode(apperrors.ErrInvalidRange, apperrors.CodeInvalidRange, "pass --days between 1 and 90")
	env := respond.Failure("hrv", err)
	if env.OK {
		t.Fatalf("failure envelope must not be ok")
	}
	if env.Error == nil || env.Error.Code != apperrors.CodeInvalidRange {
		t.Fatalf("error body = %+v", env.Error)
	}
	if env.Fix != "pass --days between 1 and 90" {
		t.Fatalf("fix = %q", env.Fix)
	}
}

func TestFailureWithUncodedError(t *testing.T) {
	t.Parallel()
	env := respond.Failure("import", errors.New("boom"))
	if env.Error.Code != apperrors.CodeInternal {
		t.Fatalf("code = %s, want internal fallback", env.Error.Code)
	}
}

func TestNextActionTable(t *testing.T) {
	t.Parallel()
	for _, command := range []string{"status", "hrv", "sleep", "alert", "import"} {
		env := respond.Success(command, nil)
		if len(env.NextActions) == 0 {
			t.Fatalf("command %s has no next actions", command)
		}
		for _, action := range env.NextActions {
			if !strings.HasPrefix(action, "vitals ") {
				t.Fatalf("action %q is not an invocable command", action)
			}
		}
	}
	if actions := respond.Success("unknown", nil).NextActions; len(actions) == 0 {
		t.Fatalf("unknown commands still suggest a starting point")
	}
}

func TestPrettyWriting(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := respond.Success("status", nil).Write(&buf, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Fatalf("pretty output should be indented: %q", buf.String())
	}
}
