// Package respond builds the uniform JSON envelope every command prints to
// stdout, including the suggested follow-up commands that make the tool
// discoverable from its own output.
package respond

import (
	"encoding/json"
	"fmt"
	"io"

	apperrors "vitals/internal/platform/errors"
)

type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type Envelope struct {
	OK          bool       `json:"ok"`
	Command     string     `json:"command"`
	Result      any        `json:"result,omitempty"`
	Error       *ErrorBody `json:"error,omitempty"`
	Fix         string     `json:"fix,omitempty"`
	NextActions []string   `json:"next_actions"`
}

var nextActions = map[string][]string{
	"status": {"vitals hrv --days 7", "vitals sleep --days 7", "vitals alert"},
	"hrv":    {"vitals sleep --days 7", "vitals status"},
	"sleep":  {"vitals hrv --days 7", "vitals status"},
	"alert":  {"vitals status", "vitals hrv --days 30"},
	"import": {"vitals status"},
}

func Success(command string, result any) Envelope {
	return Envelope{
		OK:          true,
		Command:     command,
		Result:      result,
		NextActions: actionsFor(command),
	}
}

func Failure(command string, err error) Envelope {
	code, fix := apperrors.CodeOf(err)
	return Envelope{
		Command:     command,
		Error:       &ErrorBody{Message: err.Error(), Code: code},
		Fix:         fix,
		NextActions: actionsFor(command),
	}
}

func actionsFor(command string) []string {
	if actions, ok := nextActions[command]; ok {
		// Copy so callers cannot mutate the shared table.
		out := make([]string, len(actions))
		copy(out, actions)
		return out
	}
	return []string{"vitals status"}
}

func (e Envelope) Write(w io.Writer, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("write envelope: %w", err)
	}
	return nil
}
