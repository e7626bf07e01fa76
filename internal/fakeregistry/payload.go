package fakeregistry

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rivo/uniseg"

	"github.com/zjrosen/monkeyreg/internal/monkey"
	"github.com/zjrosen/monkeyreg/internal/registry"
)

// fieldError mirrors one entry of a server-side validation failure. The
// detail of a 422 is a list of these, not a string.
type fieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// decodePayload reads and checks a create/update body. It writes the error
// response itself and returns false when the body is unusable. The checks
// are the server's own, including the marmoset age cap the client leaves
// advisory.
func decodePayload(w http.ResponseWriter, r *http.Request) (registry.Payload, bool) {
	var p registry.Payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []fieldError{{Loc: []string{"body"}, Msg: "invalid json", Type: "value_error.jsondecode"}},
		})
		return p, false
	}

	var errs []fieldError
	if n := uniseg.GraphemeClusterCount(p.Name); n < monkey.MinNameLength || n > monkey.MaxNameLength {
		errs = append(errs, fieldError{Loc: []string{"body", "name"}, Msg: "ensure this value has 2 to 40 characters", Type: "value_error.any_str"})
	}
	sp, ok := monkey.ParseSpecies(p.Species)
	if !ok || string(sp) != p.Species {
		errs = append(errs, fieldError{Loc: []string{"body", "species"}, Msg: "value is not a valid enumeration member", Type: "type_error.enum"})
	}
	if p.AgeYears < monkey.MinAge || p.AgeYears > monkey.MaxAge {
		errs = append(errs, fieldError{Loc: []string{"body", "age_years"}, Msg: "ensure this value is between 0 and 45", Type: "value_error.number"})
	} else if sp == monkey.Marmoset && p.AgeYears > monkey.MarmosetAgeHint {
		errs = append(errs, fieldError{Loc: []string{"body", "age_years"}, Msg: "Marmoset age cannot exceed 22 years", Type: "value_error"})
	}
	if len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": errs})
		return p, false
	}
	return p, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func readAll(r *http.Request) ([]byte, error) {
	defer func() { _ = r.Body.Close() }()
	return io.ReadAll(io.LimitReader(r.Body, 1<<20))
}

func newBody(b []byte) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(b))
}
