package outcome_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/model/gen/r4"
	"github.com/damedic/fhir-model-go/model/gen/r4view"
	"github.com/damedic/fhir-model-go/outcome"
	"github.com/damedic/fhir-model-go/utils/ptr"
	"github.com/damedic/fhir-model-go/view"
)

type issueSummary struct {
	Severity   r4.IssueSeverity
	Code       r4.IssueType
	Expression []string
}

func summarize(o r4.OperationOutcome) []issueSummary {
	var out []issueSummary
	for _, i := range o.Issue {
		s := issueSummary{Severity: i.Severity, Code: i.Code}
		for _, e := range i.Expression {
			s.Expression = append(s.Expression, ptr.Deref(e, ""))
		}
		out = append(out, s)
	}
	return out
}

func decodeErr(t *testing.T, payload string, opts ...view.ValidateOption) error {
	t.Helper()
	_, err := r4view.Decode([]byte(payload), opts...)
	if err == nil {
		t.Fatalf("decode %s: expected error", payload)
	}
	return err
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  func(t *testing.T) error
		want []issueSummary
	}{
		{
			name: "wrong shape",
			err: func(t *testing.T) error {
				return decodeErr(t, `{"resourceType":"Flag","status":"active","identifier":[{"value":1}]}`)
			},
			want: []issueSummary{{r4.IssueSeverityError, r4.IssueTypeStructure, []string{"identifier[0].value"}}},
		},
		{
			name: "unknown code",
			err: func(t *testing.T) error {
				return decodeErr(t, `{"resourceType":"Flag","status":"paused"}`)
			},
			want: []issueSummary{{r4.IssueSeverityError, r4.IssueTypeCodeInvalid, []string{"status"}}},
		},
		{
			name: "choice conflict",
			err: func(t *testing.T) error {
				return decodeErr(t, `{"resourceType":"Observation","component":[{"valueString":"a","valueBoolean":true}]}`, view.StrictChoice())
			},
			want: []issueSummary{{r4.IssueSeverityError, r4.IssueTypeInvariant, []string{"component[0].value[x]"}}},
		},
		{
			name: "unknown resource type",
			err: func(t *testing.T) error {
				return decodeErr(t, `{"resourceType":"Patient"}`)
			},
			want: []issueSummary{{r4.IssueSeverityError, r4.IssueTypeStructure, []string{"resourceType"}}},
		},
		{
			name: "contained resource type",
			err: func(t *testing.T) error {
				return decodeErr(t, `{"resourceType":"Flag","contained":[{"id":"x"}]}`)
			},
			want: []issueSummary{{r4.IssueSeverityError, r4.IssueTypeStructure, []string{"contained[0].resourceType"}}},
		},
		{
			name: "unknown field",
			err: func(t *testing.T) error {
				var f r4.Flag
				return json.Unmarshal([]byte(`{"resourceType":"Flag","status":"active","code":{"txt":"x"},"subject":{}}`), &f)
			},
			want: []issueSummary{{r4.IssueSeverityError, r4.IssueTypeStructure, []string{"code.txt"}}},
		},
		{
			name: "missing field",
			err: func(t *testing.T) error {
				var f r4.Flag
				return json.Unmarshal([]byte(`{"resourceType":"Flag","code":{},"subject":{}}`), &f)
			},
			want: []issueSummary{{r4.IssueSeverityError, r4.IssueTypeRequired, []string{"status"}}},
		},
		{
			name: "syntax",
			err: func(t *testing.T) error {
				return decodeErr(t, `{"resourceType":`)
			},
			want: []issueSummary{{r4.IssueSeverityError, r4.IssueTypeProcessing, nil}},
		},
		{
			name: "other",
			err: func(t *testing.T) error {
				return errors.New("disk full")
			},
			want: []issueSummary{{r4.IssueSeverityError, r4.IssueTypeException, nil}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err(t)
			got := outcome.FromError(err)
			if diff := cmp.Diff(tt.want, summarize(got)); diff != "" {
				t.Errorf("issues mismatch (-want +got):\n%s", diff)
			}
			if d := ptr.Deref(got.Issue[0].Diagnostics, ""); d != err.Error() {
				t.Errorf("diagnostics = %q, want %q", d, err.Error())
			}
		})
	}
}

func TestFromErrorKeepsOperationOutcome(t *testing.T) {
	oo := r4.OperationOutcome{
		Issue: []r4.OperationOutcomeIssue{{
			Severity:    r4.IssueSeverityWarning,
			Code:        r4.IssueTypeNotFound,
			Diagnostics: ptr.To("no such flag"),
		}},
	}

	got := outcome.FromError(fmt.Errorf("read flag: %w", oo))
	if diff := cmp.Diff(oo, got); diff != "" {
		t.Errorf("outcome mismatch (-want +got):\n%s", diff)
	}
	if got.Error() != "warning: not-found: no such flag" {
		t.Errorf("Error() = %q", got.Error())
	}
}

func TestIssueHTTPStatus(t *testing.T) {
	issue := func(s r4.IssueSeverity, c r4.IssueType) r4.OperationOutcomeIssue {
		return r4.OperationOutcomeIssue{Severity: s, Code: c}
	}

	tests := []struct {
		name   string
		issues []r4.OperationOutcomeIssue
		want   int
	}{
		{"no issues", nil, http.StatusBadRequest},
		{"single", []r4.OperationOutcomeIssue{issue(r4.IssueSeverityError, r4.IssueTypeNotFound)}, http.StatusNotFound},
		{
			"highest severity wins",
			[]r4.OperationOutcomeIssue{
				issue(r4.IssueSeverityWarning, r4.IssueTypeConflict),
				issue(r4.IssueSeverityFatal, r4.IssueTypeException),
				issue(r4.IssueSeverityError, r4.IssueTypeNotFound),
			},
			http.StatusInternalServerError,
		},
		{
			"same severity, same status",
			[]r4.OperationOutcomeIssue{
				issue(r4.IssueSeverityError, r4.IssueTypeStructure),
				issue(r4.IssueSeverityError, r4.IssueTypeCodeInvalid),
			},
			http.StatusBadRequest,
		},
		{
			"same severity, status class",
			[]r4.OperationOutcomeIssue{
				issue(r4.IssueSeverityError, r4.IssueTypeNotFound),
				issue(r4.IssueSeverityError, r4.IssueTypeConflict),
			},
			http.StatusBadRequest,
		},
		{
			"server errors",
			[]r4.OperationOutcomeIssue{
				issue(r4.IssueSeverityError, r4.IssueTypeTransient),
				issue(r4.IssueSeverityError, r4.IssueTypeTimeout),
			},
			http.StatusInternalServerError,
		},
		{"undeclared tags", []r4.OperationOutcomeIssue{issue(0, 0)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outcome.IssueHTTPStatus(r4.OperationOutcome{Issue: tt.issues})
			if got != tt.want {
				t.Errorf("IssueHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
