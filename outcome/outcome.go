// Package outcome turns decoding and validation errors into
// OperationOutcome resources.
package outcome

import (
	"errors"
	"net/http"
	"slices"

	"github.com/damedic/fhir-model-go/document"
	"github.com/damedic/fhir-model-go/model/gen/r4"
	"github.com/damedic/fhir-model-go/utils/ptr"
	"github.com/damedic/fhir-model-go/view"
)

// FromError describes err as an OperationOutcome with a single issue.
// An OperationOutcome in the chain of err is returned unchanged.
func FromError(err error) r4.OperationOutcome {
	var oo r4.OperationOutcome
	if errors.As(err, &oo) {
		return oo
	}

	issue := r4.OperationOutcomeIssue{
		Severity:    r4.IssueSeverityError,
		Code:        issueCode(err),
		Diagnostics: ptr.To(err.Error()),
	}
	if path, ok := expression(err); ok {
		issue.Expression = []*string{ptr.To(path)}
	}
	return r4.OperationOutcome{Issue: []r4.OperationOutcomeIssue{issue}}
}

func issueCode(err error) r4.IssueType {
	var (
		fieldErr    *view.FieldError
		typeErr     *view.ResourceTypeError
		codeErr     *view.UnknownCodeError
		conflictErr *view.ChoiceConflictError
		unknownErr  *view.UnknownFieldError
		missingErr  *view.MissingFieldError
		syntaxErr   *document.SyntaxError
	)
	switch {
	case errors.As(err, &fieldErr), errors.As(err, &typeErr), errors.As(err, &unknownErr):
		return r4.IssueTypeStructure
	case errors.As(err, &missingErr):
		return r4.IssueTypeRequired
	case errors.As(err, &codeErr):
		return r4.IssueTypeCodeInvalid
	case errors.As(err, &conflictErr):
		return r4.IssueTypeInvariant
	case errors.As(err, &syntaxErr):
		return r4.IssueTypeProcessing
	default:
		return r4.IssueTypeException
	}
}

// expression returns the element path of err. Errors about the
// resourceType point at that member.
func expression(err error) (string, bool) {
	var typeErr *view.ResourceTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Path == "" {
			return "resourceType", true
		}
		return typeErr.Path + ".resourceType", true
	}
	path, ok := view.Path(err)
	if !ok || path == "" {
		return "", false
	}
	return path, true
}

var issueCodeToHTTPStatus = map[r4.IssueType]int{
	// invalid content
	r4.IssueTypeInvalid:   http.StatusBadRequest,
	r4.IssueTypeStructure: http.StatusBadRequest,
	r4.IssueTypeRequired:  http.StatusBadRequest,
	r4.IssueTypeValue:     http.StatusBadRequest,
	r4.IssueTypeInvariant: http.StatusBadRequest,

	// security
	r4.IssueTypeSecurity:   http.StatusForbidden,
	r4.IssueTypeLogin:      http.StatusUnauthorized,
	r4.IssueTypeUnknown:    http.StatusUnauthorized,
	r4.IssueTypeExpired:    http.StatusUnauthorized,
	r4.IssueTypeForbidden:  http.StatusForbidden,
	r4.IssueTypeSuppressed: http.StatusForbidden,

	// processing failure
	r4.IssueTypeProcessing:      http.StatusBadRequest,
	r4.IssueTypeNotSupported:    http.StatusNotImplemented,
	r4.IssueTypeDuplicate:       http.StatusConflict,
	r4.IssueTypeMultipleMatches: http.StatusBadRequest,
	r4.IssueTypeNotFound:        http.StatusNotFound,
	r4.IssueTypeDeleted:         http.StatusGone,
	r4.IssueTypeTooLong:         http.StatusRequestEntityTooLarge,
	r4.IssueTypeCodeInvalid:     http.StatusBadRequest,
	r4.IssueTypeExtension:       http.StatusBadRequest,
	r4.IssueTypeTooCostly:       http.StatusForbidden,
	r4.IssueTypeBusinessRule:    http.StatusBadRequest,
	r4.IssueTypeConflict:        http.StatusConflict,

	// transient
	r4.IssueTypeTransient:  http.StatusServiceUnavailable,
	r4.IssueTypeLockError:  http.StatusServiceUnavailable,
	r4.IssueTypeNoStore:    http.StatusServiceUnavailable,
	r4.IssueTypeException:  http.StatusInternalServerError,
	r4.IssueTypeTimeout:    http.StatusGatewayTimeout,
	r4.IssueTypeIncomplete: http.StatusServiceUnavailable,
	r4.IssueTypeThrottled:  http.StatusTooManyRequests,
}

var severityRank = map[r4.IssueSeverity]int{
	r4.IssueSeverityFatal:       3,
	r4.IssueSeverityError:       2,
	r4.IssueSeverityWarning:     1,
	r4.IssueSeverityInformation: 0,
}

// IssueHTTPStatus returns the HTTP status for the issues of the highest
// severity in o. Issues of that severity mapping to different statuses
// yield the common status class, e.g. 400 for 404 and 409. Outcomes
// without a known issue yield 400.
func IssueHTTPStatus(o r4.OperationOutcome) int {
	highestSeverity := -1
	statusCodes := []int{http.StatusBadRequest}

	for _, issue := range o.Issue {
		rank, ok := severityRank[issue.Severity]
		if !ok {
			continue
		}
		status, ok := issueCodeToHTTPStatus[issue.Code]
		if !ok {
			continue
		}

		if rank > highestSeverity {
			highestSeverity = rank
			statusCodes = []int{status}
		} else if rank == highestSeverity {
			statusCodes = append(statusCodes, status)
		}
	}

	if len(statusCodes) == 1 {
		return statusCodes[0]
	}
	slices.Sort(statusCodes)
	if statusCodes[0] == statusCodes[len(statusCodes)-1] {
		return statusCodes[0]
	}
	return (slices.Max(statusCodes) / 100) * 100
}
