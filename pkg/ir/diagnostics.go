package ir

import "github.com/andyyu2004/gqls/pkg/syntax"

// DiagnosticKind tags a Diagnostic's variant and determines its stable
// code (spec.md §7).
type DiagnosticKind int

const (
	// DiagnosticUnresolvedType: a Named type reference didn't resolve to
	// any item in the file's neighborhood.
	DiagnosticUnresolvedType DiagnosticKind = iota
	// DiagnosticInvalidDirectiveLocation: a directive definition's
	// `on ...` clause named a token outside the standard 11 locations.
	DiagnosticInvalidDirectiveLocation
	// DiagnosticMalformedItem: a parse error, reported for every ERROR or
	// MISSING node in the file's syntax tree (see ide.Diagnostics).
	DiagnosticMalformedItem
)

// Code returns the diagnostic's stable identifier.
func (k DiagnosticKind) Code() string {
	switch k {
	case DiagnosticUnresolvedType:
		return "E0001"
	case DiagnosticInvalidDirectiveLocation:
		return "E0002"
	case DiagnosticMalformedItem:
		return "E0003"
	default:
		return "E0000"
	}
}

// Severity classifies how serious a Diagnostic is, mirroring the
// severities an editor-facing transport will ultimately want to render
// with distinct gutter icons.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Diagnostic is one lowering- or resolution-time problem found while
// building a file's IR. Diagnostics never interrupt lowering: the
// offending sub-item gets a sentinel value (Type::Err, a skipped item)
// and lowering continues with its siblings.
type Diagnostic struct {
	Code     string
	Kind     DiagnosticKind
	Range    syntax.Range
	Severity Severity
	Message  string
}

// NewUnresolvedTypeDiagnostic builds the diagnostic for a Named type
// reference that failed to resolve.
func NewUnresolvedTypeDiagnostic(name Name) Diagnostic {
	return Diagnostic{
		Code:     DiagnosticUnresolvedType.Code(),
		Kind:     DiagnosticUnresolvedType,
		Range:    name.Range,
		Severity: SeverityError,
		Message:  "cannot find type `" + name.Text + "` in this project",
	}
}

// NewInvalidDirectiveLocationDiagnostic builds the diagnostic for an
// unrecognized directive-location token.
func NewInvalidDirectiveLocationDiagnostic(r syntax.Range, token string) Diagnostic {
	return Diagnostic{
		Code:     DiagnosticInvalidDirectiveLocation.Code(),
		Kind:     DiagnosticInvalidDirectiveLocation,
		Range:    r,
		Severity: SeverityError,
		Message:  "`" + token + "` is not a valid directive location",
	}
}
