package valueschema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/valueschema/i18n"
)

// Cause classifies an adjustment failure.
type Cause string

// Causes. The engine raises only CauseType and CauseArray; the rest come from leaf appliers.
const (
	CauseType      Cause = "type"
	CauseRequired  Cause = "required"
	CauseNull      Cause = "null"
	CauseEmpty     Cause = "empty"
	CauseOnly      Cause = "only"
	CauseMinValue  Cause = "min_value"
	CauseMaxValue  Cause = "max_value"
	CauseMinLength Cause = "min_length"
	CauseMaxLength Cause = "max_length"
	CausePattern   Cause = "pattern"
	CauseChecksum  Cause = "checksum"
	CauseArray     Cause = "array"
	CauseConverter Cause = "converter"
)

// ErrorName is the name reported by AdjustmentError.Name.
const ErrorName = "AdjustmentError"

// AdjustmentError describes one failed adjustment.
type AdjustmentError struct {
	Cause    Cause
	Value    any      // The original (not adjusted) value at the failure point.
	KeyStack KeyStack // Path from the adjustment root.
	Err      error    // Optional: underlying error (for example from a converter).
}

// Raise builds an AdjustmentError for the value being adjusted in v.
func Raise(cause Cause, v *Values, ks KeyStack) *AdjustmentError {
	return &AdjustmentError{Cause: cause, Value: v.Original, KeyStack: ks}
}

// Name returns ErrorName.
func (e *AdjustmentError) Name() string { return ErrorName }

func (e *AdjustmentError) Error() string {
	msg := i18n.T(string(e.Cause), nil)
	if e.Err != nil {
		return fmt.Sprintf("%s at %s: %s: %v", e.Cause, e.KeyStack.Pointer(), msg, e.Err)
	}
	return fmt.Sprintf("%s at %s: %s", e.Cause, e.KeyStack.Pointer(), msg)
}

func (e *AdjustmentError) Unwrap() error { return e.Err }

// Errors is a collection of adjustment failures that implements error.
type Errors []*AdjustmentError

// Error summarizes the first few errors.
func (es Errors) Error() string {
	if len(es) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(es), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		// e.g. pattern at /users/0/email
		fmt.Fprintf(b, "%s at %s", es[i].Cause, es[i].KeyStack.Pointer())
	}
	if len(es) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(es))
	}
	return b.String()
}

// AsAdjustmentError extracts an *AdjustmentError using errors.As.
func AsAdjustmentError(err error) (*AdjustmentError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AdjustmentError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// AsErrors extracts Errors from err. A single *AdjustmentError is returned as a
// one-element collection.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var es Errors
	if errors.As(err, &es) {
		return es, true
	}
	if ae, ok := AsAdjustmentError(err); ok {
		return Errors{ae}, true
	}
	return nil, false
}
