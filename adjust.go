package valueschema

import "sort"

// ErrorHandler decides what an adjustment produces when it fails. It receives the error
// and returns a fallback value, or an error to abort. Returning Undefined asks record-level
// callers to omit the field.
//
// The top-level Adjust additionally calls the handler once with err == nil after all fields
// were attempted and at least one failed.
type ErrorHandler func(err *AdjustmentError) (any, error)

// OnErrorDefault turns every failure into a hard failure.
func OnErrorDefault(err *AdjustmentError) (any, error) {
	if err == nil {
		return nil, nil
	}
	return nil, err
}

// Collect returns a handler that appends every failure to errs and omits the failing
// value. On the final nil notice it returns the collected Errors, so a multi-field Adjust
// reports all of them at once.
func Collect(errs *Errors) ErrorHandler {
	return func(err *AdjustmentError) (any, error) {
		if err != nil {
			*errs = append(*errs, err)
			return Undefined, nil
		}
		if len(*errs) > 0 {
			return nil, *errs
		}
		return nil, nil
	}
}

func pickHandler(hs []ErrorHandler) ErrorHandler {
	if len(hs) > 0 && hs[len(hs)-1] != nil {
		return hs[len(hs)-1]
	}
	return OnErrorDefault
}

// Adjust adjusts every field declared in schemas against the same-named value of data and
// returns the record of defined results.
//
// A data value that is not a record fails with CauseType. When the handler recovers, its
// fallback becomes the result only if it is itself a record; any other fallback (including
// Undefined) yields a nil result. The nil notice follows, as for field failures.
//
// Fields run in ascending name order with a KeyStack rooted at the field name. A field
// failure is routed to onError; when the handler returns an error Adjust stops and returns
// (nil, err). Otherwise all fields are attempted, and if any failed the handler is notified
// once with nil; an error returned from that notice is returned together with the complete
// result.
func Adjust(data any, schemas map[string]*Schema, onError ...ErrorHandler) (map[string]any, error) {
	h := pickHandler(onError)
	rec, ok := AsObject(data)
	if !ok {
		fallback, err := h(&AdjustmentError{Cause: CauseType, Value: data})
		if err != nil {
			return nil, err
		}
		m, _ := AsObject(fallback)
		if _, err := h(nil); err != nil {
			return m, err
		}
		return m, nil
	}

	keys := make([]string, 0, len(schemas))
	for k := range schemas {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make(map[string]any, len(keys))
	hasError := false
	for _, key := range keys {
		value, exists := rec[key]
		if !exists {
			value = Undefined
		}
		adjusted, err := schemas[key].applyTo(value, fieldHandler(h, &hasError), KeyStack{key})
		if err != nil {
			return nil, err
		}
		if !IsUndefined(adjusted) {
			result[key] = adjusted
		}
	}
	if hasError {
		if _, err := h(nil); err != nil {
			return result, err
		}
	}
	return result, nil
}

// fieldHandler records that a field failed and forwards to the caller's handler. The
// error already carries the field name as the first KeyStack element.
func fieldHandler(h ErrorHandler, hasError *bool) ErrorHandler {
	return func(err *AdjustmentError) (any, error) {
		*hasError = true
		return h(err)
	}
}
