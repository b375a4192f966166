package valueschema

// Values is the state threaded through one adjustment run.
//
// Original is the value handed to Adjust and is never replaced during the run; appliers
// read it for error reporting. Output starts equal to Original and carries whatever the
// previous applier left behind.
type Values struct {
	Original any
	Output   any
}

func newValues(v any) *Values { return &Values{Original: v, Output: v} }
