package aihint

// HintGenerationError is returned for every hint failure: missing context,
// missing provider configuration, upstream errors and empty responses.
type HintGenerationError struct {
	Message string
	Err     error
}

func (e *HintGenerationError) Error() string {
	return e.Message
}

func (e *HintGenerationError) Unwrap() error {
	return e.Err
}

func newHintError(msg string, err error) *HintGenerationError {
	return &HintGenerationError{Message: msg, Err: err}
}
