package templating

// TemplatingError reports a template that could not be filled, typically a
// required variable with no usable value in the mapping.
type TemplatingError struct {
	Message  string
	Variable string // Offending variable name as written in the template, if any
}

func (e *TemplatingError) Error() string {
	return "[TemplatingError] " + e.Message
}
