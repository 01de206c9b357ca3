package validator

// Validator validates structs annotated with `validate` tags.
type Validator interface {
	// Validate returns nil when data satisfies its tags, or a
	// V10ValidationError describing each failing field.
	Validate(data any) error
}
