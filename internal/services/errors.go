package services

// ValidationError carries a field-level message suitable for direct
// display in the response envelope; the HTTP boundary maps it to 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
