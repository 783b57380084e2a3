package input

// Direction defines the directions focus can move in a form.
type Direction int

const (
	Up Direction = iota //nolint:varnamelen
	Down
)
