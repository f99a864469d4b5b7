package types

type ProjectState string

const (
	ProjectStateAbsent  ProjectState = "absent"
	ProjectStateEmpty   ProjectState = "empty-existing"
	ProjectStateValid   ProjectState = "valid-project"
	ProjectStateInvalid ProjectState = "non-empty-invalid"
)
