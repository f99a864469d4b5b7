package types

// RunResult is the outcome of executing a snippet inside a project.
type RunResult struct {
	File     string `yaml:"file"`
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exit_code"`
}

// ProjectSummary is the serializable view of a project emitted by the CLI.
type ProjectSummary struct {
	Name         string   `yaml:"name"`
	Path         string   `yaml:"path"`
	Dependencies []string `yaml:"dependencies"`
}
