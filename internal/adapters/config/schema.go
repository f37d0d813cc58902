package config

// ScriptFile represents the structure of a sheet script file.
type ScriptFile struct {
	Name  string    `yaml:"name"`
	Steps []StepDTO `yaml:"steps"`
	Print string    `yaml:"print"`
}

// StepDTO represents a single step in a script file. Exactly one of Set and Clear is given.
type StepDTO struct {
	Cell  string  `yaml:"cell"`
	Set   *string `yaml:"set"`
	Clear bool    `yaml:"clear"`
}
