package config

// Config represents a screenshot run configuration
type Config struct {
	DestinationPath  string   `json:"destination_path" yaml:"destination_path"`
	ProjectPath      string   `json:"project_path" yaml:"project_path"`
	BuildConfig      string   `json:"build_config" yaml:"build_config"`
	AppName          string   `json:"app_name" yaml:"app_name"`
	Devices          []string `json:"devices" yaml:"devices"`
	Languages        []string `json:"languages" yaml:"languages"`
	Workspace        string   `json:"workspace,omitempty" yaml:"workspace,omitempty"`
	Scheme           string   `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	TargetName       string   `json:"target_name,omitempty" yaml:"target_name,omitempty"`
	ResetBetweenRuns bool     `json:"reset_between_runs,omitempty" yaml:"reset_between_runs,omitempty"`

	// Dir is the directory containing the configuration file.
	Dir string `json:"-" yaml:"-"`
}

// ShouldBuild reports whether the app must be compiled before capturing.
// Without a workspace or target the app is assumed to be built already.
func (c *Config) ShouldBuild() bool {
	return c.Workspace != "" || c.TargetName != ""
}

// Validate checks that every required key is set
func (c *Config) Validate() error {
	required := []struct {
		key   string
		empty bool
	}{
		{"destination_path", c.DestinationPath == ""},
		{"project_path", c.ProjectPath == ""},
		{"build_config", c.BuildConfig == ""},
		{"app_name", c.AppName == ""},
		{"devices", len(c.Devices) == 0},
		{"languages", len(c.Languages) == 0},
	}
	for _, r := range required {
		if r.empty {
			return &Error{Key: r.key, Err: ErrMissingKey}
		}
	}
	if c.Workspace != "" && c.Scheme == "" {
		return &Error{Key: "scheme", Err: ErrMissingKey}
	}
	return nil
}
