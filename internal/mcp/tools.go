package mcp

// CaptureInput represents input for the capture tool
type CaptureInput struct {
	ConfigPath      string `json:"config_path" jsonschema:"path to the simshots JSON or YAML configuration file"`
	DestinationPath string `json:"destination_path,omitempty" jsonschema:"destination path for screenshots, overrides the configuration"`
	DryRun          bool   `json:"dry_run,omitempty" jsonschema:"list the commands that would run without running them"`
}

// CaptureOutput represents output from the capture tool
type CaptureOutput struct {
	AppPath   string          `json:"app_path"`
	Built     bool            `json:"built"`
	Launches  []LaunchSummary `json:"launches"`
	Failed    int             `json:"failed"`
	New       int             `json:"new"`
	Changed   int             `json:"changed"`
	Unchanged int             `json:"unchanged"`
	Log       string          `json:"log"`
}

// LaunchSummary represents one device and language launch
type LaunchSummary struct {
	Device    string `json:"device"`
	Language  string `json:"language"`
	OutputDir string `json:"output_dir"`
	Error     string `json:"error,omitempty"`
}

// ListDevicesInput represents input for the list_devices tool
type ListDevicesInput struct{}

// ListDevicesOutput represents output from the list_devices tool
type ListDevicesOutput struct {
	Devices []DeviceInfo `json:"devices"`
}

// DeviceInfo represents a supported simulator device
type DeviceInfo struct {
	Name   string `json:"name"`
	Family string `json:"family"`
	Retina bool   `json:"retina"`
	Tall   bool   `json:"tall"`
}
