package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const envFile = ".env"

// Tools names the external programs and directories a run depends on
type Tools struct {
	Xcodebuild       string
	IOSSim           string
	Killall          string
	SimulatorApp     string
	DerivedDataRoot  string
	SimulatorSupport string
}

// DefaultTools returns the stock Xcode locations
func DefaultTools() Tools {
	return Tools{
		Xcodebuild:       "xcodebuild",
		IOSSim:           "ios-sim",
		Killall:          "killall",
		SimulatorApp:     "iPhone Simulator",
		DerivedDataRoot:  ExpandHome("~/Library/Developer/Xcode/DerivedData"),
		SimulatorSupport: ExpandHome("~/Library/Application Support/iPhone Simulator"),
	}
}

// LoadTools returns DefaultTools overridden by SIMSHOTS_* variables. The
// process environment wins over a .env file in configDir, which wins over
// the defaults. The .env file is read, never exported into the process, so
// one configuration's values cannot leak into the next load.
func LoadTools(configDir string) (Tools, error) {
	var dotenv map[string]string
	if configDir != "" {
		p := filepath.Join(configDir, envFile)
		vals, err := godotenv.Read(p)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Tools{}, fmt.Errorf("failed to load %s: %w", p, err)
		}
		dotenv = vals
	}

	t := DefaultTools()
	overrides := []struct {
		env  string
		dst  *string
		path bool
	}{
		{"SIMSHOTS_XCODEBUILD", &t.Xcodebuild, false},
		{"SIMSHOTS_IOS_SIM", &t.IOSSim, false},
		{"SIMSHOTS_KILLALL", &t.Killall, false},
		{"SIMSHOTS_SIMULATOR_APP", &t.SimulatorApp, false},
		{"SIMSHOTS_DERIVED_DATA", &t.DerivedDataRoot, true},
		{"SIMSHOTS_SIMULATOR_SUPPORT", &t.SimulatorSupport, true},
	}
	for _, o := range overrides {
		v := os.Getenv(o.env)
		if v == "" {
			v = dotenv[o.env]
		}
		if v == "" {
			continue
		}
		if o.path {
			v = ExpandHome(v)
		}
		*o.dst = v
	}
	return t, nil
}
