// Package device maps simulator device names to the launcher flags that
// select them.
package device

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Family is the ios-sim device family.
type Family string

const (
	FamilyIPhone Family = "iphone"
	FamilyIPad   Family = "ipad"
)

var ErrInvalidDevice = errors.New("device name is empty")

// Profile describes the display capabilities of a simulated device.
type Profile struct {
	Name   string
	Family Family
	Retina bool
	Tall   bool
}

// String returns a display string for the profile
func (p Profile) String() string {
	var traits []string
	if p.Retina {
		traits = append(traits, "retina")
	}
	if p.Tall {
		traits = append(traits, "tall")
	}
	if len(traits) == 0 {
		return fmt.Sprintf("%s (%s)", p.Name, p.Family)
	}
	return fmt.Sprintf("%s (%s, %s)", p.Name, p.Family, strings.Join(traits, ", "))
}

// LauncherFlags returns the ios-sim flags selecting this device.
func (p Profile) LauncherFlags() []string {
	flags := []string{"--family", string(p.Family)}
	if p.Retina {
		flags = append(flags, "--retina")
	}
	if p.Tall {
		flags = append(flags, "--tall")
	}
	return flags
}

// profiles lists the simulator device types shipped with Xcode 5 and 6.
var profiles = map[string]Profile{}

func init() {
	for _, name := range []string{
		"iPhone",
		"iPhone Retina (3.5-inch)",
		"iPhone Retina (4-inch)",
		"iPhone Retina (4-inch 64-bit)",
		"iPhone 4s",
		"iPhone 5",
		"iPhone 5s",
		"iPhone 6",
		"iPhone 6 Plus",
		"iPad",
		"iPad 2",
		"iPad Retina",
		"iPad Retina (64-bit)",
		"iPad Air",
	} {
		profiles[name] = Classify(name)
	}
}

// Classify derives a profile from the device name alone: "iPad" selects
// the iPad family, "Retina" a retina display and "(4-inch)" the tall screen.
func Classify(name string) Profile {
	p := Profile{Name: name, Family: FamilyIPhone}
	if strings.Contains(name, "iPad") {
		p.Family = FamilyIPad
	}
	p.Retina = strings.Contains(name, "Retina")
	p.Tall = strings.Contains(name, "(4-inch)")
	return p
}

// Known reports whether name is a listed simulator device type.
func Known(name string) bool {
	_, ok := profiles[strings.TrimSpace(name)]
	return ok
}

// Lookup returns the profile for a device name. Names missing from the
// table are classified by Classify; only a blank name is an error.
func Lookup(name string) (Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Profile{}, ErrInvalidDevice
	}
	if p, ok := profiles[name]; ok {
		return p, nil
	}
	return Classify(name), nil
}

// LookupAll resolves every name, failing on the first blank one.
func LookupAll(names []string) ([]Profile, error) {
	out := make([]Profile, 0, len(names))
	for i, n := range names {
		p, err := Lookup(n)
		if err != nil {
			return nil, fmt.Errorf("devices[%d]: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// All returns every listed profile sorted by name.
func All() []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
