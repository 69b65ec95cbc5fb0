// Package build holds build metadata injected via ldflags.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String formats the info on one line.
func (i Info) String() string {
	return fmt.Sprintf("dynpanels %s (%s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}

