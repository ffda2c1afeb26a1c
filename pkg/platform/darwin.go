package platform

import "runtime"

// GetInfo returns Darwin platform information. Darwin has process groups but
// no parent-death signal, so a server crash can orphan a running converter.
func (dp *DarwinPlatform) GetInfo() *Info {
	return &Info{
		OS:            "darwin",
		Architecture:  runtime.GOARCH,
		ProcessGroups: true,
	}
}
