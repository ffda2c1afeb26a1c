package platform

import "runtime"

func (lp *LinuxPlatform) GetInfo() *Info {
	return &Info{
		OS:            "linux",
		Architecture:  runtime.GOARCH,
		ProcessGroups: true,
	}
}
