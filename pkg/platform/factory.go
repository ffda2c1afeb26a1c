package platform

import (
	"fmt"
	"runtime"
	"sync"
)

var (
	currentPlatform Platform
	platformOnce    sync.Once
)

// NewPlatform returns the process-wide platform for the current OS.
func NewPlatform() Platform {
	platformOnce.Do(func() {
		currentPlatform = createPlatform()
	})
	return currentPlatform
}

func createPlatform() Platform {
	switch runtime.GOOS {
	case "linux":
		return &LinuxPlatform{
			BasePlatform: NewBasePlatform(),
		}
	case "darwin":
		return &DarwinPlatform{
			BasePlatform: NewBasePlatform(),
		}
	default:
		panic(fmt.Sprintf("unsupported platform: %s", runtime.GOOS))
	}
}

// GetPlatformInfo returns information about current platform capabilities
func GetPlatformInfo() *Info {
	return NewPlatform().GetInfo()
}
