package platform

import "syscall"

// CreateProcessGroup also asks the kernel to SIGKILL the child if the
// server dies first, so a crashed server does not leave converters behind.
func (lp *LinuxPlatform) CreateProcessGroup() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid:   true,
		Pgid:      0,
		Pdeathsig: syscall.SIGKILL,
	}
}
