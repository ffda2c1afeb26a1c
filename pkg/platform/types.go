package platform

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"io"
	"os"
	"syscall"
)

// Platform is everything the processor needs from the host: scratch file
// handling, process groups and external command creation.
//
//counterfeiter:generate . Platform
type Platform interface {
	OsInterface
	ProcessInterface
	CommandFactory

	GetInfo() *Info
}

//counterfeiter:generate . OsInterface
type OsInterface interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	Open(name string) (*os.File, error)
	Remove(name string) error
	MkdirAll(dir string, perm os.FileMode) error
	ReadDir(dir string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
	IsNotExist(err error) bool
	IsExist(err error) bool
	Getenv(key string) string
	LookPath(file string) (string, error)
}

//counterfeiter:generate . ProcessInterface
type ProcessInterface interface {
	// Kill sends a signal to a process or process group
	// - Positive pid: the specific process
	// - Negative pid: every process in the group
	Kill(pid int, sig syscall.Signal) error
	CreateProcessGroup() *syscall.SysProcAttr
}

//counterfeiter:generate . CommandFactory
type CommandFactory interface {
	CreateCommand(name string, args ...string) Command
}

//counterfeiter:generate . Command
type Command interface {
	Start() error
	Wait() error
	Process() Process
	// ExitCode is the exit status after Wait, -1 if the process never
	// exited normally.
	ExitCode() int
	SetStdout(w io.Writer)
	SetStderr(w io.Writer)
	SetSysProcAttr(attr *syscall.SysProcAttr)
	SetEnv(env []string)
	SetDir(dir string)
}

//counterfeiter:generate . Process
type Process interface {
	Pid() int
	Kill() error
}

// Info describes the host the server runs on.
type Info struct {
	OS           string
	Architecture string
	// ProcessGroups reports whether children can be signalled as a group.
	ProcessGroups bool
}

// LinuxPlatform provides Linux-specific implementations
type LinuxPlatform struct {
	*BasePlatform
}

// DarwinPlatform provides macOS-specific implementations
type DarwinPlatform struct {
	*BasePlatform
}

var _ Platform = (*LinuxPlatform)(nil)
var _ Platform = (*DarwinPlatform)(nil)
