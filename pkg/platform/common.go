package platform

import (
	"io"
	"os"
	"os/exec"
	"syscall"

	"fileproc/pkg/logger"
)

// BasePlatform provides common functionality shared across platforms
type BasePlatform struct {
	logger *logger.Logger
}

// NewBasePlatform creates a new base platform
func NewBasePlatform() *BasePlatform {
	return &BasePlatform{
		logger: logger.WithField("component", "platform"),
	}
}

func (bp *BasePlatform) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

func (bp *BasePlatform) Open(name string) (*os.File, error) {
	return os.Open(name)
}

func (bp *BasePlatform) Remove(name string) error {
	return os.Remove(name)
}

func (bp *BasePlatform) MkdirAll(dir string, perm os.FileMode) error {
	return os.MkdirAll(dir, perm)
}

func (bp *BasePlatform) ReadDir(dir string) ([]os.DirEntry, error) {
	return os.ReadDir(dir)
}

func (bp *BasePlatform) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (bp *BasePlatform) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (bp *BasePlatform) IsExist(err error) bool {
	return os.IsExist(err)
}

func (bp *BasePlatform) Getenv(key string) string {
	return os.Getenv(key)
}

func (bp *BasePlatform) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (bp *BasePlatform) Kill(pid int, sig syscall.Signal) error {
	return syscall.Kill(pid, sig)
}

// CreateProcessGroup puts the child in a new group whose id is its pid.
func (bp *BasePlatform) CreateProcessGroup() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid: true,
		Pgid:    0,
	}
}

func (bp *BasePlatform) CreateCommand(name string, args ...string) Command {
	return &ExecCommand{cmd: exec.Command(name, args...)}
}

// ExecCommand wraps exec.Cmd to implement Command interface
type ExecCommand struct {
	cmd *exec.Cmd
}

func (e *ExecCommand) Start() error {
	return e.cmd.Start()
}

func (e *ExecCommand) Wait() error {
	return e.cmd.Wait()
}

func (e *ExecCommand) Process() Process {
	if e.cmd.Process == nil {
		return nil
	}
	return &ExecProcess{process: e.cmd.Process}
}

func (e *ExecCommand) ExitCode() int {
	if e.cmd.ProcessState == nil {
		return -1
	}
	return e.cmd.ProcessState.ExitCode()
}

func (e *ExecCommand) SetStdout(w io.Writer) {
	e.cmd.Stdout = w
}

func (e *ExecCommand) SetStderr(w io.Writer) {
	e.cmd.Stderr = w
}

func (e *ExecCommand) SetSysProcAttr(attr *syscall.SysProcAttr) {
	e.cmd.SysProcAttr = attr
}

func (e *ExecCommand) SetEnv(env []string) {
	e.cmd.Env = env
}

func (e *ExecCommand) SetDir(dir string) {
	e.cmd.Dir = dir
}

// ExecProcess wraps os.Process to implement Process interface
type ExecProcess struct {
	process *os.Process
}

func (p *ExecProcess) Pid() int {
	return p.process.Pid
}

func (p *ExecProcess) Kill() error {
	return p.process.Kill()
}
