package audit

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"fmt"
	"time"
)

type Level string

const (
	LevelSuccess Level = "SUCCESS"
	LevelError   Level = "ERROR"
	LevelInfo    Level = "INFO"
)

const timeLayout = "2006-01-02 15:04:05"

// Entry is one audit line.
type Entry struct {
	Time      time.Time `json:"time"`
	Level     Level     `json:"level"`
	Operation string    `json:"operation"`
	FileName  string    `json:"fileName"`
	Message   string    `json:"message"`
}

// Line renders the entry in the server.log format, without a newline.
func (e Entry) Line() string {
	return fmt.Sprintf("[%s] %s - Service: %s, File: %s, Message: %s",
		e.Time.Format(timeLayout), e.Level, e.Operation, e.FileName, e.Message)
}

// Recorder accepts audit events from sessions. Implementations must be safe
// for concurrent use and must not block the caller.
//
//counterfeiter:generate . Recorder
type Recorder interface {
	Record(level Level, operation, fileName, message string)
}

// Sink is a destination for entries. Sinks are driven by a single
// goroutine and need not be safe for concurrent use.
//
//counterfeiter:generate . Sink
type Sink interface {
	Name() string
	Write(Entry) error
	Close() error
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) Record(Level, string, string, string) {}
