package audit

import (
	"fmt"

	"fileproc/pkg/config"
	"fileproc/pkg/logger"
)

// NewFromConfig builds a recorder with the sinks cfg enables. The caller
// starts and closes it. A disabled audit trail yields a recorder with no
// sinks so callers need no special case.
func NewFromConfig(cfg config.AuditConfig, log *logger.Logger) (*AsyncRecorder, error) {
	if !cfg.Enabled {
		return NewAsyncRecorder(cfg.QueueSize, log), nil
	}

	var sinks []Sink
	closeAll := func() {
		for _, s := range sinks {
			_ = s.Close()
		}
	}

	switch {
	case cfg.FilePath == "":
	case cfg.Rotation.Enabled:
		sinks = append(sinks, NewRotatingFileSink(cfg.FilePath, cfg.Rotation))
	default:
		fs, err := NewFileSink(cfg.FilePath)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, fs)
	}

	if cfg.Console {
		sinks = append(sinks, NewLoggerSink(log))
	}

	if cfg.Kafka.Enabled {
		ks, err := NewKafkaSink(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.ClientID)
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("kafka audit sink: %w", err)
		}
		sinks = append(sinks, ks)
	}

	return NewAsyncRecorder(cfg.QueueSize, log, sinks...), nil
}
