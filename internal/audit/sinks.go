package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"fileproc/pkg/config"
	"fileproc/pkg/logger"

	"github.com/IBM/sarama"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSink appends entries to a log file, one line each.
type FileSink struct {
	path string
	w    io.WriteCloser
}

func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit file %s: %w", path, err)
	}
	return &FileSink{path: path, w: f}, nil
}

// NewRotatingFileSink appends to path and rolls it over once it grows past
// the configured size. The file is opened on first write.
func NewRotatingFileSink(path string, rc config.RotationConfig) *FileSink {
	return &FileSink{
		path: path,
		w: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    rc.MaxSizeMB,
			MaxBackups: rc.MaxBackups,
			MaxAge:     rc.MaxAgeDays,
			Compress:   rc.Compress,
			LocalTime:  true,
		},
	}
}

func (s *FileSink) Name() string { return "file:" + s.path }

func (s *FileSink) Write(e Entry) error {
	_, err := io.WriteString(s.w, e.Line()+"\n")
	return err
}

func (s *FileSink) Close() error {
	return s.w.Close()
}

// LoggerSink mirrors entries to the application logger.
type LoggerSink struct {
	logger *logger.Logger
}

func NewLoggerSink(log *logger.Logger) *LoggerSink {
	return &LoggerSink{logger: log.WithField("component", "audit")}
}

func (s *LoggerSink) Name() string { return "logger" }

func (s *LoggerSink) Write(e Entry) error {
	fields := []interface{}{"operation", e.Operation, "file", e.FileName, "level", string(e.Level)}
	if e.Level == LevelError {
		s.logger.Error(e.Message, fields...)
	} else {
		s.logger.Info(e.Message, fields...)
	}
	return nil
}

func (s *LoggerSink) Close() error { return nil }

// KafkaSink publishes entries as JSON, keyed by operation.
type KafkaSink struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaConfig returns the producer settings the sink expects.
func NewKafkaConfig(clientID string) *sarama.Config {
	sc := sarama.NewConfig()
	if clientID != "" {
		sc.ClientID = clientID
	}
	sc.Producer.RequiredAcks = sarama.WaitForLocal
	sc.Producer.Return.Successes = true
	sc.Producer.Retry.Max = 3
	return sc
}

func NewKafkaSink(brokers []string, topic, clientID string) (*KafkaSink, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewKafkaConfig(clientID))
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewKafkaSinkWithProducer(producer, topic), nil
}

func NewKafkaSinkWithProducer(producer sarama.SyncProducer, topic string) *KafkaSink {
	return &KafkaSink{producer: producer, topic: topic}
}

func (s *KafkaSink) Name() string { return "kafka:" + s.topic }

func (s *KafkaSink) Write(e Entry) error {
	value, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(e.Operation),
		Value: sarama.ByteEncoder(value),
	})
	return err
}

func (s *KafkaSink) Close() error {
	return s.producer.Close()
}
