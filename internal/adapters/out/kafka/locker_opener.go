// Package kafka publishes locker commands for the locker controllers.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// OpenLockerEvent asks the controller of one locker to unlatch it. PackageID is
// zero when a courier opens an empty slot.
type OpenLockerEvent struct {
	Type        string    `json:"type"`
	LockerID    int64     `json:"lockerId"`
	PackageID   int64     `json:"packageId,omitempty"`
	Reason      string    `json:"reason"`
	RequestedAt time.Time `json:"requestedAt"`
}

const openLockerType = "locker.open"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// LockerOpener writes OpenLockerEvent messages keyed by locker id, so every
// command for one locker lands on the same partition in order. The writer is
// asynchronous; Open returns once the message is buffered.
type LockerOpener struct {
	l     *slog.Logger
	w     messageWriter
	topic string
	now   func() time.Time
}

func NewLockerOpener(l *slog.Logger, brokers []string, topic string) *LockerOpener {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return newLockerOpener(l, w, topic)
}

func newLockerOpener(l *slog.Logger, w messageWriter, topic string) *LockerOpener {
	return &LockerOpener{
		l:     l,
		w:     w,
		topic: topic,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (o *LockerOpener) Open(ctx context.Context, lockerID, packageID int64, reason string) error {
	event := OpenLockerEvent{
		Type:        openLockerType,
		LockerID:    lockerID,
		PackageID:   packageID,
		Reason:      reason,
		RequestedAt: o.now(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = o.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(lockerID, 10)),
		Value: b,
		Topic: o.topic,
	})
	if err != nil {
		o.l.ErrorContext(ctx, "write kafka message",
			"lockerId", lockerID,
			"packageId", packageID,
			"error", err,
		)
		return fmt.Errorf("write kafka message: %w", err)
	}

	o.l.InfoContext(ctx, "locker open requested", "lockerId", lockerID, "packageId", packageID, "reason", reason)
	return nil
}

func (o *LockerOpener) Close() {
	if err := o.w.Close(); err != nil {
		o.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}

// LogLockerOpener only logs open requests. It stands in for LockerOpener when
// no brokers are configured.
type LogLockerOpener struct {
	l *slog.Logger
}

func NewLogLockerOpener(l *slog.Logger) *LogLockerOpener {
	return &LogLockerOpener{l: l.With("component", "locker-opener")}
}

func (o *LogLockerOpener) Open(ctx context.Context, lockerID, packageID int64, reason string) error {
	o.l.InfoContext(ctx, "locker open requested, no broker configured",
		"lockerId", lockerID,
		"packageId", packageID,
		"reason", reason,
	)
	return nil
}
