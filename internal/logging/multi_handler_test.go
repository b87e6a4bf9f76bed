package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
)

type recordingHandler struct {
	level   slog.Level
	handled int
	fail    error
}

func (r *recordingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= r.level
}

func (r *recordingHandler) Handle(context.Context, slog.Record) error {
	r.handled++
	return r.fail
}

func (r *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *recordingHandler) WithGroup(string) slog.Handler      { return r }

func testRecord(level slog.Level) slog.Record {
	return slog.NewRecord(time.Now(), level, "message", 0)
}

func TestMultiHandler_FansOutByLevel(t *testing.T) {
	info := &recordingHandler{level: slog.LevelInfo}
	errOnly := &recordingHandler{level: slog.LevelError}
	m := NewMultiHandler(info, errOnly)

	if err := m.Handle(context.Background(), testRecord(slog.LevelInfo)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.handled != 1 || errOnly.handled != 0 {
		t.Errorf("info record routed wrong: info=%d errOnly=%d", info.handled, errOnly.handled)
	}

	if err := m.Handle(context.Background(), testRecord(slog.LevelError)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.handled != 2 || errOnly.handled != 1 {
		t.Errorf("error record routed wrong: info=%d errOnly=%d", info.handled, errOnly.handled)
	}
}

func TestMultiHandler_FailingHandlerDoesNotStopDelivery(t *testing.T) {
	broken := &recordingHandler{level: slog.LevelInfo, fail: errors.New("sink down")}
	healthy := &recordingHandler{level: slog.LevelInfo}
	m := NewMultiHandler(broken, healthy)

	err := m.Handle(context.Background(), testRecord(slog.LevelInfo))
	if err == nil {
		t.Error("expected the sink failure to surface")
	}
	if healthy.handled != 1 {
		t.Errorf("healthy handler skipped after failure, handled=%d", healthy.handled)
	}
}

func TestMultiHandler_Enabled(t *testing.T) {
	m := NewMultiHandler(&recordingHandler{level: slog.LevelError})

	if m.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info must be disabled when every handler rejects it")
	}
	if !m.Enabled(context.Background(), slog.LevelError) {
		t.Error("error must be enabled")
	}
}
