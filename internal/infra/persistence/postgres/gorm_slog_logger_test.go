package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"dashboard/config"
	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return buf, newGormSlogLogger(base, cfg)
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantNot string
	}{
		{name: "record not found is quiet", begin: time.Now(), err: gorm.ErrRecordNotFound, wantNot: "query failed"},
		{name: "errors are logged", begin: time.Now(), err: errors.New("boom"), want: "query failed"},
		{name: "slow queries warn", begin: time.Now().Add(-time.Second), want: "slow query"},
		{name: "fast queries are quiet outside debug", begin: time.Now(), wantNot: "SELECT 1"},
		{name: "debug logs every query", debug: true, begin: time.Now(), want: "SELECT 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, l := newBufferedGormLogger(tt.debug)
			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	_, l := newBufferedGormLogger(false)

	requestBuf := &bytes.Buffer{}
	requestLogger := slog.New(slog.NewJSONHandler(requestBuf, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Contains(t, requestBuf.String(), `"request_id":"req-1"`)
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	buf, l := newBufferedGormLogger(true)
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, buf.String())
}
