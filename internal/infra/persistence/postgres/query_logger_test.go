package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"
	"time"

	"autobid/config"
	deliverycontext "autobid/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func statement() (string, int64) {
	return "DELETE FROM auctions WHERE id = 'a1'", 1
}

func TestQueryLogger_Trace(t *testing.T) {
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 10 * time.Millisecond}}

	tests := []struct {
		name    string
		begin   time.Duration
		err     error
		want    string
		wantNot bool
	}{
		{name: "failure", err: errors.New("deadlock detected"), want: "GORM query failed"},
		{name: "not found is quiet", err: gorm.ErrRecordNotFound, wantNot: true},
		{name: "slow", begin: time.Second, want: "GORM slow query"},
		{name: "fast is quiet without debug", wantNot: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			l := newQueryLogger(slog.New(slog.NewTextHandler(buf, nil)), cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.begin), statement, tt.err)

			if tt.wantNot {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "DELETE FROM auctions")
		})
	}
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	base := &bytes.Buffer{}
	request := &bytes.Buffer{}
	l := newQueryLogger(slog.New(slog.NewTextHandler(base, nil)), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(request, nil)).With(slog.String("request_id", "req-9")))
	l.Trace(ctx, time.Now(), statement, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, request.String(), "request_id=req-9")
}

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond}

	_, _, ok := poolWait(prev, prev)
	assert.False(t, ok)

	level, _, ok := poolWait(prev, sql.DBStats{WaitCount: 5, WaitDuration: 20 * time.Millisecond})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)

	level, attrs, ok := poolWait(prev, sql.DBStats{WaitCount: 4, WaitDuration: 110 * time.Millisecond})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
	assert.Equal(t, "waits", attrs[0].Key)
	assert.Equal(t, int64(1), attrs[0].Value.Int64())
}
