package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testRecord is a minimal model for exercising database callbacks
type testRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100"`
	CreatedAt time.Time
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&testRecord{})
	require.NoError(t, err)

	return db
}

func setupSpanRecorder() (*trace.TracerProvider, *tracetest.SpanRecorder) {
	spanRecorder := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(spanRecorder))
	return tp, spanRecorder
}

func TestDefaultDBTracingConfig(t *testing.T) {
	cfg := DefaultDBTracingConfig()

	assert.False(t, cfg.Enabled)
	assert.False(t, cfg.LogFullSQL)
	assert.Equal(t, 200*time.Millisecond, cfg.SlowQueryThresh)
	assert.Equal(t, "postgresql", cfg.DBSystem)
}

func TestNewDBTracingPlugin(t *testing.T) {
	cfg := DefaultDBTracingConfig()
	cfg.Enabled = true

	plugin := NewDBTracingPlugin(cfg, zap.NewNop())

	assert.NotNil(t, plugin)
	assert.Equal(t, cfg, plugin.config)
}

func TestDBTracingPlugin_Register_Disabled(t *testing.T) {
	db := setupTestDB(t)

	plugin := NewDBTracingPlugin(DefaultDBTracingConfig(), zap.NewNop())

	err := plugin.Register(db)
	assert.NoError(t, err)
}

func TestDBTracingPlugin_Register_Enabled(t *testing.T) {
	db := setupTestDB(t)

	cfg := DefaultDBTracingConfig()
	cfg.Enabled = true

	plugin := NewDBTracingPlugin(cfg, zap.NewNop())

	err := plugin.Register(db)
	assert.NoError(t, err)
}

func TestDBTracingPlugin_Register_WithFullSQL(t *testing.T) {
	db := setupTestDB(t)

	cfg := DefaultDBTracingConfig()
	cfg.Enabled = true
	cfg.LogFullSQL = true

	plugin := NewDBTracingPlugin(cfg, zap.NewNop())

	err := plugin.Register(db)
	assert.NoError(t, err)
}

func TestDBTracingPlugin_AfterCallback_RowsAffected(t *testing.T) {
	tp, spanRecorder := setupSpanRecorder()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	plugin := NewDBTracingPlugin(DefaultDBTracingConfig(), zap.NewNop())

	ctx, span := tp.Tracer("test").Start(context.Background(), "db.query")

	db := setupTestDB(t).Session(&gorm.Session{})
	db.Statement.Context = ctx
	db.Statement.RowsAffected = 3
	db.Statement.Table = "test_records"

	plugin.afterCallback(db)
	span.End()

	spans := spanRecorder.Ended()
	require.Len(t, spans, 1)

	attrMap := make(map[string]interface{})
	for _, attr := range spans[0].Attributes() {
		attrMap[string(attr.Key)] = attr.Value.AsInterface()
	}
	assert.Equal(t, int64(3), attrMap["db.rows_affected"])
	assert.Equal(t, "test_records", attrMap["db.sql.table"])
}

func TestDBTracingPlugin_AfterCallback_SlowQuery(t *testing.T) {
	tp, spanRecorder := setupSpanRecorder()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	cfg := DefaultDBTracingConfig()
	cfg.SlowQueryThresh = 1 * time.Nanosecond
	plugin := NewDBTracingPlugin(cfg, zap.NewNop())

	ctx, span := tp.Tracer("test").Start(context.Background(), "db.query")
	ctx = context.WithValue(ctx, queryStartTimeKey, time.Now().Add(-time.Second))

	db := setupTestDB(t).Session(&gorm.Session{})
	db.Statement.Context = ctx

	plugin.afterCallback(db)
	span.End()

	spans := spanRecorder.Ended()
	require.Len(t, spans, 1)

	attrMap := make(map[string]interface{})
	for _, attr := range spans[0].Attributes() {
		attrMap[string(attr.Key)] = attr.Value.AsInterface()
	}
	assert.Equal(t, true, attrMap["db.slow_query"])

	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "slow_query_warning", events[0].Name)
}

func TestDBTracingPlugin_AfterCallback_Error(t *testing.T) {
	tp, spanRecorder := setupSpanRecorder()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	plugin := NewDBTracingPlugin(DefaultDBTracingConfig(), zap.NewNop())

	ctx, span := tp.Tracer("test").Start(context.Background(), "db.query")

	db := setupTestDB(t).Session(&gorm.Session{})
	db.Statement.Context = ctx
	db.Error = errors.New("constraint violation")

	plugin.afterCallback(db)
	span.End()

	spans := spanRecorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestDBTracingPlugin_AfterCallback_RecordNotFound(t *testing.T) {
	tp, spanRecorder := setupSpanRecorder()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	plugin := NewDBTracingPlugin(DefaultDBTracingConfig(), zap.NewNop())

	ctx, span := tp.Tracer("test").Start(context.Background(), "db.query")

	db := setupTestDB(t).Session(&gorm.Session{})
	db.Statement.Context = ctx
	db.Error = gorm.ErrRecordNotFound

	plugin.afterCallback(db)
	span.End()

	spans := spanRecorder.Ended()
	require.Len(t, spans, 1)
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)
}
