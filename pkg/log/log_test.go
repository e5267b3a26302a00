package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForContext_CorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	hook := test.NewGlobal()
	SetupTestLogger()

	ctx, correlationID := WithCorrelationID(context.Background())
	require.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, CorrelationID(ctx))

	ForContext(ctx).WithField("cache_key", "abc").Info("mensagem")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, correlationID, entry.Data[correlationIDField])
	assert.Equal(t, "abc", entry.Data["cache_key"])
}

func TestWithFields_DevelopmentKeepsOnlyKnownFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	hook := test.NewGlobal()
	SetupTestLogger()

	L.WithFields(Fields{
		"cache_key":  "abc",
		"user_agent": "curl",
	}).WithField("remote_addr", "127.0.0.1").Warn("mensagem")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "abc", entry.Data["cache_key"])
	assert.NotContains(t, entry.Data, "user_agent")
	assert.NotContains(t, entry.Data, "remote_addr")
}

func TestCorrelationID_Empty(t *testing.T) {
	assert.Empty(t, CorrelationID(context.Background()))
}
