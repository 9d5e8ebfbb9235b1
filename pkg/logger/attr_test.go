package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rojgarpatra/uikit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("field", logger.Field("email"), logger.Event("blur"))
	require.Equal(t, "field", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "field", g[0].Key)
	assert.Equal(t, "event", g[1].Key)
}

func TestError(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
}

func TestErrors(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))

	attr := logger.Errors(nil, errors.New("a"), errors.New("b"))
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "1", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
		val  string
	}{
		{logger.Component("ratelimiter"), "component", "ratelimiter"},
		{logger.Event("click"), "event", "click"},
		{logger.Field("password1"), "field", "password1"},
		{logger.Target("theme-toggle"), "target", "theme-toggle"},
		{logger.NotificationID("n-1"), "notification_id", "n-1"},
		{logger.Theme("dark"), "theme", "dark"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.attr.Key)
		assert.Equal(t, tt.val, tt.attr.Value.String())
	}
}
