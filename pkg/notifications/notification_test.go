package notifications_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rojgarpatra/uikit/pkg/notifications"
)

func TestClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  notifications.Type
		want string
	}{
		{notifications.TypeSuccess, "bg-green-100 text-green-800 border border-green-300"},
		{notifications.TypeError, "bg-red-100 text-red-800 border border-red-300"},
		{notifications.TypeWarning, "bg-yellow-100 text-yellow-800 border border-yellow-300"},
		{notifications.TypeInfo, "bg-blue-100 text-blue-800 border border-blue-300"},
		{notifications.Type("other"), "bg-blue-100 text-blue-800 border border-blue-300"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, notifications.Class(tt.typ), "type %q", tt.typ)
		assert.Equal(t, tt.want, notifications.Notification{Type: tt.typ}.Class())
	}
}

func TestAlertClass(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "alert alert-error fixed top-4 right-4 z-50 max-w-sm fade-in",
		notifications.AlertClass(notifications.TypeError))
}

func TestParseType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, notifications.TypeSuccess, notifications.ParseType("Success"))
	assert.Equal(t, notifications.TypeWarning, notifications.ParseType(" warning"))
	assert.Equal(t, notifications.TypeError, notifications.ParseType("error"))
	assert.Equal(t, notifications.TypeInfo, notifications.ParseType(""))
	assert.Equal(t, notifications.TypeInfo, notifications.ParseType("debug"))
}
