package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPv4Lookup_Literales(t *testing.T) {
	l := newIPv4Lookup("")
	assert.Nil(t, l.fallback, "sin DB_RESOLVER no hay resolver alternativo")

	addrs, err := l.LookupHost(context.Background(), "10.0.0.7")
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.7"}, addrs)

	_, err = l.LookupHost(context.Background(), "2001:db8::1")
	assert.Error(t, err)
}

func TestNewIPv4Lookup_ConResolver(t *testing.T) {
	l := newIPv4Lookup("1.1.1.1:53")
	require.NotNil(t, l.fallback)
	assert.True(t, l.fallback.PreferGo)
}
