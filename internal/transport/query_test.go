package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURLKeepsInsertionOrder(t *testing.T) {
	got := BuildURL("/transaction", P("a", "1", "b", "2"))
	assert.Equal(t, "/transaction?a=1&b=2", got)

	got = BuildURL("/transaction", P("b", "2", "a", "1"))
	assert.Equal(t, "/transaction?b=2&a=1", got)
}

func TestBuildURLNoTrailingSeparator(t *testing.T) {
	got := BuildURL("/account", P("user_id", "3"))
	assert.Equal(t, "/account?user_id=3", got)
}

func TestBuildURLAbsentData(t *testing.T) {
	assert.Equal(t, "/account/7", BuildURL("/account/7", nil))
}

func TestBuildURLExistingQuery(t *testing.T) {
	assert.Equal(t, "/x?z=0&a=1", BuildURL("/x?z=0", P("a", "1")))
	assert.Equal(t, "/x?a=1", BuildURL("/x?", P("a", "1")))
}

func TestBuildURLEscapes(t *testing.T) {
	assert.Equal(t, "/x?name=a+b%26c", BuildURL("/x", P("name", "a b&c")))
}

func TestIsReadMethod(t *testing.T) {
	assert.True(t, IsReadMethod("GET"))
	assert.True(t, IsReadMethod("get"))
	assert.True(t, IsReadMethod("HEAD"))
	assert.False(t, IsReadMethod("POST"))
	assert.False(t, IsReadMethod("DELETE"))
	assert.False(t, IsReadMethod("PUT"))
}

func TestParamsGet(t *testing.T) {
	p := P("id", "1", "dangling")
	assert.Len(t, p, 1)

	v, ok := p.Get("id")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = p.Get("missing")
	assert.False(t, ok)
}
