package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Lifecycle(t *testing.T) {
	s := New()
	assert.False(t, s.IsLoggedIn())
	assert.Empty(t, s.Email())

	s.SignIn("a@b.com")
	assert.True(t, s.IsLoggedIn())
	assert.Equal(t, "a@b.com", s.Email())

	s.SignOut()
	assert.False(t, s.IsLoggedIn())
	assert.Empty(t, s.Email())
}
