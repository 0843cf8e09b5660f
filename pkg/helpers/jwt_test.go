package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManagerIssueAndParse(t *testing.T) {
	m := NewJWTManager("secret", 60*time.Minute, "expense-tracker")
	assert.Equal(t, 60, m.TTLMinutes())

	issued, err := m.Issue("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.SessionID)

	claims, err := m.Parse(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, issued.SessionID, claims.SessionID)
}

func TestJWTManagerRejects(t *testing.T) {
	m := NewJWTManager("secret", time.Minute, "")
	issued, err := m.Issue("user-1")
	require.NoError(t, err)

	other := NewJWTManager("other", time.Minute, "")
	_, err = other.Parse(issued.Token)
	assert.Error(t, err)

	m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = m.Parse(issued.Token)
	assert.Error(t, err)

	_, err = NewJWTManager("", time.Minute, "").Issue("user-1")
	assert.Error(t, err)
}
