package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"erpctl/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	cfg := config.Config{SessionFile: path}
	return NewStore(cfg, zap.NewNop()), path
}

func TestSetPersistsAndReloads(t *testing.T) {
	store, path := newTestStore(t)

	sess := Session{
		Token: testToken(t, time.Now().Add(time.Hour)),
		User:  User{ID: 7, Name: "Asha", Email: "asha@example.com"},
	}
	require.NoError(t, store.Set(sess))

	current := store.Current()
	require.NotNil(t, current)
	assert.Equal(t, 7, current.User.ID)
	assert.False(t, current.SavedAt.IsZero())

	// A fresh store over the same file sees the same session.
	reloaded := NewStore(config.Config{SessionFile: path}, zap.NewNop())
	current = reloaded.Current()
	require.NotNil(t, current)
	assert.Equal(t, "asha@example.com", current.User.Email)
	assert.Equal(t, sess.Token, reloaded.Token())
}

func TestExpiredTokenEqualsNoSession(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Set(Session{
		Token: testToken(t, time.Now().Add(-time.Minute)),
		User:  User{ID: 1},
	}))

	assert.True(t, store.IsTokenExpired())
	assert.Nil(t, store.Current())
	assert.Empty(t, store.Token())
}

func TestTokenExpiry(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "no token", token: "", want: true},
		{name: "garbage", token: "not-a-jwt", want: true},
		{name: "no exp claim", token: mustSign(jwt.RegisteredClaims{}), want: true},
		{name: "expired", token: mustSign(jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Second))}), want: true},
		{name: "valid", token: mustSign(jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenExpired(tt.token))
		})
	}
}

func mustSign(claims jwt.RegisteredClaims) string {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		panic(err)
	}
	return signed
}

func TestClearRemovesFileAndNotifies(t *testing.T) {
	store, path := newTestStore(t)

	notified := 0
	store.Watch(func() { notified++ })

	require.NoError(t, store.Set(Session{
		Token: testToken(t, time.Now().Add(time.Hour)),
	}))
	assert.Equal(t, 1, notified)

	store.Clear()
	assert.Equal(t, 2, notified)
	assert.Nil(t, store.Current())

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	// Clearing an already-empty store stays quiet.
	store.Clear()
	assert.Equal(t, 2, notified)
}

func TestUnreadableSessionFileIsDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	store := NewStore(config.Config{SessionFile: path}, zap.NewNop())
	assert.Nil(t, store.Current())
	assert.True(t, store.IsTokenExpired())
}
