package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"erpctl/internal/config"
	"erpctl/internal/erp"
	"erpctl/internal/session"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func signToken(t *testing.T, exp time.Time) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

// newTestEnv wires a store and client against a test server. Tests seed the
// store before constructing the controller so restored-session behaviour is
// exercised the way it happens at startup.
func newTestEnv(t *testing.T, handler http.Handler) (*erp.Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Config{
		BaseURL:     srv.URL,
		Timeout:     2 * time.Second,
		SessionFile: filepath.Join(t.TempDir(), "session.json"),
	}
	store := session.NewStore(cfg, zap.NewNop())
	return erp.NewClient(cfg, store, zap.NewNop()), store
}

func TestLoginSuccess(t *testing.T) {
	token := signToken(t, time.Now().Add(time.Hour))

	client, store := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"success": true,
			"admin": {"id": 5, "name": "Asha", "email": "asha@example.com", "phone_no": "9876543210"},
			"token": %q
		}`, token)
	}))
	ctrl := NewController(client, store, zap.NewNop())

	var transitions []State
	ctrl.Subscribe(func(s State) { transitions = append(transitions, s) })

	require.Equal(t, Anonymous, ctrl.State())

	user, err := ctrl.Login(context.Background(), "asha@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, Authenticated, ctrl.State())
	assert.Equal(t, []State{Authenticating, Authenticated}, transitions)

	sess := store.Current()
	require.NotNil(t, sess)
	assert.Equal(t, token, sess.Token)
	assert.Equal(t, 5, sess.User.ID)
}

func TestLoginRejected(t *testing.T) {
	client, store := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success": false, "message": "Invalid email or password"}`)
	}))
	ctrl := NewController(client, store, zap.NewNop())

	_, err := ctrl.Login(context.Background(), "asha@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email or password")
	assert.Equal(t, Anonymous, ctrl.State())
	assert.Nil(t, store.Current())
}

func TestLogoutClearsLocallyDespiteServerError(t *testing.T) {
	client, store := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "message": "boom"}`)
	}))
	require.NoError(t, store.Set(session.Session{Token: signToken(t, time.Now().Add(time.Hour))}))

	ctrl := NewController(client, store, zap.NewNop())
	require.Equal(t, Authenticated, ctrl.State())

	ctrl.Logout(context.Background())
	assert.Equal(t, Anonymous, ctrl.State())
	assert.Nil(t, store.Current())
}

func TestControllerStartsAuthenticatedFromStoredSession(t *testing.T) {
	client, store := newTestEnv(t, http.NotFoundHandler())
	require.NoError(t, store.Set(session.Session{Token: signToken(t, time.Now().Add(time.Hour))}))

	ctrl := NewController(client, store, zap.NewNop())
	assert.Equal(t, Authenticated, ctrl.State())
}

func TestSweepLogsOutExpiredSession(t *testing.T) {
	client, store := newTestEnv(t, http.NotFoundHandler())

	// Token that outlives controller construction but expires before the
	// sweep runs. Exp claims carry second precision, so give it a real
	// second and wait it out.
	require.NoError(t, store.Set(session.Session{Token: signToken(t, time.Now().Add(time.Second))}))
	ctrl := NewController(client, store, zap.NewNop())
	require.Equal(t, Authenticated, ctrl.State())

	require.Eventually(t, store.IsTokenExpired, 3*time.Second, 50*time.Millisecond)

	ctrl.sweep()
	assert.Equal(t, Anonymous, ctrl.State())
	assert.Nil(t, store.Current())
}

func TestExternalStoreClearForcesAnonymous(t *testing.T) {
	client, store := newTestEnv(t, http.NotFoundHandler())
	require.NoError(t, store.Set(session.Session{Token: signToken(t, time.Now().Add(time.Hour))}))

	ctrl := NewController(client, store, zap.NewNop())
	require.Equal(t, Authenticated, ctrl.State())

	// The HTTP client clears the store on a 401; the controller follows.
	store.Clear()
	assert.Equal(t, Anonymous, ctrl.State())
}

func TestSweepStartStopIdempotent(t *testing.T) {
	client, store := newTestEnv(t, http.NotFoundHandler())
	ctrl := NewController(client, store, zap.NewNop())

	ctrl.StartSweep()
	ctrl.StartSweep()
	ctrl.StopSweep()
	ctrl.StopSweep()
}
