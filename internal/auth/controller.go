package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"erpctl/internal/erp"
	"erpctl/internal/session"

	"go.uber.org/zap"
)

// sweepInterval bounds how stale an expiry detection can be.
const sweepInterval = 60 * time.Second

type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Controller owns the session lifecycle: login, logout, and the periodic
// expiry sweep. It is the single writer of the session store; everything
// else observes through Subscribe or the store's own watchers.
type Controller struct {
	client *erp.Client
	store  *session.Store
	logger *zap.Logger

	mu    sync.Mutex
	state State
	subs  []func(State)

	stopSweep chan struct{}
	sweepDone chan struct{}
}

func NewController(client *erp.Client, store *session.Store, logger *zap.Logger) *Controller {
	c := &Controller{
		client: client,
		store:  store,
		logger: logger.Named("auth"),
		state:  Anonymous,
	}
	if store.Current() != nil {
		c.state = Authenticated
	}

	// A cleared store (401 teardown inside the HTTP client, or an expiry
	// sweep) forces the controller back to anonymous no matter which call
	// path triggered it.
	store.Watch(func() {
		if store.Current() == nil {
			c.setState(Anonymous)
		}
	})

	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to run on every state transition.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	c.subs = append(c.subs, fn)
	c.mu.Unlock()
}

func (c *Controller) setState(next State) {
	c.mu.Lock()
	if c.state == next {
		c.mu.Unlock()
		return
	}
	c.state = next
	subs := make([]func(State), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// Login authenticates and primes the session store. On any failure the
// controller is back at anonymous and the server's message is surfaced.
func (c *Controller) Login(ctx context.Context, email, password string) (*session.User, error) {
	c.setState(Authenticating)

	result, err := c.client.Login(ctx, email, password)
	if err != nil {
		c.setState(Anonymous)
		return nil, err
	}
	if !result.Success {
		c.setState(Anonymous)
		msg := result.Message
		if msg == "" {
			msg = "login failed"
		}
		return nil, fmt.Errorf("login rejected: %s", msg)
	}

	user := session.User{
		ID:        result.Admin.ID,
		Name:      result.Admin.Name,
		Email:     result.Admin.Email,
		PhoneNo:   result.Admin.PhoneNo,
		GSTNo:     result.Admin.GSTNo,
		CreatedAt: result.Admin.CreatedAt,
		UpdatedAt: result.Admin.UpdatedAt,
	}
	if err := c.store.Set(session.Session{Token: result.Token, User: user}); err != nil {
		c.setState(Anonymous)
		return nil, fmt.Errorf("storing session: %w", err)
	}

	c.setState(Authenticated)
	c.logger.Info("logged in", zap.String("email", user.Email))
	return &user, nil
}

// Logout tells the server best-effort; the local session goes away either
// way.
func (c *Controller) Logout(ctx context.Context) {
	if _, err := c.client.Logout(ctx); err != nil {
		c.logger.Warn("server logout failed", zap.Error(err))
	}
	c.store.Clear()
	c.setState(Anonymous)
}

// StartSweep launches the expiry poller. Expiry is detected with up to one
// interval of staleness; requests issued in between already fail their
// token read because the store treats an expired token as absent.
func (c *Controller) StartSweep() {
	c.mu.Lock()
	if c.stopSweep != nil {
		c.mu.Unlock()
		return
	}
	c.stopSweep = make(chan struct{})
	c.sweepDone = make(chan struct{})
	stop, done := c.stopSweep, c.sweepDone
	c.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// StopSweep cancels the poller and waits for it to exit.
func (c *Controller) StopSweep() {
	c.mu.Lock()
	stop, done := c.stopSweep, c.sweepDone
	c.stopSweep, c.sweepDone = nil, nil
	c.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (c *Controller) sweep() {
	if c.State() != Authenticated {
		return
	}
	if c.store.IsTokenExpired() {
		c.logger.Info("session expired, logging out")
		c.store.Clear()
	}
}
