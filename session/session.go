// Package session tracks the currently authenticated principal. The session
// is owned by the composition root and passed to whoever needs it; there is
// no package-level global. It is meant for a single goroutine, matching the
// one-logical-thread model of the storefront process.
package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/smanja344-droid/custom-tee-creator/models"
	"github.com/smanja344-droid/custom-tee-creator/repository"
	"github.com/smanja344-droid/custom-tee-creator/store"
)

const currentUserKey = "ct_currentUser"

var (
	// ErrInvalidCredentials is returned by Login when no account matches
	// the email or the password comparison fails.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned by Signup when the email is already
	// registered.
	ErrEmailTaken = errors.New("an account with this email already exists")
)

// Session holds at most one active principal. The principal is persisted
// under its own key so a restarted process resumes the last session; there
// is no expiry and no token.
type Session struct {
	users   *repository.Users
	kv      store.KeyValue
	current *models.Principal
	subs    []func(*models.Principal)
}

// New restores the last persisted principal, if any.
func New(kv store.KeyValue, users *repository.Users) (*Session, error) {
	s := &Session{users: users, kv: kv}
	raw, ok, err := kv.Get(currentUserKey)
	if err != nil {
		return nil, err
	}
	if ok {
		var p models.Principal
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("failed to decode saved session: %w", err)
		}
		s.current = &p
	}
	return s, nil
}

// Current returns the active principal, if one is logged in.
func (s *Session) Current() (models.Principal, bool) {
	if s.current == nil {
		return models.Principal{}, false
	}
	return *s.current, true
}

// UserID returns the active principal's id, or "" when logged out. The
// empty id addresses the guest cart scope.
func (s *Session) UserID() string {
	if s.current == nil {
		return ""
	}
	return s.current.ID
}

func (s *Session) IsAdmin() bool {
	return s.current != nil && s.current.Role == models.RoleAdmin
}

// Subscribe registers fn to run after every identity change. fn receives the
// new principal, or nil after logout. Cart state re-syncs through this.
func (s *Session) Subscribe(fn func(*models.Principal)) {
	s.subs = append(s.subs, fn)
}

// Login authenticates by plaintext comparison against the stored account.
func (s *Session) Login(email, password string) (models.Principal, error) {
	user, ok, err := s.users.FindByEmail(email)
	if err != nil {
		return models.Principal{}, err
	}
	if !ok || user.Password != password {
		return models.Principal{}, ErrInvalidCredentials
	}
	p := user.Principal()
	if err := s.setCurrent(&p); err != nil {
		return models.Principal{}, err
	}
	return p, nil
}

// Signup registers a new customer account and logs it in. The email check
// and the create are not atomic; concurrent signups can race, which this
// single-writer core accepts.
func (s *Session) Signup(email, password, name string) (models.Principal, error) {
	if _, ok, err := s.users.FindByEmail(email); err != nil {
		return models.Principal{}, err
	} else if ok {
		return models.Principal{}, ErrEmailTaken
	}
	user, err := s.users.Create(email, password, name)
	if err != nil {
		return models.Principal{}, err
	}
	p := user.Principal()
	if err := s.setCurrent(&p); err != nil {
		return models.Principal{}, err
	}
	return p, nil
}

// Logout clears the principal unconditionally.
func (s *Session) Logout() error {
	return s.setCurrent(nil)
}

func (s *Session) setCurrent(p *models.Principal) error {
	if p == nil {
		if err := s.kv.Delete(currentUserKey); err != nil {
			return err
		}
	} else {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to encode session: %w", err)
		}
		if err := s.kv.Set(currentUserKey, string(data)); err != nil {
			return err
		}
	}
	s.current = p
	for _, fn := range s.subs {
		fn(p)
	}
	return nil
}
