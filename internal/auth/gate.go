// Package auth implements the mock login gate and the session marker.
// The gate validates a credential pair against a fixed sentinel password;
// the username is only used as the display name. This is a placeholder for
// a real identity provider, not an authentication scheme; the credential
// check is injectable so a backend integration can replace it wholesale.
package auth

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sentinelPassword = "test123"

// InvalidCredentialsMessage is the banner text shown on a failed login.
const InvalidCredentialsMessage = `Invalid password. Please use "test123".`

// ErrInvalidCredentials is returned when the credential check rejects
// the submitted pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is the authenticated user state for the lifetime of the process.
type Session struct {
	Authenticated bool
	Username      string
	Token         string
}

// CredentialCheck decides whether a credential pair is valid. It must return
// ErrInvalidCredentials (possibly wrapped) on rejection.
type CredentialCheck func(username, password string) error

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

// ValidateCredentials performs the local, pre-submission required-field
// checks. A non-empty result means the pair must not be submitted.
func ValidateCredentials(username, password string) FieldErrors {
	errs := FieldErrors{}
	if username == "" {
		errs["username"] = "Username is required"
	}
	if password == "" {
		errs["password"] = "Password is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Gate authenticates credential pairs and manages the persisted marker.
type Gate struct {
	check  CredentialCheck
	marker *MarkerStore
	log    *zap.Logger
}

// NewGate builds a gate with the mock sentinel check. marker may be nil,
// in which case no marker is persisted.
func NewGate(marker *MarkerStore, log *zap.Logger) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gate{
		check:  mockCheck,
		marker: marker,
		log:    log.Named("auth"),
	}
}

// SetCheck replaces the credential check. Intended for tests and for a
// future real backend.
func (g *Gate) SetCheck(check CredentialCheck) {
	g.check = check
}

// Authenticate validates the pair and, on success, returns an authenticated
// session with the username as display name and writes the session marker.
// On failure the returned session is zero and no state changes.
func (g *Gate) Authenticate(username, password string) (Session, error) {
	if errs := ValidateCredentials(username, password); errs != nil {
		return Session{}, fmt.Errorf("%w: missing required fields", ErrInvalidCredentials)
	}
	if err := g.check(username, password); err != nil {
		g.log.Info("login rejected", zap.String("username", username))
		return Session{}, err
	}

	sess := Session{
		Authenticated: true,
		Username:      username,
		Token:         uuid.NewString(),
	}
	if g.marker != nil {
		if err := g.marker.Write(sess.Token); err != nil {
			// The marker is best-effort; the session itself is process-local.
			g.log.Warn("failed to persist session marker", zap.Error(err))
		}
	}
	g.log.Info("login accepted", zap.String("username", username))
	return sess, nil
}

// Logout clears the session and removes any persisted marker.
func (g *Gate) Logout(sess *Session) error {
	*sess = Session{}
	if g.marker == nil {
		return nil
	}
	if err := g.marker.Clear(); err != nil {
		return fmt.Errorf("clear session marker: %w", err)
	}
	g.log.Info("logged out")
	return nil
}

// mockCheck accepts any username with the fixed sentinel password.
// The username is deliberately not checked against a user store.
func mockCheck(_, password string) error {
	if password != sentinelPassword {
		return ErrInvalidCredentials
	}
	return nil
}
