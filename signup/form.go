package signup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

//State tracks where the form is in its submit cycle.
type State int

const (
	Idle State = iota
	Submitting
	Failed
	Succeeded
)

func (s State) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Failed:
		return "failed"
	case Succeeded:
		return "succeeded"
	default:
		return "idle"
	}
}

//Field selects one of the two masked password inputs.
type Field int

const (
	PasswordField Field = iota
	ConfirmPasswordField
)

const (
	titleError   = "Error"
	titleSuccess = "Success"
	labelOK      = "OK"

	msgCreated = "Account created successfully!"
)

//Form is the signup screen controller. The zero value is not usable, see NewForm.
type Form struct {
	storage Storage
	nav     Navigator
	alerts  Alerter
	logger  *slog.Logger

	mu                  sync.Mutex
	draft               Draft
	state               State
	err                 error
	showPassword        bool
	showConfirmPassword bool
}

func NewForm(storage Storage, nav Navigator, alerts Alerter, logger *slog.Logger) *Form {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Form{storage: storage, nav: nav, alerts: alerts, logger: logger}
}

func (f *Form) SetName(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Name = v
}

func (f *Form) SetEmail(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Email = v
}

func (f *Form) SetPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Password = v
}

func (f *Form) SetConfirmPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.ConfirmPassword = v
}

//Fill replaces the whole draft at once.
func (f *Form) Fill(d Draft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

//Err returns the reason of the last failed submit, nil otherwise.
func (f *Form) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *Form) Submitting() bool {
	return f.State() == Submitting
}

func (f *Form) TogglePasswordVisibility(which Field) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch which {
	case PasswordField:
		f.showPassword = !f.showPassword
	case ConfirmPasswordField:
		f.showConfirmPassword = !f.showConfirmPassword
	}
}

func (f *Form) PasswordVisible(which Field) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if which == ConfirmPasswordField {
		return f.showConfirmPassword
	}
	return f.showPassword
}

func (f *Form) PasswordStrengthLabel() string {
	return PasswordStrength(f.Draft().Password)
}

func (f *Form) Back() {
	f.nav.GoBack()
}

func (f *Form) SignIn() {
	f.nav.Navigate(RouteLogin)
}

//Submit validates the draft, checks the email is free and saves the account.
// Every outcome is shown through the Alerter; the returned error is the same
// outcome for callers that need to branch on it.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == Submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}

	draft := f.draft
	if err := draft.Validate(); err != nil {
		f.state, f.err = Failed, err
		f.mu.Unlock()
		f.logger.Debug("signup rejected", "reason", err)
		f.fail(err)
		return err
	}
	f.state, f.err = Submitting, nil
	f.mu.Unlock()

	user := draft.User()
	err := f.create(ctx, user)

	f.mu.Lock()
	if err != nil {
		f.state, f.err = Failed, err
	} else {
		f.state = Succeeded
	}
	f.mu.Unlock()

	if err != nil {
		f.logger.Warn("signup failed", "email", user.Email, "error", err)
		f.fail(err)
		return err
	}

	f.logger.Info("account created", "email", user.Email)
	f.alerts.Alert(titleSuccess, msgCreated, Button{
		Label:   labelOK,
		OnPress: func() { f.nav.Replace(RouteProfile) },
	})
	return nil
}

func (f *Form) create(ctx context.Context, u User) error {
	exists, err := f.storage.UserExists(ctx, u.Email)
	if err != nil {
		return fmt.Errorf("%w: check existing account: %w", ErrStorage, err)
	}
	if exists {
		return ErrDuplicateAccount
	}

	if err := f.storage.SaveUser(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicateAccount) {
			return ErrDuplicateAccount
		}
		return fmt.Errorf("%w: save account: %w", ErrStorage, err)
	}
	return nil
}

func (f *Form) fail(err error) {
	f.alerts.Alert(titleError, alertMessage(err), Button{Label: labelOK})
}

func alertMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "Please fill in all fields"
	case errors.Is(err, ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, ErrPasswordTooShort):
		return "Password must be at least 6 characters"
	case errors.Is(err, ErrDuplicateAccount):
		return "An account with this email already exists"
	default:
		return "Failed to create account. Please try again."
	}
}
