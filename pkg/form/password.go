package form

import "errors"

// PasswordDraft is the change-password dialog state.
type PasswordDraft struct {
	AccountCode string
	Old         string
	New         string
	Confirm     string
}

// Validate checks the draft before the request is issued.
func (d *PasswordDraft) Validate() error {
	if d.AccountCode == "" {
		return errors.New("no account is signed in")
	}
	if d.Old == "" {
		return errors.New("current password is required")
	}
	if d.New == "" {
		return errors.New("new password is required")
	}
	if d.New != d.Confirm {
		return errors.New("password confirmation does not match")
	}
	return nil
}
