package form

import (
	"errors"
	"time"

	"github.com/retailops/storectl/pkg/api"
)

// CustomerDraft is the edit dialog state for one customer.
type CustomerDraft struct {
	Code      string
	Name      string
	BirthYear int
	Address   string
	Phone     string
}

// CustomerDraftFrom snapshots a customer for editing.
func CustomerDraftFrom(c api.Customer) CustomerDraft {
	return CustomerDraft{
		Code:      c.Code,
		Name:      c.Name,
		BirthYear: c.BirthYear,
		Address:   c.Address,
		Phone:     c.Phone,
	}
}

// Validate checks required fields before any request is issued.
func (d *CustomerDraft) Validate() error {
	if d.Name == "" {
		return errors.New("customer name is required")
	}
	if d.Phone == "" {
		return errors.New("phone number is required")
	}
	if d.BirthYear != 0 {
		if d.BirthYear < 1900 || d.BirthYear > time.Now().Year() {
			return errors.New("birth year is out of range")
		}
	}
	return nil
}

// Request shapes the draft into the backend payload.
func (d *CustomerDraft) Request() api.CustomerRequest {
	return api.CustomerRequest{
		Name:      d.Name,
		BirthYear: d.BirthYear,
		Address:   d.Address,
		Phone:     d.Phone,
	}
}
