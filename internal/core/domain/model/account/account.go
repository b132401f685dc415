// Package account provides the authenticated identity record. Token issuance
// and authentication itself live in an external subsystem; the core only
// reads accounts, chiefly to resolve the driver-profile link by email.
package account

import (
	"fmt"

	"parcelms/internal/pkg/errs"
)

// Role enumerates the account roles.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
	RoleDriver Role = "driver"
)

// Validate checks that the role is a known enum value.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleClient, RoleDriver:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// Account is a login identity: an admin, a client, or a driver.
type Account struct {
	id          int64
	fullName    string
	email       string
	phoneNumber string
	role        Role
	isActive    bool

	isConstructed bool
}

// RestoreAccount reconstructs an account from persistence.
func RestoreAccount(id int64, fullName, email, phoneNumber string, role Role, isActive bool) (*Account, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("account id")
	}
	if fullName == "" {
		return nil, errs.NewValueIsRequiredError("full name")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &Account{
		id:            id,
		fullName:      fullName,
		email:         email,
		phoneNumber:   phoneNumber,
		role:          role,
		isActive:      isActive,
		isConstructed: true,
	}, nil
}

// Validate ensures the account was created through RestoreAccount.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return errs.NewValueIsRequiredError("account must be created via RestoreAccount")
	}
	return nil
}

// ID returns the account identifier.
func (a *Account) ID() int64 { return a.id }

// FullName returns the account holder's name.
func (a *Account) FullName() string { return a.fullName }

// Email returns the login email.
func (a *Account) Email() string { return a.email }

// PhoneNumber returns the contact phone number.
func (a *Account) PhoneNumber() string { return a.phoneNumber }

// Role returns the account role.
func (a *Account) Role() Role { return a.role }

// IsActive reports whether the account may log in.
func (a *Account) IsActive() bool { return a.isActive }
