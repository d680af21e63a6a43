package api

import "context"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"matkhau"`
}

type changePasswordRequest struct {
	AccountCode string `json:"maTK"`
	OldPassword string `json:"mkCu"`
	NewPassword string `json:"mkMoi"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(loginRequest{Username: username, Password: password}).
		Post("/api/auth/login")
	if err := check(resp, err); err != nil {
		return "", err
	}
	return stringBody(resp), nil
}

// Logout invalidates the server-side session. The local token is the
// caller's to discard either way.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post("/api/auth/logout")
	return check(resp, err)
}

// AccountCode resolves the account code behind the current token.
func (c *Client) AccountCode(ctx context.Context) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/auth/me/matk")
	if err := check(resp, err); err != nil {
		return "", err
	}
	return stringBody(resp), nil
}

// EmployeeCode resolves the employee code behind the current token.
func (c *Client) EmployeeCode(ctx context.Context) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/auth/me/manv")
	if err := check(resp, err); err != nil {
		return "", err
	}
	return stringBody(resp), nil
}

// ChangePassword rotates the password of the given account.
func (c *Client) ChangePassword(ctx context.Context, accountCode, oldPassword, newPassword string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(changePasswordRequest{
			AccountCode: accountCode,
			OldPassword: oldPassword,
			NewPassword: newPassword,
		}).
		Post("/api/auth/change-password")
	return check(resp, err)
}
