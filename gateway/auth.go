package gateway

import "eduportal/models"

// Credentials is a login request. SecretKey is set only for admin logins.
type Credentials struct {
	Email     string
	Password  string
	SecretKey string
}

// RegisterForm is a registration request. AdminSecret is set only when
// registering an admin.
type RegisterForm struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Phone       string
	DateOfBirth string
	Address     string
	AdminSecret string
}

// AuthResult is the token pair and identity returned by the auth endpoints.
type AuthResult struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    models.User `json:"user"`
}

func (c *Client) Login(creds Credentials) (*AuthResult, error) {
	payload := map[string]string{
		"email":    creds.Email,
		"password": creds.Password,
	}
	if creds.SecretKey != "" {
		payload["secretKey"] = creds.SecretKey
	}

	var out AuthResult
	resp, err := c.http.R().SetBody(payload).SetResult(&out).Post("/auth/login/")
	if err := wrapErr(resp, err, "Login failed"); err != nil {
		return nil, err
	}
	if out.Access == "" || out.Refresh == "" {
		return nil, &APIError{Detail: "Login succeeded, but tokens are missing."}
	}
	return &out, nil
}

func (c *Client) Register(form RegisterForm) (*AuthResult, error) {
	payload := map[string]string{
		"email":         form.Email,
		"password":      form.Password,
		"first_name":    form.FirstName,
		"last_name":     form.LastName,
		"phone":         form.Phone,
		"date_of_birth": form.DateOfBirth,
		"address":       form.Address,
	}
	if form.AdminSecret != "" {
		payload["admin_secret"] = form.AdminSecret
	}

	var out AuthResult
	resp, err := c.http.R().SetBody(payload).SetResult(&out).Post("/auth/register/")
	if err := wrapErr(resp, err, "Registration failed. Please try again."); err != nil {
		return nil, err
	}
	if out.Access == "" || out.Refresh == "" {
		return nil, &APIError{Detail: "Registration succeeded, but tokens are missing."}
	}
	return &out, nil
}
