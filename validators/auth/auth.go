package authValidator

import (
	"errors"
	"strings"

	"eduportal/gateway"
	"eduportal/middleware"
	"eduportal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

var validate = validator.New()

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email     string `form:"email"`
			Password  string `form:"password"`
			Role      string `form:"role"`
			SecretKey string `form:"secret_key"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.RedirectWithError(c, "/auth", "Invalid request body!")
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		if reqData.Email == "" || validate.Var(reqData.Email, "email") != nil {
			return middleware.RedirectWithError(c, "/auth", "A valid email is required!")
		}
		if reqData.Password == "" {
			return middleware.RedirectWithError(c, "/auth", "Password is required!")
		}
		if reqData.Role == "" {
			reqData.Role = models.RoleStudent
		}

		creds := &gateway.Credentials{Email: reqData.Email, Password: reqData.Password}
		if reqData.Role == models.RoleAdmin {
			if strings.TrimSpace(reqData.SecretKey) == "" {
				return middleware.RedirectWithError(c, "/auth", "Secret key is required for admin login!")
			}
			creds.SecretKey = reqData.SecretKey
		}

		c.Locals("validatedLogin", creds)
		return c.Next()
	}
}

type registerRequest struct {
	Email       string `form:"email" validate:"required,email"`
	Password    string `form:"password" validate:"required,min=6"`
	FirstName   string `form:"first_name" validate:"required"`
	LastName    string `form:"last_name" validate:"required"`
	Phone       string `form:"phone" validate:"required,min=7"`
	DateOfBirth string `form:"date_of_birth" validate:"required"`
	Address     string `form:"address" validate:"required"`
	Role        string `form:"role" validate:"omitempty,oneof=student admin"`
	SecretKey   string `form:"secret_key"`
}

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(registerRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.RedirectWithError(c, "/register", "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.RedirectWithError(c, "/register", registerErrorMessage(err))
		}

		dob, err := now.Parse(strings.TrimSpace(reqData.DateOfBirth))
		if err != nil {
			return middleware.RedirectWithError(c, "/register", "Date of birth must be a valid date!")
		}

		form := &gateway.RegisterForm{
			Email:       strings.TrimSpace(reqData.Email),
			Password:    reqData.Password,
			FirstName:   strings.TrimSpace(reqData.FirstName),
			LastName:    strings.TrimSpace(reqData.LastName),
			Phone:       strings.TrimSpace(reqData.Phone),
			DateOfBirth: dob.Format("2006-01-02"),
			Address:     strings.TrimSpace(reqData.Address),
		}
		if reqData.Role == models.RoleAdmin {
			if strings.TrimSpace(reqData.SecretKey) == "" {
				return middleware.RedirectWithError(c, "/register", "Secret key is required for admin registration!")
			}
			form.AdminSecret = reqData.SecretKey
		}

		c.Locals("validatedRegister", form)
		return c.Next()
	}
}

func registerErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation failed!"
	}
	switch verrs[0].Field() {
	case "Email":
		return "A valid email is required!"
	case "Password":
		return "Password must be at least 6 characters long!"
	case "FirstName":
		return "First name is required!"
	case "LastName":
		return "Last name is required!"
	case "Phone":
		return "A valid phone number is required!"
	case "DateOfBirth":
		return "Date of birth is required!"
	case "Address":
		return "Address is required!"
	case "Role":
		return "Role must be student or admin!"
	}
	return "Validation failed!"
}
