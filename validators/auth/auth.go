package authValidator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"rately/middleware"

	"github.com/gofiber/fiber/v2"
)

const specialChars = `!@#$%^&*()_+-=[]{};':",./<>?`

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// Password rule: 8-16 characters with at least one uppercase letter and one
// special character. Go's regexp has no lookahead, so the checks are spelled
// out.
func isValidPassword(password string) bool {
	if len(password) < 8 || len(password) > 16 {
		return false
	}
	hasUpper := false
	hasSpecial := false
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case strings.ContainsRune(specialChars, ch):
			hasSpecial = true
		}
	}
	return hasUpper && hasSpecial
}

func validateName(name string, errors map[string]string) {
	if n := len(strings.TrimSpace(name)); n < 20 || n > 60 {
		errors["name"] = "Name must be between 20 and 60 characters long!"
	}
}

func validateAddress(address string, errors map[string]string) {
	if n := len(strings.TrimSpace(address)); n < 10 || n > 400 {
		errors["address"] = "Address must be between 10 and 400 characters long!"
	}
}

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Address  string `json:"address"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		validateName(reqData.Name, errors)
		validateAddress(reqData.Address, errors)

		// Validate Email
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		// Validate Password
		if !isValidPassword(reqData.Password) {
			errors["password"] = fmt.Sprintf("Password must be 8-16 characters with at least one uppercase letter and one special character (%s)!", specialChars)
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// UpdateProfile validator middleware. Fields are optional; provided values
// still have to satisfy the signup rules.
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name    string `json:"name"`
			Address string `json:"address"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != "" {
			validateName(reqData.Name, errors)
		}
		if reqData.Address != "" {
			validateAddress(reqData.Address, errors)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// ChangePassword validator middleware
func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			OldPassword string `json:"oldPassword"`
			NewPassword string `json:"newPassword"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.OldPassword == "" {
			errors["oldPassword"] = "Current password is required!"
		}
		if !isValidPassword(reqData.NewPassword) {
			errors["newPassword"] = "Password must be 8-16 characters with at least one uppercase letter and one special character!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
