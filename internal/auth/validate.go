package auth

import (
	"regexp"

	apperrors "boxful/internal/errors"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{8}$`)
)

func validateLogin(email, password string) *apperrors.ValidationError {
	var details []apperrors.ValidationDetail

	if email == "" {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "Por favor ingresa tu correo"})
	} else if !emailPattern.MatchString(email) {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "Correo inválido"})
	}

	if password == "" {
		details = append(details, apperrors.ValidationDetail{Field: "password", Message: "Por favor ingresa tu contraseña"})
	}

	if len(details) == 0 {
		return nil
	}
	return apperrors.NewValidationError("datos de acceso incompletos", details...)
}

func validateRegister(form RegisterForm) *apperrors.ValidationError {
	var details []apperrors.ValidationDetail

	required := []struct {
		field string
		value string
	}{
		{"firstName", form.FirstName},
		{"lastName", form.LastName},
		{"email", form.Email},
		{"phone", form.Phone},
		{"password", form.Password},
		{"confirmPassword", form.ConfirmPassword},
	}
	for _, f := range required {
		if f.value == "" {
			details = append(details, apperrors.ValidationDetail{Field: f.field, Message: "Requerido"})
		}
	}

	if form.Email != "" && !emailPattern.MatchString(form.Email) {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "Inválido"})
	}
	if form.Phone != "" && !phonePattern.MatchString(form.Phone) {
		details = append(details, apperrors.ValidationDetail{Field: "phone", Message: "Debe tener 8 dígitos"})
	}
	if form.Password != "" && len(form.Password) < 6 {
		details = append(details, apperrors.ValidationDetail{Field: "password", Message: "Mínimo 6 caracteres"})
	}
	// la igualdad se comprueba al validar, no en cada pulsación
	if form.Password != "" && form.ConfirmPassword != "" && form.Password != form.ConfirmPassword {
		details = append(details, apperrors.ValidationDetail{Field: "confirmPassword", Message: "No coinciden"})
	}

	if len(details) == 0 {
		return nil
	}
	return apperrors.NewValidationError("formulario de registro incompleto", details...)
}
