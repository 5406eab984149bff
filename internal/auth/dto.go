package auth

type LoginData struct {
	Title       string
	Flash       string
	Error       string
	Email       string
	FieldErrors map[string]string
}

// RegisterForm transporta los valores crudos del formulario de registro.
// En la fase de confirmación viajan como campos ocultos, así cancelar no
// descarta nada.
type RegisterForm struct {
	FirstName       string
	LastName        string
	Gender          string
	BirthDate       string
	Email           string
	PhonePrefix     string
	Phone           string
	Password        string
	ConfirmPassword string
}

// FullPhone compone el número tal y como se le muestra al usuario y como
// viaja al backend.
func (f RegisterForm) FullPhone() string {
	prefix := f.PhonePrefix
	if prefix == "" {
		prefix = "+503"
	}
	return prefix + " " + f.Phone
}

type RegisterData struct {
	Title       string
	Error       string
	FieldErrors map[string]string
	Form        RegisterForm
}

type ConfirmData struct {
	Title     string
	FullPhone string
	Form      RegisterForm
}
