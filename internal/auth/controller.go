package auth

import (
	"net/http"
	"time"

	"boxful/internal/infrastructure/api"
	"boxful/internal/web"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	loginFallback    = "Error al iniciar sesión"
	registerFallback = "Error al registrarse"
)

type Controller struct {
	client   Client
	sessions *web.SessionStore
	renderer *web.Renderer
	logger   *zap.Logger
}

func NewController(client Client, sessions *web.SessionStore, renderer *web.Renderer, logger *zap.Logger) *Controller {
	return &Controller{
		client:   client,
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

func (c *Controller) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if c.sessions.Current(r).LoggedIn() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	c.renderer.Render(w, "login", LoginData{
		Title: "Iniciar sesión",
		Flash: c.sessions.PopFlash(w, r),
	})
}

func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	if ve := validateLogin(email, password); ve != nil {
		c.renderer.Render(w, "login", LoginData{
			Title:       "Iniciar sesión",
			Email:       email,
			FieldErrors: ve.FieldMessages(),
		})
		return
	}

	resp, err := c.client.Login(r.Context(), api.LoginRequest{Email: email, Password: password})
	if err != nil {
		logger.Warn("login failed", zap.String("email", email), zap.Error(err))
		c.renderer.Render(w, "login", LoginData{
			Title: "Iniciar sesión",
			Email: email,
			Error: web.UpstreamMessage(err, loginFallback),
		})
		return
	}

	if err := c.sessions.SignIn(w, r, resp.AccessToken, resp.User.FirstName); err != nil {
		logger.Error("failed to persist session", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	logger.Info("user logged in", zap.String("email", email))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (c *Controller) ShowRegister(w http.ResponseWriter, r *http.Request) {
	c.renderer.Render(w, "register", RegisterData{
		Title: "Crear cuenta",
		Form:  RegisterForm{PhonePrefix: "+503"},
	})
}

// HandleRegister es la primera fase: valida el formulario y, si está
// completo, muestra la confirmación del número de teléfono. Aquí todavía
// no se llama al backend.
func (c *Controller) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	form := registerFormFromRequest(r)

	if ve := validateRegister(form); ve != nil {
		c.renderer.Render(w, "register", RegisterData{
			Title:       "Crear cuenta",
			FieldErrors: ve.FieldMessages(),
			Form:        form,
		})
		return
	}

	c.renderer.Render(w, "register_confirm", ConfirmData{
		Title:     "Confirmar número",
		FullPhone: form.FullPhone(),
		Form:      form,
	})
}

// HandleRegisterConfirm es la segunda fase. Cancelar devuelve al
// formulario con los valores intactos; aceptar dispara la creación de la
// cuenta.
func (c *Controller) HandleRegisterConfirm(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	form := registerFormFromRequest(r)

	if r.PostFormValue("action") != "confirm" {
		c.renderer.Render(w, "register", RegisterData{
			Title: "Crear cuenta",
			Form:  form,
		})
		return
	}

	// la confirmación viaja con campos ocultos, se revalida por si acaso
	if ve := validateRegister(form); ve != nil {
		c.renderer.Render(w, "register", RegisterData{
			Title:       "Crear cuenta",
			FieldErrors: ve.FieldMessages(),
			Form:        form,
		})
		return
	}

	req := api.RegisterRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.FullPhone(),
		Password:  form.Password,
		Gender:    form.Gender,
	}
	if form.BirthDate != "" {
		if birth, err := time.Parse("2006-01-02", form.BirthDate); err == nil {
			req.BirthDate = birth.UTC().Format(time.RFC3339)
		}
	}

	if err := c.client.Register(r.Context(), req); err != nil {
		logger.Warn("register failed", zap.String("email", form.Email), zap.Error(err))
		c.renderer.Render(w, "register", RegisterData{
			Title: "Crear cuenta",
			Error: web.UpstreamMessage(err, registerFallback),
			Form:  form,
		})
		return
	}

	logger.Info("user registered", zap.String("email", form.Email))
	c.sessions.Flash(w, r, "Registro exitoso. Por favor inicia sesión.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (c *Controller) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := c.sessions.SignOut(w, r); err != nil {
		c.logger.Error("failed to clear session", zap.Error(err))
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func registerFormFromRequest(r *http.Request) RegisterForm {
	return RegisterForm{
		FirstName:       r.PostFormValue("firstName"),
		LastName:        r.PostFormValue("lastName"),
		Gender:          r.PostFormValue("gender"),
		BirthDate:       r.PostFormValue("birthDate"),
		Email:           r.PostFormValue("email"),
		PhonePrefix:     r.PostFormValue("phonePrefix"),
		Phone:           r.PostFormValue("phone"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}
}
