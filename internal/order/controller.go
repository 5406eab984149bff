package order

import (
	"net/http"
	"time"

	"boxful/internal/domain"
	"boxful/internal/locations"
	"boxful/internal/web"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	pageTitle      = "Crear un envío"
	submitFallback = "Error al crear la orden. Verifica los datos."
	noPackagesMsg  = "Debes agregar al menos un paquete"
)

type Controller struct {
	client   Client
	service  *Service
	sessions *web.SessionStore
	renderer *web.Renderer
	shell    *web.ShellLoader
	logger   *zap.Logger
}

func NewController(client Client, service *Service, sessions *web.SessionStore, renderer *web.Renderer, shell *web.ShellLoader, logger *zap.Logger) *Controller {
	return &Controller{
		client:   client,
		service:  service,
		sessions: sessions,
		renderer: renderer,
		shell:    shell,
		logger:   logger,
	}
}

// ShowStep1 pinta el paso 1, precargado con el borrador si existe.
func (c *Controller) ShowStep1(w http.ResponseWriter, r *http.Request) {
	shell, ok := c.loadShell(w, r)
	if !ok {
		return
	}

	form := Step1Form{}
	if draft, found := c.sessions.Draft(r); found {
		form = formFromDraft(draft)
	}

	c.renderStep1(w, shell, Step1Data{Form: form})
}

// HandleStep1 atiende el envío del formulario del paso 1. Un cambio de
// departamento (o del interruptor PCE) solo refresca la página con la
// cascada aplicada; "siguiente" valida y avanza.
func (c *Controller) HandleStep1(w http.ResponseWriter, r *http.Request) {
	shell, ok := c.loadShell(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	form := step1FormFromRequest(r)

	if r.PostFormValue("action") == "department" {
		// el municipio elegido se descarta si ya no es válido para el
		// nuevo departamento
		if !locations.IsValid(form.RecipientDepartment, form.RecipientMunicipality) {
			form.RecipientMunicipality = ""
		}
		c.renderStep1(w, shell, Step1Data{Form: form})
		return
	}

	draft, ve := c.service.ValidateStep1(form)
	if ve != nil {
		c.renderStep1(w, shell, Step1Data{Form: form, FieldErrors: ve.FieldMessages()})
		return
	}

	// los paquetes ya agregados sobreviven a una vuelta al paso 1
	if previous, found := c.sessions.Draft(r); found {
		draft.Packages = previous.Packages
	}
	if err := c.sessions.SaveDraft(w, r, draft); err != nil {
		c.logger.Error("failed to save draft", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/create-order/packages", http.StatusSeeOther)
}

// ShowStep2 pinta la lista de paquetes. Sin borrador del paso 1 no hay
// paso 2.
func (c *Controller) ShowStep2(w http.ResponseWriter, r *http.Request) {
	shell, ok := c.loadShell(w, r)
	if !ok {
		return
	}
	draft, found := c.sessions.Draft(r)
	if !found {
		http.Redirect(w, r, "/create-order", http.StatusSeeOther)
		return
	}
	c.renderStep2(w, shell, Step2Data{Packages: draft.Packages})
}

func (c *Controller) HandleAddPackage(w http.ResponseWriter, r *http.Request) {
	shell, ok := c.loadShell(w, r)
	if !ok {
		return
	}
	draft, found := c.sessions.Draft(r)
	if !found {
		http.Redirect(w, r, "/create-order", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	form := PackageForm{
		Length:  r.PostFormValue("length"),
		Height:  r.PostFormValue("height"),
		Width:   r.PostFormValue("width"),
		Weight:  r.PostFormValue("weight"),
		Content: r.PostFormValue("content"),
	}

	if ve := c.service.AddPackage(draft, form); ve != nil {
		// la lista queda igual y el sub-formulario conserva lo tecleado
		c.renderStep2(w, shell, Step2Data{
			Warning:  ve.Message,
			Form:     form,
			Packages: draft.Packages,
		})
		return
	}

	if err := c.sessions.SaveDraft(w, r, draft); err != nil {
		c.logger.Error("failed to save draft", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/create-order/packages", http.StatusSeeOther)
}

func (c *Controller) HandleRemovePackage(w http.ResponseWriter, r *http.Request) {
	draft, found := c.sessions.Draft(r)
	if !found {
		http.Redirect(w, r, "/create-order", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	c.service.RemovePackage(draft, r.PostFormValue("id"))

	if err := c.sessions.SaveDraft(w, r, draft); err != nil {
		c.logger.Error("failed to save draft", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/create-order/packages", http.StatusSeeOther)
}

// HandleSubmit arma y envía la orden. Con la lista vacía se rechaza aquí
// mismo, sin llamada de red.
func (c *Controller) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	shell, ok := c.loadShell(w, r)
	if !ok {
		return
	}
	draft, found := c.sessions.Draft(r)
	if !found {
		http.Redirect(w, r, "/create-order", http.StatusSeeOther)
		return
	}

	req, err := c.service.BuildRequest(draft, time.Now())
	if err != nil {
		c.renderStep2(w, shell, Step2Data{
			Error:    noPackagesMsg,
			Packages: draft.Packages,
		})
		return
	}

	token := c.sessions.Current(r).Token
	if err := c.client.CreateOrder(r.Context(), token, req); err != nil {
		if web.HandleUnauthorized(c.sessions, w, r, err) {
			return
		}
		logger.Warn("create order failed", zap.Error(err))
		c.renderStep2(w, shell, Step2Data{
			Error:    web.UpstreamMessage(err, submitFallback),
			Packages: draft.Packages,
		})
		return
	}

	logger.Info("order created", zap.Int("packages", len(req.Packages)))
	if err := c.sessions.ClearDraft(w, r); err != nil {
		c.logger.Error("failed to clear draft", zap.Error(err))
	}
	c.renderer.Render(w, "order_success", SuccessData{Shell: shell, Title: pageTitle})
}

// HandleReset es el "crear otra orden" de la pantalla de éxito: borra
// cualquier resto de borrador y arranca el asistente de cero.
func (c *Controller) HandleReset(w http.ResponseWriter, r *http.Request) {
	if err := c.sessions.ClearDraft(w, r); err != nil {
		c.logger.Error("failed to clear draft", zap.Error(err))
	}
	http.Redirect(w, r, "/create-order", http.StatusSeeOther)
}

func (c *Controller) loadShell(w http.ResponseWriter, r *http.Request) (web.Shell, bool) {
	shell, err := c.shell.Load(r.Context(), c.sessions.Current(r), "create")
	if err != nil {
		web.HandleUnauthorized(c.sessions, w, r, err)
		return shell, false
	}
	return shell, true
}

func (c *Controller) renderStep1(w http.ResponseWriter, shell web.Shell, data Step1Data) {
	data.Shell = shell
	data.Title = pageTitle
	data.Departments = locations.Departments()
	data.Municipalities = locations.Municipalities(data.Form.RecipientDepartment)
	c.renderer.Render(w, "order_step1", data)
}

func (c *Controller) renderStep2(w http.ResponseWriter, shell web.Shell, data Step2Data) {
	data.Shell = shell
	data.Title = pageTitle
	c.renderer.Render(w, "order_step2", data)
}

func step1FormFromRequest(r *http.Request) Step1Form {
	return Step1Form{
		PickupAddress:         r.PostFormValue("pickupAddress"),
		ScheduledDate:         r.PostFormValue("scheduledDate"),
		RecipientName:         r.PostFormValue("recipientName"),
		RecipientLastName:     r.PostFormValue("recipientLastName"),
		RecipientEmail:        r.PostFormValue("recipientEmail"),
		RecipientPhone:        r.PostFormValue("recipientPhone"),
		RecipientAddress:      r.PostFormValue("recipientAddress"),
		RecipientDepartment:   r.PostFormValue("recipientDepartment"),
		RecipientMunicipality: r.PostFormValue("recipientMunicipality"),
		ReferencePoint:        r.PostFormValue("referencePoint"),
		Instructions:          r.PostFormValue("instructions"),
		IsCOD:                 r.PostFormValue("isCOD") == "true",
		ExpectedCodAmount:     r.PostFormValue("expectedCodAmount"),
	}
}

func formFromDraft(draft *domain.OrderDraft) Step1Form {
	form := Step1Form{
		PickupAddress:         draft.PickupAddress,
		RecipientName:         draft.RecipientName,
		RecipientLastName:     draft.RecipientLastName,
		RecipientEmail:        draft.RecipientEmail,
		RecipientPhone:        draft.RecipientPhone,
		RecipientAddress:      draft.RecipientAddress,
		RecipientDepartment:   draft.RecipientDepartment,
		RecipientMunicipality: draft.RecipientMunicipality,
		ReferencePoint:        draft.ReferencePoint,
		Instructions:          draft.Instructions,
		IsCOD:                 draft.IsCOD,
		ExpectedCodAmount:     draft.ExpectedCodAmount,
	}
	if !draft.ScheduledDate.IsZero() {
		form.ScheduledDate = draft.ScheduledDate.Format("2006-01-02")
	}
	return form
}
