package order

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"boxful/internal/domain"
	apperrors "boxful/internal/errors"
	"boxful/internal/infrastructure/api"
	"boxful/internal/locations"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CountryPrefix es el prefijo fijo con el que viaja el teléfono del
// destinatario al backend.
const CountryPrefix = "+503"

// ErrNoPackages bloquea el envío final sin tocar la red.
var ErrNoPackages = errors.New("order has no packages")

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern    = regexp.MustCompile(`^\d{8}$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// Service concentra la lógica del asistente: validación del paso 1,
// manejo de la lista de paquetes y armado del cuerpo de POST /orders.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// ValidateStep1 valida el conjunto fijo de campos requeridos y, si todo
// está bien, devuelve el borrador con esos valores fusionados. El monto
// PCE solo es requerido con el interruptor activado.
func (s *Service) ValidateStep1(form Step1Form) (*domain.OrderDraft, *apperrors.ValidationError) {
	var details []apperrors.ValidationDetail

	required := []struct {
		field string
		value string
	}{
		{"pickupAddress", form.PickupAddress},
		{"scheduledDate", form.ScheduledDate},
		{"recipientName", form.RecipientName},
		{"recipientLastName", form.RecipientLastName},
		{"recipientEmail", form.RecipientEmail},
		{"recipientPhone", form.RecipientPhone},
		{"recipientAddress", form.RecipientAddress},
		{"recipientDepartment", form.RecipientDepartment},
		{"recipientMunicipality", form.RecipientMunicipality},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			details = append(details, apperrors.ValidationDetail{Field: f.field, Message: "Requerido"})
		}
	}

	if form.RecipientEmail != "" && !emailPattern.MatchString(form.RecipientEmail) {
		details = append(details, apperrors.ValidationDetail{Field: "recipientEmail", Message: "Inválido"})
	}
	if form.RecipientPhone != "" && !phonePattern.MatchString(form.RecipientPhone) {
		details = append(details, apperrors.ValidationDetail{Field: "recipientPhone", Message: "Debe tener 8 dígitos"})
	}

	var scheduled time.Time
	if form.ScheduledDate != "" {
		parsed, err := time.Parse("2006-01-02", form.ScheduledDate)
		if err != nil {
			details = append(details, apperrors.ValidationDetail{Field: "scheduledDate", Message: "Fecha inválida"})
		} else {
			scheduled = parsed
		}
	}

	if form.RecipientDepartment != "" {
		if locations.Municipalities(form.RecipientDepartment) == nil {
			details = append(details, apperrors.ValidationDetail{Field: "recipientDepartment", Message: "Departamento desconocido"})
		} else if form.RecipientMunicipality != "" && !locations.IsValid(form.RecipientDepartment, form.RecipientMunicipality) {
			details = append(details, apperrors.ValidationDetail{Field: "recipientMunicipality", Message: "No pertenece al departamento"})
		}
	}

	if form.IsCOD && strings.TrimSpace(form.ExpectedCodAmount) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "expectedCodAmount", Message: "Requerido"})
	}

	if len(details) > 0 {
		return nil, apperrors.NewValidationError("formulario incompleto", details...)
	}

	return &domain.OrderDraft{
		PickupAddress:         form.PickupAddress,
		ScheduledDate:         scheduled,
		RecipientName:         form.RecipientName,
		RecipientLastName:     form.RecipientLastName,
		RecipientEmail:        form.RecipientEmail,
		RecipientPhone:        form.RecipientPhone,
		RecipientAddress:      form.RecipientAddress,
		RecipientDepartment:   form.RecipientDepartment,
		RecipientMunicipality: form.RecipientMunicipality,
		ReferencePoint:        form.ReferencePoint,
		Instructions:          form.Instructions,
		IsCOD:                 form.IsCOD,
		ExpectedCodAmount:     form.ExpectedCodAmount,
	}, nil
}

// AddPackage exige los cinco campos y coerciona las dimensiones a número.
// No hay validación de rango: cero o negativo se aceptan tal cual.
func (s *Service) AddPackage(draft *domain.OrderDraft, form PackageForm) *apperrors.ValidationError {
	fields := []struct {
		field string
		value string
	}{
		{"length", form.Length},
		{"height", form.Height},
		{"width", form.Width},
		{"weight", form.Weight},
		{"content", form.Content},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.NewValidationError("Completa todos los campos del paquete",
				apperrors.ValidationDetail{Field: f.field, Message: "Requerido"})
		}
	}

	length, err1 := strconv.ParseFloat(strings.TrimSpace(form.Length), 64)
	height, err2 := strconv.ParseFloat(strings.TrimSpace(form.Height), 64)
	width, err3 := strconv.ParseFloat(strings.TrimSpace(form.Width), 64)
	weight, err4 := strconv.ParseFloat(strings.TrimSpace(form.Weight), 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return apperrors.NewValidationError("Las dimensiones y el peso deben ser numéricos")
	}

	draft.Packages = append(draft.Packages, domain.PackageItem{
		ID:      uuid.New().String(),
		Length:  length,
		Height:  height,
		Width:   width,
		Weight:  weight,
		Content: form.Content,
	})
	return nil
}

// RemovePackage quita exactamente el elemento con ese id y conserva el
// orden relativo del resto.
func (s *Service) RemovePackage(draft *domain.OrderDraft, id string) {
	kept := draft.Packages[:0]
	for _, pkg := range draft.Packages {
		if pkg.ID != id {
			kept = append(kept, pkg)
		}
	}
	draft.Packages = kept
}

// NormalizePhone descarta todo lo que no sea dígito y antepone el prefijo
// de país fijo.
func (s *Service) NormalizePhone(raw string) string {
	return CountryPrefix + " " + nonDigitPattern.ReplaceAllString(raw, "")
}

// BuildRequest normaliza el borrador y arma el cuerpo de POST /orders.
// Con la lista de paquetes vacía devuelve ErrNoPackages y no hay llamada
// de red que hacer.
func (s *Service) BuildRequest(draft *domain.OrderDraft, now time.Time) (api.CreateOrderRequest, error) {
	if len(draft.Packages) == 0 {
		return api.CreateOrderRequest{}, ErrNoPackages
	}

	scheduled := draft.ScheduledDate
	if scheduled.IsZero() {
		scheduled = now
	}

	codAmount := decimal.Zero
	if draft.IsCOD {
		// un monto no parseable se trata como cero, igual que el original
		if parsed, err := decimal.NewFromString(strings.TrimSpace(draft.ExpectedCodAmount)); err == nil {
			codAmount = parsed
		}
	}

	packages := make([]api.PackagePayload, 0, len(draft.Packages))
	for _, pkg := range draft.Packages {
		packages = append(packages, api.PackagePayload{
			Length:  pkg.Length,
			Height:  pkg.Height,
			Width:   pkg.Width,
			Weight:  pkg.Weight,
			Content: pkg.Content,
		})
	}

	return api.CreateOrderRequest{
		PickupAddress:         draft.PickupAddress,
		ScheduledDate:         scheduled.UTC().Format(time.RFC3339),
		RecipientName:         draft.RecipientName,
		RecipientLastName:     draft.RecipientLastName,
		RecipientEmail:        draft.RecipientEmail,
		RecipientPhone:        s.NormalizePhone(draft.RecipientPhone),
		RecipientAddress:      draft.RecipientAddress,
		RecipientDepartment:   draft.RecipientDepartment,
		RecipientMunicipality: draft.RecipientMunicipality,
		ReferencePoint:        draft.ReferencePoint,
		Instructions:          draft.Instructions,
		IsCOD:                 draft.IsCOD,
		ExpectedCodAmount:     api.Amount{Decimal: codAmount},
		Packages:              packages,
	}, nil
}
