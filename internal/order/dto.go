package order

import (
	"boxful/internal/domain"
	"boxful/internal/web"
)

// Step1Form son los valores crudos del paso 1 del asistente.
type Step1Form struct {
	PickupAddress         string
	ScheduledDate         string
	RecipientName         string
	RecipientLastName     string
	RecipientEmail        string
	RecipientPhone        string
	RecipientAddress      string
	RecipientDepartment   string
	RecipientMunicipality string
	ReferencePoint        string
	Instructions          string
	IsCOD                 bool
	ExpectedCodAmount     string
}

// PackageForm son los cinco campos del sub-formulario de paquete.
type PackageForm struct {
	Length  string
	Height  string
	Width   string
	Weight  string
	Content string
}

type Step1Data struct {
	Shell          web.Shell
	Title          string
	Error          string
	FieldErrors    map[string]string
	Form           Step1Form
	Departments    []string
	Municipalities []string
}

type Step2Data struct {
	Shell    web.Shell
	Title    string
	Error    string
	Warning  string
	Form     PackageForm
	Packages []domain.PackageItem
}

type SuccessData struct {
	Shell web.Shell
	Title string
}
