package domain

import "time"

// PackageItem es una línea de paquete del asistente de creación de envíos.
// El id se genera en el portal y solo existe mientras dura el borrador.
type PackageItem struct {
	ID      string  `json:"id"`
	Length  float64 `json:"length"`
	Height  float64 `json:"height"`
	Width   float64 `json:"width"`
	Weight  float64 `json:"weight"`
	Content string  `json:"content"`
}

// OrderDraft reúne los campos validados del paso 1 del asistente más la
// lista de paquetes del paso 2. Vive en la sesión hasta que el envío se
// crea o se abandona; nunca se persiste parcialmente.
type OrderDraft struct {
	PickupAddress         string        `json:"pickupAddress"`
	ScheduledDate         time.Time     `json:"scheduledDate"`
	RecipientName         string        `json:"recipientName"`
	RecipientLastName     string        `json:"recipientLastName"`
	RecipientEmail        string        `json:"recipientEmail"`
	RecipientPhone        string        `json:"recipientPhone"`
	RecipientAddress      string        `json:"recipientAddress"`
	RecipientDepartment   string        `json:"recipientDepartment"`
	RecipientMunicipality string        `json:"recipientMunicipality"`
	ReferencePoint        string        `json:"referencePoint"`
	Instructions          string        `json:"instructions"`
	IsCOD                 bool          `json:"isCOD"`
	ExpectedCodAmount     string        `json:"expectedCodAmount"`
	Packages              []PackageItem `json:"packages"`
}

const (
	OrderStatusPending   = "PENDING"
	OrderStatusDelivered = "DELIVERED"
)
