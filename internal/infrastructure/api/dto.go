package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	User        UserInfo `json:"user"`
}

type UserInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	BirthDate string `json:"birthDate,omitempty"`
	Gender    string `json:"gender,omitempty"`
}

// Amount es un monto que viaja en el cuerpo de una petición. Serializa
// como número JSON: el backend no acepta montos entre comillas.
type Amount struct {
	decimal.Decimal
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

type PackagePayload struct {
	Length  float64 `json:"length"`
	Height  float64 `json:"height"`
	Width   float64 `json:"width"`
	Weight  float64 `json:"weight"`
	Content string  `json:"content"`
}

// CreateOrderRequest es el cuerpo de POST /orders. El teléfono ya viene
// normalizado ("+503 XXXXXXXX") y la fecha en RFC3339.
type CreateOrderRequest struct {
	PickupAddress         string           `json:"pickupAddress"`
	ScheduledDate         string           `json:"scheduledDate"`
	RecipientName         string           `json:"recipientName"`
	RecipientLastName     string           `json:"recipientLastName"`
	RecipientEmail        string           `json:"recipientEmail"`
	RecipientPhone        string           `json:"recipientPhone"`
	RecipientAddress      string           `json:"recipientAddress"`
	RecipientDepartment   string           `json:"recipientDepartment"`
	RecipientMunicipality string           `json:"recipientMunicipality"`
	ReferencePoint        string           `json:"referencePoint,omitempty"`
	Instructions          string           `json:"instructions,omitempty"`
	IsCOD                 bool             `json:"isCOD"`
	ExpectedCodAmount     Amount           `json:"expectedCodAmount"`
	Packages              []PackagePayload `json:"packages"`
}

// OrderRecord es un envío tal y como lo entrega GET /orders. Es una
// proyección de solo lectura: el portal nunca la muta.
type OrderRecord struct {
	ID                    string           `json:"id"`
	RecipientName         string           `json:"recipientName"`
	RecipientLastName     string           `json:"recipientLastName"`
	RecipientDepartment   string           `json:"recipientDepartment"`
	RecipientMunicipality string           `json:"recipientMunicipality"`
	Status                string           `json:"status"`
	CreatedAt             time.Time        `json:"createdAt"`
	CollectedAmount       decimal.Decimal  `json:"collectedAmount"`
	SettlementAmount      *decimal.Decimal `json:"settlementAmount"`
	Packages              []PackagePayload `json:"packages"`
}

type BalanceResponse struct {
	TotalSettlement decimal.Decimal `json:"totalSettlement"`
}
