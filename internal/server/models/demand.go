package models

import "time"

// Demand status lifecycle. New demands start as pendente.
const (
	DemandStatusPending    = "pendente"
	DemandStatusAccepted   = "aceita"
	DemandStatusInProgress = "em_andamento"
	DemandStatusDone       = "concluida"
	DemandStatusCancelled  = "cancelada"
)

// Demand is a service request created by a client user.
type Demand struct {
	ID          string
	UserID      string
	Title       string
	Description string
	CEP         string
	Service     string
	Status      string
	CreatedAt   time.Time
}
