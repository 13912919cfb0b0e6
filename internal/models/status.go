package models

// Names of the statuses with special meaning for aggregations.
const (
	StatusPending  = "pendente"
	StatusReturned = "devolvido"
)

// Status is the lifecycle state of a loan. Statuses are read-only reference data.
type Status struct {
	ID          uint   `json:"id" gorm:"primaryKey" example:"1"`           // ID of the status
	Name        string `json:"name" example:"pendente"`                    // Name of the status
	Description string `json:"description" example:"Aguardando devolução"` // Description of the status
}

func (Status) TableName() string {
	return "statuses"
}
