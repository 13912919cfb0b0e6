package models

// Category classifies a loan. Categories are read-only reference data.
type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey" example:"1"`              // ID of the category
	Name        string `json:"name" example:"Dinheiro"`                       // Name of the category
	Description string `json:"description" example:"Empréstimos de dinheiro"` // Description of the category
}

func (Category) TableName() string {
	return "categories"
}
