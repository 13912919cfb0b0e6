package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Amount is an optional amount of money.
//
// SQLite converts DECIMAL columns to floating point numbers, which keep
// only 15 significant digits. Amounts are therefore stored as text there.
type Amount struct {
	decimal.NullDecimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{decimal.NewNullDecimal(d)}
}

func (Amount) GormDataType() string {
	return "decimal"
}

func (Amount) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "TEXT"
	}
	return "DECIMAL(20,8)"
}
