package models

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultCategories are created when the categories table is empty.
var DefaultCategories = []Category{
	{Name: "Dinheiro", Description: "Empréstimos de dinheiro"},
	{Name: "Objeto", Description: "Livros, ferramentas e outros objetos"},
	{Name: "Outros", Description: "Tudo o que não se encaixa nas outras categorias"},
}

// DefaultStatuses are created when the statuses table is empty.
var DefaultStatuses = []Status{
	{Name: StatusPending, Description: "Aguardando devolução"},
	{Name: StatusReturned, Description: "Já devolvido"},
}

// seed creates the reference data if it does not exist yet.
//
// Hosted record stores are usually seeded by their operator, in which
// case nothing is created.
func seed(db *gorm.DB) error {
	err := seedTable(db, DefaultCategories)
	if err != nil {
		return err
	}

	return seedTable(db, DefaultStatuses)
}

func seedTable[T Category | Status](db *gorm.DB, defaults []T) error {
	var count int64
	err := db.Model(new(T)).Count(&count).Error
	if err != nil {
		return fmt.Errorf("could not count reference data: %w", err)
	}

	if count > 0 {
		return nil
	}

	// Copy so that the IDs set by Create do not leak into the defaults
	rows := make([]T, len(defaults))
	copy(rows, defaults)

	err = db.Create(&rows).Error
	if err != nil {
		return fmt.Errorf("could not seed reference data: %w", err)
	}

	log.Info().Int("count", len(rows)).Str("type", fmt.Sprintf("%T", rows[0])).Msg("Seeded reference data")
	return nil
}
