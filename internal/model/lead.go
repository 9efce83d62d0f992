package model

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a visitor contact captured on a public storefront page.
// Exportado tracks whether the row was successfully forwarded to the
// seller's spreadsheet by the planilha worker.
type Lead struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VitrineID uuid.UUID `gorm:"type:uuid;index;not null"`
	Nome      string    `gorm:"not null"`
	Telefone  *string   `gorm:"type:varchar(30)"`
	Email     *string   `gorm:"type:varchar(120)"`
	Mensagem  *string
	Exportado bool `gorm:"not null;default:false"`
	CreatedAt time.Time
}
