package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto is a listing owned by exactly one Vitrine. Rows are removed when the
// owning storefront is deleted (FK cascade). Ativo=false hides the listing
// from the public page without losing it from the seller's panel.
type Produto struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VitrineID     uuid.UUID        `gorm:"type:uuid;index;not null"`
	Nome          string           `gorm:"not null"`
	Descricao     *string
	Preco         *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Ano           *int
	Km            *int
	Cor           *string          `gorm:"type:varchar(50)"`
	ImagemURL     *string
	Destaque      bool             `gorm:"not null;default:false"`
	Ativo         bool             `gorm:"not null;default:true"`
	Visualizacoes int              `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
