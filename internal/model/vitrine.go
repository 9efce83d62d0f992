package model

import (
	"time"

	"github.com/google/uuid"
)

// Vitrine is a seller's public storefront, reachable at /vitrine/public/{slug}.
// Each user owns at most one (UsuarioID is unique). Slug is globally unique
// and URL-safe; it is allocated by the slug package at creation time.
type Vitrine struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Nome        string    `gorm:"not null"`
	Slug        string    `gorm:"uniqueIndex;not null"`
	Descricao   *string
	LogoURL     *string
	BannerURL   *string
	CorPrimaria *string `gorm:"type:varchar(20)"`
	Whatsapp    *string `gorm:"type:varchar(30)"`
	Instagram   *string `gorm:"type:varchar(120)"`
	Endereco    *string `gorm:"type:varchar(255)"`
	Cidade      *string `gorm:"type:varchar(120)"`
	Estado      *string `gorm:"type:varchar(2)"`
	Ativa       bool    `gorm:"not null;default:true"`
	// Counters are bumped with a single UPDATE … SET x = x + 1, never
	// read-modify-write, so concurrent public reads cannot lose increments.
	Visualizacoes   int `gorm:"not null;default:0"`
	CliquesWhatsapp int `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Produtos []Produto `gorm:"foreignKey:VitrineID;constraint:OnDelete:CASCADE"`
}
