package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is one merchant tenant. Every storefront read is scoped by store id.
type Store struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"not null;uniqueIndex"`
	OwnerID   uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Currency  string    `json:"currency" gorm:"default:'USD'"`
	Status    string    `json:"status" gorm:"not null;check:status IN ('active', 'suspended');default:'active'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Store) TableName() string {
	return "stores"
}
