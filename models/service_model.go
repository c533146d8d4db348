package models

import (
	"log"
	"time"

	"github.com/aurelienmx/skillmarket/lifecycle"
	"github.com/aurelienmx/skillmarket/slugs"
	"github.com/aurelienmx/skillmarket/uploads"
	"gorm.io/gorm"
)

type Service struct {
	ID          uint      `gorm:"primary_key" json:"id"`
	ProviderID  uint      `gorm:"not null" json:"provider_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description *string   `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:numeric(10,2);not null;default:0.00" json:"price"`
	Cover       *string   `gorm:"size:255" json:"cover"`
	Tags        []*Tag    `gorm:"many2many:service_tags;" json:"tags,omitempty"`
	Provider    Provider  `gorm:"foreignkey:ProviderID" json:"provider,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Service) SlugKind() string    { return slugs.KindService }
func (s *Service) SlugSource() string  { return s.Title }
func (s *Service) CurrentSlug() string { return s.Slug }
func (s *Service) SetSlug(slug string) { s.Slug = slug }

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	return lifecycle.GenerateSlug(tx, s)
}

func (s *Service) BeforeUpdate(tx *gorm.DB) error {
	return lifecycle.RefreshSlug(tx, s)
}

func (s *Service) BeforeDelete(tx *gorm.DB) error {
	for _, err := range uploads.Default.RemoveTree(uploads.Default.ServiceDir(s.ProviderID, s.ID)) {
		log.Printf("⚠️ Upload cleanup for service %d: %v", s.ID, err)
	}
	return nil
}
