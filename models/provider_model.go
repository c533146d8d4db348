package models

import (
	"log"
	"strings"
	"time"

	"github.com/aurelienmx/skillmarket/lifecycle"
	"github.com/aurelienmx/skillmarket/slugs"
	"github.com/aurelienmx/skillmarket/uploads"
	"gorm.io/gorm"
)

type Provider struct {
	ID             uint         `gorm:"primary_key" json:"id"`
	FirstName      string       `gorm:"size:100;not null" json:"first_name"`
	LastName       string       `gorm:"size:100;not null" json:"last_name"`
	Slug           string       `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Email          string       `gorm:"size:255;not null;unique" json:"email"`
	Password       string       `gorm:"not null" json:"-"`
	Headline       *string      `gorm:"size:255" json:"headline"`
	Bio            *string      `gorm:"type:text" json:"bio"`
	City           *string      `gorm:"size:100" json:"city"`
	HourlyRate     float64      `gorm:"type:numeric(10,2);default:0.00" json:"hourly_rate"`
	ProfilePicture *string      `gorm:"size:255" json:"profile_picture"`
	CountryID      *uint        `json:"country_id"`
	Country        *Country     `gorm:"foreignkey:CountryID" json:"country,omitempty"`
	Languages      []*Language  `gorm:"many2many:provider_languages;" json:"languages,omitempty"`
	Jobs           []*Job       `gorm:"many2many:provider_jobs;" json:"jobs,omitempty"`
	HardSkills     []*HardSkill `gorm:"many2many:provider_hard_skills;" json:"hard_skills,omitempty"`
	SoftSkills     []*SoftSkill `gorm:"many2many:provider_soft_skills;" json:"soft_skills,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (p *Provider) SlugKind() string { return slugs.KindProvider }

func (p *Provider) SlugSource() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p *Provider) CurrentSlug() string { return p.Slug }
func (p *Provider) SetSlug(slug string) { p.Slug = slug }

func (p *Provider) BeforeCreate(tx *gorm.DB) error {
	return lifecycle.GenerateSlug(tx, p)
}

func (p *Provider) BeforeUpdate(tx *gorm.DB) error {
	return lifecycle.RefreshSlug(tx, p)
}

// BeforeDelete drops the provider's whole upload subtree, services and
// articles included. Best effort: failures are logged, never returned, so a
// stray file cannot block the account deletion.
func (p *Provider) BeforeDelete(tx *gorm.DB) error {
	for _, err := range uploads.Default.RemoveTree(uploads.Default.ProviderDir(p.ID)) {
		log.Printf("⚠️ Upload cleanup for provider %d: %v", p.ID, err)
	}
	return nil
}
