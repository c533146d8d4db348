package models

import (
	"github.com/aurelienmx/skillmarket/lifecycle"
	"github.com/aurelienmx/skillmarket/slugs"
	"gorm.io/gorm"
)

type Language struct {
	ID   uint   `gorm:"primary_key" json:"id"`
	Name string `gorm:"size:100;not null;unique" json:"name"`
	Slug string `gorm:"size:255;not null;uniqueIndex" json:"slug"`
}

func (l *Language) SlugKind() string    { return slugs.KindLanguage }
func (l *Language) SlugSource() string  { return l.Name }
func (l *Language) CurrentSlug() string { return l.Slug }
func (l *Language) SetSlug(slug string) { l.Slug = slug }

func (l *Language) BeforeCreate(tx *gorm.DB) error {
	return lifecycle.GenerateSlug(tx, l)
}

func (l *Language) BeforeUpdate(tx *gorm.DB) error {
	return lifecycle.RefreshSlug(tx, l)
}
