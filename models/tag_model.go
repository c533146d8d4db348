package models

import (
	"github.com/aurelienmx/skillmarket/lifecycle"
	"github.com/aurelienmx/skillmarket/slugs"
	"gorm.io/gorm"
)

type Tag struct {
	ID   uint   `gorm:"primary_key" json:"id"`
	Name string `gorm:"size:100;not null;unique" json:"name"`
	Slug string `gorm:"size:255;not null;uniqueIndex" json:"slug"`
}

func (t *Tag) SlugKind() string    { return slugs.KindTag }
func (t *Tag) SlugSource() string  { return t.Name }
func (t *Tag) CurrentSlug() string { return t.Slug }
func (t *Tag) SetSlug(slug string) { t.Slug = slug }

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	return lifecycle.GenerateSlug(tx, t)
}

func (t *Tag) BeforeUpdate(tx *gorm.DB) error {
	return lifecycle.RefreshSlug(tx, t)
}
