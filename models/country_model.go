package models

import (
	"github.com/aurelienmx/skillmarket/lifecycle"
	"github.com/aurelienmx/skillmarket/slugs"
	"gorm.io/gorm"
)

type Country struct {
	ID   uint   `gorm:"primary_key" json:"id"`
	Name string `gorm:"size:100;not null;unique" json:"name"`
	Slug string `gorm:"size:255;not null;uniqueIndex" json:"slug"`
}

func (c *Country) SlugKind() string    { return slugs.KindCountry }
func (c *Country) SlugSource() string  { return c.Name }
func (c *Country) CurrentSlug() string { return c.Slug }
func (c *Country) SetSlug(slug string) { c.Slug = slug }

func (c *Country) BeforeCreate(tx *gorm.DB) error {
	return lifecycle.GenerateSlug(tx, c)
}

func (c *Country) BeforeUpdate(tx *gorm.DB) error {
	return lifecycle.RefreshSlug(tx, c)
}
