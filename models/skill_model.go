package models

import (
	"github.com/aurelienmx/skillmarket/lifecycle"
	"github.com/aurelienmx/skillmarket/slugs"
	"gorm.io/gorm"
)

type HardSkill struct {
	ID   uint   `gorm:"primary_key" json:"id"`
	Name string `gorm:"size:100;not null;unique" json:"name"`
	Slug string `gorm:"size:255;not null;uniqueIndex" json:"slug"`
}

func (s *HardSkill) SlugKind() string    { return slugs.KindHardSkill }
func (s *HardSkill) SlugSource() string  { return s.Name }
func (s *HardSkill) CurrentSlug() string { return s.Slug }
func (s *HardSkill) SetSlug(slug string) { s.Slug = slug }

func (s *HardSkill) BeforeCreate(tx *gorm.DB) error {
	return lifecycle.GenerateSlug(tx, s)
}

func (s *HardSkill) BeforeUpdate(tx *gorm.DB) error {
	return lifecycle.RefreshSlug(tx, s)
}

type SoftSkill struct {
	ID   uint   `gorm:"primary_key" json:"id"`
	Name string `gorm:"size:100;not null;unique" json:"name"`
	Slug string `gorm:"size:255;not null;uniqueIndex" json:"slug"`
}

func (s *SoftSkill) SlugKind() string    { return slugs.KindSoftSkill }
func (s *SoftSkill) SlugSource() string  { return s.Name }
func (s *SoftSkill) CurrentSlug() string { return s.Slug }
func (s *SoftSkill) SetSlug(slug string) { s.Slug = slug }

func (s *SoftSkill) BeforeCreate(tx *gorm.DB) error {
	return lifecycle.GenerateSlug(tx, s)
}

func (s *SoftSkill) BeforeUpdate(tx *gorm.DB) error {
	return lifecycle.RefreshSlug(tx, s)
}
