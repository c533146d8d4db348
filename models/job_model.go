package models

import (
	"github.com/aurelienmx/skillmarket/lifecycle"
	"github.com/aurelienmx/skillmarket/slugs"
	"gorm.io/gorm"
)

type Job struct {
	ID   uint   `gorm:"primary_key" json:"id"`
	Name string `gorm:"size:100;not null;unique" json:"name"`
	Slug string `gorm:"size:255;not null;uniqueIndex" json:"slug"`
}

func (j *Job) SlugKind() string    { return slugs.KindJob }
func (j *Job) SlugSource() string  { return j.Name }
func (j *Job) CurrentSlug() string { return j.Slug }
func (j *Job) SetSlug(slug string) { j.Slug = slug }

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	return lifecycle.GenerateSlug(tx, j)
}

func (j *Job) BeforeUpdate(tx *gorm.DB) error {
	return lifecycle.RefreshSlug(tx, j)
}
