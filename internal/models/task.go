package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Task struct {
	gorm.Model

	Title       string
	Description string
	Status      string // free text, no enforced transition graph
	DueDate     *datatypes.Date
	Priority    *int `gorm:"index"` // 1-10 when set
	ProjectID   uint `gorm:"not null;index"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
