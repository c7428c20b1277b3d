package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrValidation marks a write rejected because a required field was empty.
var ErrValidation = errors.New("required field missing")

type GormRepo struct {
	DB *gorm.DB
}
