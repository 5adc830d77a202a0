package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "restaurant/internal/errors"
)

const bcryptCost = 10

// notFound translates a missing record into the given domain error and passes anything else through.
func notFound(err error, target *apperrors.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func unixNow(now func() time.Time) int64 {
	if now == nil {
		return time.Now().Unix()
	}
	return now().Unix()
}
