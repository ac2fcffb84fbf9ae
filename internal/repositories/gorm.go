package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// existsBy counts rows of model whose column equals value.
func existsBy(ctx context.Context, db *gorm.DB, model interface{}, column string, value interface{}) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where(column+" = ?", value).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s: %w", column, err)
	}
	return count > 0, nil
}

// notFound maps gorm.ErrRecordNotFound onto ErrNotFound and wraps anything else.
func notFound(err error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", msg, err)
}
