package utils

import (
	"context"
	"errors"
	"reflect"

	"github.com/mmdatafocus/inventory_backend/config"
	"gorm.io/gorm"
)

/* DB fetching */

// fetch model from db
// (returns NotFound AppError when missing)
func FetchModel[T any](ctx context.Context, id int, associations ...string) (*T, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	for _, field := range associations {
		dbCtx = dbCtx.Preload(field)
	}
	var result T
	err := dbCtx.First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(GetTypeName[T]() + " not found")
		}
		return nil, AsAppError(err)
	}
	return &result, nil
}

// fetch all models from db in the given order
func FetchAllModels[T any](ctx context.Context, order string, associations ...string) ([]*T, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	for _, field := range associations {
		dbCtx = dbCtx.Preload(field)
	}
	if order != "" {
		dbCtx = dbCtx.Order(order)
	}
	var results []*T
	if err := dbCtx.Find(&results).Error; err != nil {
		return nil, AsAppError(err)
	}
	return results, nil
}

func GetTypeName[T any]() string {
	var v T
	return reflect.TypeOf(v).Name()
}
