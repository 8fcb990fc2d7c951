package repositories

import (
	"errors"

	"github.com/augie-sif/sif-backend/database"
	"gorm.io/gorm"
)

// Generic CRUD helpers shared by the entity repositories. Each is
// parameterized by the model type, which GORM maps to its table.

// FindAll retrieves every record ordered by the given field.
// Returns an empty slice when no records exist.
func FindAll[T any](orderField string, ascending bool) ([]T, error) {
	direction := "desc"
	if ascending {
		direction = "asc"
	}

	var records []T
	result := database.DB.Order(orderField + " " + direction).Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

// FindByID retrieves a record by primary key.
// An absent record is not an error: returns (nil, nil).
func FindByID[T any](id string) (*T, error) {
	var record T
	result := database.DB.First(&record, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &record, nil
}

// FindByField retrieves the first record matching field = value.
// An absent record returns (nil, nil).
func FindByField[T any](field string, value any) (*T, error) {
	var record T
	result := database.DB.First(&record, field+" = ?", value)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &record, nil
}

// Create inserts a new record and returns it with DB-assigned fields set.
func Create[T any](record *T) (*T, error) {
	result := database.DB.Create(record)
	if result.Error != nil {
		return nil, result.Error
	}
	return record, nil
}

// UpdateFields applies a partial update to the record with the given id.
// Returns false when nothing was updated.
func UpdateFields[T any](id string, fields map[string]any) (bool, error) {
	var model T
	result := database.DB.Model(&model).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes the record with the given id (soft delete).
// Returns false when no record matched.
func Delete[T any](id string) (bool, error) {
	var model T
	result := database.DB.Delete(&model, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
