package repository

import (
	"gorm.io/gorm"

	"github.com/Nagesh2809/cafe-management/entity"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) CountOrders() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Count(&count).Error
	return count, err
}

func (r *ReportRepository) CountUsers() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Count(&count).Error
	return count, err
}

// AllOrderHeaders scans order headers in insertion order, no items.
func (r *ReportRepository) AllOrderHeaders() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Model(&entity.Order{}).
		Select("id, date, total").
		Order("id ASC").
		Find(&orders).Error
	return orders, err
}
