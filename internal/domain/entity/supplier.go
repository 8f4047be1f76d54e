package entity

import "time"

// SupplierContact es un contacto del proveedor.
type SupplierContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// Supplier representa un proveedor con sus contactos y fechas de visita.
type Supplier struct {
	ID          uint              `gorm:"primaryKey;autoIncrement"`
	CompanyName string            `gorm:"index"`
	Contacts    []SupplierContact `gorm:"serializer:json"`
	LastVisit   *time.Time
	NextVisit   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
