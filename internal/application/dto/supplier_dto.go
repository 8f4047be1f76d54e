package dto

import "time"

// SupplierContactDTO contacto de un proveedor.
type SupplierContactDTO struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// CreateSupplierRequest datos para crear un proveedor.
type CreateSupplierRequest struct {
	CompanyName string               `json:"company_name"`
	Contacts    []SupplierContactDTO `json:"contacts,omitempty"`
	LastVisit   string               `json:"last_visit,omitempty"` // 2006-01-02
	NextVisit   string               `json:"next_visit,omitempty"`
}

// UpdateSupplierRequest datos parciales para actualizar un proveedor.
type UpdateSupplierRequest struct {
	CompanyName *string              `json:"company_name,omitempty"`
	Contacts    []SupplierContactDTO `json:"contacts,omitempty"`
	LastVisit   *string              `json:"last_visit,omitempty"`
	NextVisit   *string              `json:"next_visit,omitempty"`
}

// SupplierResponse representación de un proveedor.
type SupplierResponse struct {
	ID          uint                 `json:"id"`
	CompanyName string               `json:"company_name"`
	Contacts    []SupplierContactDTO `json:"contacts,omitempty"`
	LastVisit   string               `json:"last_visit,omitempty"`
	NextVisit   string               `json:"next_visit,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// SupplierListResponse lista filtrada y paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
