package repository

import "github.com/jhoicas/kiosco-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y Payment.
type SaleRepository interface {
	// CreateWithStock persiste la venta y descuenta stock en una sola transacción.
	CreateWithStock(sale *entity.Sale) error
	GetByID(id int64) (*entity.Sale, error)
	List(limit, offset int) ([]entity.Sale, int64, error)
	// ListByCustomer es la consulta indexada por cliente (fiados).
	ListByCustomer(customerID string) ([]entity.Sale, error)
	// CountByCustomer cuenta las ventas que referencian al cliente, pagas o no.
	CountByCustomer(customerID string) (int64, error)
	AddPayment(payment *entity.Payment) error
	PaymentsBySale(saleID int64) ([]entity.Payment, error)
	MarkPaid(saleID int64) error
}
