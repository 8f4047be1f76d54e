package usecase

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kiosco-api/internal/application/dto"
	"github.com/jhoicas/kiosco-api/internal/domain"
	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/domain/repository"
	"github.com/jhoicas/kiosco-api/pkg/money"
)

// SaleUseCase casos de uso de ventas: registro con descuento de stock,
// fiados y pagos sobre fiados. Los IDs son snowflakes (sembrados por
// timestamp, los genera el caller tal como exige el almacén).
type SaleUseCase struct {
	sales     repository.SaleRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	cash      *CashUseCase
	node      *snowflake.Node
	now       func() time.Time
}

// NewSaleUseCase construye el caso de uso. cash puede ser nil (sin caja).
func NewSaleUseCase(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	cash *CashUseCase,
	node *snowflake.Node,
) *SaleUseCase {
	return &SaleUseCase{
		sales:     sales,
		products:  products,
		customers: customers,
		cash:      cash,
		node:      node,
		now:       time.Now,
	}
}

// WithClock fija el reloj (tests).
func (uc *SaleUseCase) WithClock(now func() time.Time) *SaleUseCase {
	uc.now = now
	return uc
}

// Create registra una venta. Copia nombre, unidad y precios de cada producto,
// descuenta stock en una transacción y, si la caja del día está abierta,
// asienta los movimientos correspondientes. Una venta fiada exige un cliente
// existente y nace impaga.
func (uc *SaleUseCase) Create(in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 || !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	sale := &entity.Sale{
		ID:            uc.node.Generate().Int64(),
		PaymentMethod: in.PaymentMethod,
		Date:          uc.now(),
		Credit:        in.Credit,
	}

	if in.Credit {
		if in.CustomerID == "" {
			return nil, domain.ErrInvalidInput
		}
		customer, err := uc.customers.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		sale.CustomerID = customer.ID
		sale.CustomerName = customer.Name
	}

	total := decimal.Zero
	for _, item := range in.Items {
		if !item.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.products.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		sale.Items = append(sale.Items, entity.SaleItem{
			ProductID: product.ID,
			Name:      product.Name,
			Unit:      product.Unit,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			CostPrice: product.CostPrice,
		})
		total = total.Add(product.Price.Mul(item.Quantity))
	}
	sale.Total = total

	if err := uc.sales.CreateWithStock(sale); err != nil {
		return nil, err
	}

	// Los fiados no mueven caja hasta que se pagan.
	if uc.cash != nil && !sale.Credit {
		if err := uc.cash.RecordSale(sale); err != nil {
			return nil, err
		}
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta por ID.
func (uc *SaleUseCase) GetByID(id int64) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// List devuelve ventas paginadas, más recientes primero.
func (uc *SaleUseCase) List(page, perPage int) (*dto.SaleListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}
	sales, total, err := uc.sales.List(perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		items = append(items, *toSaleResponse(&sales[i]))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page, PerPage: perPage, Total: total},
	}, nil
}

// ListByCustomer devuelve las ventas de un cliente (consulta indexada).
func (uc *SaleUseCase) ListByCustomer(customerID string) ([]dto.SaleResponse, error) {
	sales, err := uc.sales.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		items = append(items, *toSaleResponse(&sales[i]))
	}
	return items, nil
}

// RegisterPayment asienta un pago sobre una venta fiada. Cuando lo pagado
// acumulado cubre el total, la venta queda saldada; el cobro entra a la caja
// del día si está abierta.
func (uc *SaleUseCase) RegisterPayment(saleID int64, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.sales.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if !sale.Credit {
		return nil, domain.ErrInvalidInput
	}
	if sale.Paid {
		return nil, domain.ErrConflict
	}

	payment := &entity.Payment{
		ID:     uc.node.Generate().Int64(),
		SaleID: saleID,
		Amount: in.Amount,
		Date:   uc.now(),
	}
	if err := uc.sales.AddPayment(payment); err != nil {
		return nil, err
	}

	payments, err := uc.sales.PaymentsBySale(saleID)
	if err != nil {
		return nil, err
	}
	accumulated := decimal.Zero
	for _, p := range payments {
		accumulated = accumulated.Add(p.Amount)
	}

	paid := accumulated.GreaterThanOrEqual(sale.Total)
	if paid {
		if err := uc.sales.MarkPaid(saleID); err != nil {
			return nil, err
		}
	}
	pending := sale.Total.Sub(accumulated)
	if pending.IsNegative() {
		pending = decimal.Zero
	}

	if uc.cash != nil {
		if err := uc.cash.RecordCreditPayment(sale, in.Amount); err != nil {
			return nil, err
		}
	}

	return &dto.PaymentResponse{
		SaleID:  saleID,
		Amount:  in.Amount,
		Paid:    paid,
		Pending: pending,
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Unit:      it.Unit,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		Items:         items,
		PaymentMethod: s.PaymentMethod,
		Total:         s.Total,
		TotalDisplay:  money.Format(s.Total),
		Date:          s.Date,
		Credit:        s.Credit,
		CustomerID:    s.CustomerID,
		CustomerName:  s.CustomerName,
		Paid:          s.Paid,
	}
}
