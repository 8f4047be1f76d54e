package usecase

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kiosco-api/internal/application/dto"
	"github.com/jhoicas/kiosco-api/internal/domain"
	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// CashUseCase casos de uso de la caja diaria: apertura, movimientos, cierre
// con arqueo. Una caja por fecha calendario.
type CashUseCase struct {
	repo repository.CashRepository
	node *snowflake.Node
	now  func() time.Time
}

// NewCashUseCase construye el caso de uso.
func NewCashUseCase(repo repository.CashRepository, node *snowflake.Node) *CashUseCase {
	return &CashUseCase{repo: repo, node: node, now: time.Now}
}

// WithClock fija el reloj (tests).
func (uc *CashUseCase) WithClock(now func() time.Time) *CashUseCase {
	uc.now = now
	return uc
}

// Open abre la caja del día con el monto inicial. Abrir dos veces la misma
// fecha es un conflicto.
func (uc *CashUseCase) Open(in dto.OpenRegisterRequest, openedBy string) (*dto.CashRegisterResponse, error) {
	if in.InitialAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	register := &entity.CashRegister{
		Date:          now.Format(dateLayout),
		InitialAmount: in.InitialAmount,
		OpenedBy:      openedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Open(register); err != nil {
		return nil, err
	}
	return uc.toResponse(register, nil), nil
}

// Current devuelve la caja del día con movimientos y totales, o nil si no se abrió.
func (uc *CashUseCase) Current() (*dto.CashRegisterResponse, error) {
	register, err := uc.repo.GetByDate(uc.now().Format(dateLayout))
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, nil
	}
	movements, err := uc.repo.MovementsByRegister(register.ID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(register, movements), nil
}

// AddMovement asienta un ingreso o egreso manual en la caja abierta del día.
func (uc *CashUseCase) AddMovement(in dto.CashMovementRequest) (*dto.CashMovementResponse, error) {
	if in.Type != entity.MovementIncome && in.Type != entity.MovementExpense {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() || strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentMethod != "" && !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	register, err := uc.openRegister()
	if err != nil {
		return nil, err
	}
	movement := &entity.CashMovement{
		ID:            uc.node.Generate().Int64(),
		RegisterID:    register.ID,
		Type:          in.Type,
		Amount:        in.Amount,
		Description:   strings.TrimSpace(in.Description),
		PaymentMethod: in.PaymentMethod,
		Date:          uc.now(),
	}
	if err := uc.repo.AddMovement(movement); err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// RecordSale asienta los movimientos de una venta de contado, con la ganancia
// por línea. Si la caja del día no está abierta no hace nada: la venta vale
// igual, solo que no hay arqueo que alimentar.
func (uc *CashUseCase) RecordSale(sale *entity.Sale) error {
	register, err := uc.repo.GetByDate(uc.now().Format(dateLayout))
	if err != nil {
		return err
	}
	if register == nil || register.Closed {
		return nil
	}
	for _, item := range sale.Items {
		amount := item.UnitPrice.Mul(item.Quantity)
		profit := item.UnitPrice.Sub(item.CostPrice).Mul(item.Quantity)
		movement := &entity.CashMovement{
			ID:            uc.node.Generate().Int64(),
			RegisterID:    register.ID,
			Type:          entity.MovementIncome,
			Amount:        amount,
			Description:   "Venta " + item.Name,
			PaymentMethod: sale.PaymentMethod,
			ProductID:     item.ProductID,
			ProductName:   item.Name,
			Quantity:      item.Quantity,
			Profit:        profit,
			SaleID:        sale.ID,
			Date:          uc.now(),
		}
		if err := uc.repo.AddMovement(movement); err != nil {
			return err
		}
	}
	return nil
}

// RecordCreditPayment asienta el cobro de un fiado. Sin caja abierta no hace nada.
func (uc *CashUseCase) RecordCreditPayment(sale *entity.Sale, amount decimal.Decimal) error {
	register, err := uc.repo.GetByDate(uc.now().Format(dateLayout))
	if err != nil {
		return err
	}
	if register == nil || register.Closed {
		return nil
	}
	movement := &entity.CashMovement{
		ID:            uc.node.Generate().Int64(),
		RegisterID:    register.ID,
		Type:          entity.MovementIncome,
		Amount:        amount,
		Description:   "Cobro fiado " + sale.CustomerName,
		PaymentMethod: entity.PaymentCash,
		SaleID:        sale.ID,
		Date:          uc.now(),
	}
	return uc.repo.AddMovement(movement)
}

// Close cierra la caja del día con el monto contado y calcula la diferencia
// contra el esperado (inicial + ingresos en efectivo - egresos).
func (uc *CashUseCase) Close(in dto.CloseRegisterRequest, closedBy string) (*dto.CashRegisterResponse, error) {
	if in.ClosingAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	register, err := uc.openRegister()
	if err != nil {
		return nil, err
	}
	movements, err := uc.repo.MovementsByRegister(register.ID)
	if err != nil {
		return nil, err
	}
	expected := expectedCash(register, movements)

	now := uc.now()
	register.Closed = true
	register.ClosingAmount = in.ClosingAmount
	register.ClosingDifference = in.ClosingAmount.Sub(expected)
	register.ClosedAt = &now
	register.ClosedBy = closedBy
	register.Comments = strings.TrimSpace(in.Comments)
	register.UpdatedAt = now
	if err := uc.repo.Update(register); err != nil {
		return nil, err
	}
	return uc.toResponse(register, movements), nil
}

func (uc *CashUseCase) openRegister() (*entity.CashRegister, error) {
	register, err := uc.repo.GetByDate(uc.now().Format(dateLayout))
	if err != nil {
		return nil, err
	}
	if register == nil || register.Closed {
		return nil, domain.ErrRegisterClosed
	}
	return register, nil
}

// expectedCash es el efectivo que debería haber en el cajón: monto inicial
// más ingresos en EFECTIVO menos todos los egresos.
func expectedCash(register *entity.CashRegister, movements []entity.CashMovement) decimal.Decimal {
	expected := register.InitialAmount
	for _, m := range movements {
		switch {
		case m.Type == entity.MovementIncome && m.PaymentMethod == entity.PaymentCash:
			expected = expected.Add(m.Amount)
		case m.Type == entity.MovementExpense:
			expected = expected.Sub(m.Amount)
		}
	}
	return expected
}

func (uc *CashUseCase) toResponse(register *entity.CashRegister, movements []entity.CashMovement) *dto.CashRegisterResponse {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	totalProfit := decimal.Zero
	cashIncome := decimal.Zero
	items := make([]dto.CashMovementResponse, 0, len(movements))
	for i := range movements {
		m := &movements[i]
		switch m.Type {
		case entity.MovementIncome:
			totalIncome = totalIncome.Add(m.Amount)
			if m.PaymentMethod == entity.PaymentCash {
				cashIncome = cashIncome.Add(m.Amount)
			}
		case entity.MovementExpense:
			totalExpense = totalExpense.Add(m.Amount)
		}
		totalProfit = totalProfit.Add(m.Profit)
		items = append(items, *toMovementResponse(m))
	}
	return &dto.CashRegisterResponse{
		ID:                register.ID,
		Date:              register.Date,
		InitialAmount:     register.InitialAmount,
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		TotalProfit:       totalProfit,
		CashIncome:        cashIncome,
		Expected:          register.InitialAmount.Add(cashIncome).Sub(totalExpense),
		Closed:            register.Closed,
		ClosingAmount:     register.ClosingAmount,
		ClosingDifference: register.ClosingDifference,
		Comments:          register.Comments,
		Movements:         items,
	}
}

func toMovementResponse(m *entity.CashMovement) *dto.CashMovementResponse {
	return &dto.CashMovementResponse{
		ID:            m.ID,
		Type:          m.Type,
		Amount:        m.Amount,
		Description:   m.Description,
		PaymentMethod: m.PaymentMethod,
		ProductName:   m.ProductName,
		Profit:        m.Profit,
		Date:          m.Date,
	}
}
