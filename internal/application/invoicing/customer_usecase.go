package invoicing

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/jhoicas/sinvoice-api/internal/domain"
	"github.com/jhoicas/sinvoice-api/internal/domain/entity"
)

// CustomerUseCase altas y listado de clientes. Los clientes son inmutables
// una vez creados y no se borran.
type CustomerUseCase struct {
	store *Store
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(store *Store) *CustomerUseCase {
	return &CustomerUseCase{store: store}
}

// Create agrega un cliente con ID = máximo existente + 1 y lo deja
// seleccionado en la factura en curso.
func (uc *CustomerUseCase) Create(name, address string) (entity.Customer, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if name == "" || address == "" {
		return entity.Customer{}, domain.ErrInvalidInput
	}

	highest := lo.MaxBy(uc.store.Snapshot().Customers, func(a, b entity.Customer) bool {
		return a.ID > b.ID
	})
	customer := entity.Customer{
		ID:      highest.ID + 1,
		Name:    name,
		Address: address,
	}

	uc.store.Dispatch(AddCustomer{Customer: customer})
	uc.store.Dispatch(UpdateInvoiceField{
		Field: FieldCustomer,
		Value: strconv.FormatInt(customer.ID, 10),
	})
	return customer, nil
}

// List clientes en orden de creación.
func (uc *CustomerUseCase) List() []entity.Customer {
	return uc.store.Snapshot().Customers
}
