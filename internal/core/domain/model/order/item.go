package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line within an order: a product, its immutable unit price, and a
// positive quantity. Items are value entities owned by the Order aggregate;
// they are created by the upstream order-building flow and only read here.
type Item struct {
	// id is the unique identifier for the line
	id kernel.UUID

	// productID identifies the priced product
	productID kernel.UUID

	// price is the unit price, fixed when the line was added
	price kernel.Money

	// quantity is the ordered unit count (must be positive)
	quantity int

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates a validated order line.
//
// Parameters:
//   - id: unique identifier for the line (must be a valid UUID)
//   - productID: identifier of the product (must be a valid UUID)
//   - price: unit price
//   - quantity: ordered unit count (must be greater than 0)
//
// Returns a validation error if any parameter is invalid.
func NewItem(id kernel.UUID, productID kernel.UUID, price kernel.Money, quantity int) (Item, error) {
	item := Item{
		price:         price,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the ordered product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Price returns the immutable unit price.
func (i Item) Price() kernel.Money {
	return i.price
}

// Quantity returns the ordered unit count.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns the line value: unit price multiplied by quantity.
func (i Item) LineTotal() kernel.Money {
	return i.price.MultiplyInt(int64(i.quantity))
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
