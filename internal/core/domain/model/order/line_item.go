package order

import (
	"fmt"

	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/pkg/errs"
	"kitcart/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError("LineItem must be created via NewLineItem")

// ItemKind distinguishes the two catalog item kinds a line can refer to:
// recipe kits and add-ons (essentials, utensils).
type ItemKind int

const (
	// KindUnknown represents an invalid or undefined item kind.
	KindUnknown ItemKind = iota

	// KindRecipe marks a line referring to a recipe kit.
	KindRecipe

	// KindAddon marks a line referring to an add-on product.
	KindAddon
)

func getItemKindStrings() map[ItemKind]string {
	return map[ItemKind]string{
		KindUnknown: "Unknown",
		KindRecipe:  "recipe",
		KindAddon:   "addon",
	}
}

func getValidItemKindStrings() map[ItemKind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[ItemKind]string{
		KindRecipe: "recipe",
		KindAddon:  "addon",
	}
}

// ItemKindFromString parses an item kind name into an ItemKind.
func ItemKindFromString(s string) (ItemKind, error) {
	for kind, name := range getValidItemKindStrings() {
		if name == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"itemKind",
		fmt.Errorf("%q is not a valid item kind", s),
	)
}

// Validate checks if the ItemKind value is valid.
func (k ItemKind) Validate() error {
	if _, ok := getValidItemKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"itemKind",
			fmt.Errorf("%d is not a valid item kind", k),
		)
	}
	return nil
}

// String returns the wire name of the item kind.
func (k ItemKind) String() string {
	if str, ok := getItemKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// LineItem is an immutable value object describing one priced line of a cart
// or an order. When an order is placed the cart lines are snapshotted into
// the order, so later cart mutation never affects a placed order.
type LineItem struct {
	// itemID identifies the catalog item the line refers to
	itemID kernel.UUID
	// kind tells whether the line is a recipe kit or an add-on
	kind ItemKind
	// name is the display name captured at snapshot time
	name string
	// unitPrice is the price per unit captured at snapshot time
	unitPrice kernel.Money
	// quantity is the number of units, always at least 1
	quantity int
	// imageRef is an opaque reference to the item's image
	imageRef string

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem.
//
// Parameters:
//   - itemID: catalog item identifier (must be a valid UUID)
//   - kind: recipe or addon
//   - name: display name (must be non-empty)
//   - unitPrice: price per unit (must be constructed Money)
//   - quantity: number of units (must be at least 1)
//   - imageRef: image reference, may be empty
func NewLineItem(
	itemID kernel.UUID,
	kind ItemKind,
	name string,
	unitPrice kernel.Money,
	quantity int,
	imageRef string,
) (LineItem, error) {
	if err := itemID.Validate(); err != nil {
		return LineItem{}, err
	}
	if err := kind.Validate(); err != nil {
		return LineItem{}, err
	}
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("name")
	}
	if err := unitPrice.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}

	return LineItem{
		itemID:    itemID,
		kind:      kind,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		imageRef:  imageRef,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ItemID returns the catalog item identifier.
func (li LineItem) ItemID() kernel.UUID {
	return li.itemID
}

// Kind returns the catalog item kind.
func (li LineItem) Kind() ItemKind {
	return li.kind
}

// Name returns the display name captured at snapshot time.
func (li LineItem) Name() string {
	return li.name
}

// UnitPrice returns the per-unit price captured at snapshot time.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Quantity returns the number of units.
func (li LineItem) Quantity() int {
	return li.quantity
}

// ImageRef returns the image reference for the item.
func (li LineItem) ImageRef() string {
	return li.imageRef
}

// WithQuantity returns a copy of the line with a different quantity.
// The quantity floor of 1 still applies.
func (li LineItem) WithQuantity(quantity int) (LineItem, error) {
	if err := li.Validate(); err != nil {
		return LineItem{}, err
	}
	return NewLineItem(li.itemID, li.kind, li.name, li.unitPrice, quantity, li.imageRef)
}

// Subtotal returns unit price multiplied by quantity.
func (li LineItem) Subtotal() (kernel.Money, error) {
	if err := li.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return li.unitPrice.MulInt(li.quantity)
}

// IsSameItem reports whether two lines refer to the same catalog item.
func (li LineItem) IsSameItem(other LineItem) bool {
	return li.itemID.IsEqual(other.itemID)
}

// Validate ensures the LineItem was created via NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}
