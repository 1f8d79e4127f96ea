package entity

import (
	"encoding/json"

	domainerrors "shop/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// DetailsCategory is the discriminator stored in the details payload.
type DetailsCategory string

const (
	DetailsComputers DetailsCategory = "Computers"
)

// ProductDetails is the category-specific part of a product.
// Each variant validates its own shape.
type ProductDetails interface {
	DetailsCategory() DetailsCategory
	Validate() error
}

var detailsValidator = validator.New(validator.WithRequiredStructEnabled())

// ComputerDetails describes products in the Computers category.
type ComputerDetails struct {
	Category     DetailsCategory `json:"category" validate:"required,eq=Computers"`
	Capacity     float64         `json:"capacity" validate:"gt=0"`
	CapacityUnit string          `json:"capacityUnit" validate:"required,oneof=GB TB"`
	CapacityType string          `json:"capacityType" validate:"required,oneof=SSD HD"`
	Brand        string          `json:"brand" validate:"required"`
	Series       string          `json:"series" validate:"required"`
}

func (d *ComputerDetails) DetailsCategory() DetailsCategory {
	return DetailsComputers
}

func (d *ComputerDetails) Validate() error {
	if err := detailsValidator.Struct(d); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// DecodeProductDetails selects the variant named by the "category" field and
// validates it. Unknown or missing categories are rejected.
func DecodeProductDetails(raw []byte) (ProductDetails, error) {
	var envelope struct {
		Category DetailsCategory `json:"category"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &envelope) != nil {
		return nil, domainerrors.ErrInvalidDetailsCategory
	}

	var details ProductDetails
	switch envelope.Category {
	case DetailsComputers:
		computer := &ComputerDetails{}
		if err := json.Unmarshal(raw, computer); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
		details = computer
	default:
		return nil, domainerrors.ErrInvalidDetailsCategory
	}

	if err := details.Validate(); err != nil {
		return nil, err
	}

	return details, nil
}
