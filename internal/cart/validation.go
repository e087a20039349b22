package cart

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/angelmondragon/cart-receipt/pkg/enums"
	pkgerrors "github.com/angelmondragon/cart-receipt/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type itemInput struct {
	Title     string             `json:"title" validate:"required,max=32"`
	UnitPrice decimal.Decimal    `json:"unit_price" validate:"money_gte=0.01"`
	Quantity  int                `json:"quantity" validate:"gte=1"`
	Category  enums.ItemCategory `json:"category" validate:"item_category"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	// decimals are validated through their exact string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	mustRegister(v, "money_gte", func(fl validator.FieldLevel) bool {
		value, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		limit, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return value.GreaterThanOrEqual(limit)
	})
	mustRegister(v, "item_category", func(fl validator.FieldLevel) bool {
		return enums.ItemCategory(fl.Field().String()).IsValid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// validateItem returns nil or a CodeValidation error whose details map each
// offending field to a message.
func validateItem(input itemInput) *pkgerrors.Error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item")
	}
	details := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		details[fieldErr.Field()] = validationMessage(fieldErr)
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid item").WithDetails(details)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte", "money_gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "item_category":
		return fmt.Sprintf("must be one of %s, %s, %s, %s",
			enums.ItemCategoryNew, enums.ItemCategoryRegular, enums.ItemCategorySecondFree, enums.ItemCategorySale)
	}
	return "is invalid"
}
