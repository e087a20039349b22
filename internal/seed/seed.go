// Package seed supplies cart contents to the receipt command, either from a
// YAML file or from the built-in sample cart.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/angelmondragon/cart-receipt/pkg/enums"
	pkgerrors "github.com/angelmondragon/cart-receipt/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// SampleSource labels the built-in sample cart in logs.
const SampleSource = "sample"

// Entry is one requested cart line. Values are passed to the cart unvalidated.
type Entry struct {
	Title     string             `yaml:"title"`
	UnitPrice decimal.Decimal    `yaml:"unit_price"`
	Quantity  int                `yaml:"quantity"`
	Category  enums.ItemCategory `yaml:"category"`
}

type document struct {
	Items []Entry `yaml:"items"`
}

// Adder is the part of a cart that Apply needs.
type Adder interface {
	AddItem(title string, unitPrice decimal.Decimal, quantity int, category enums.ItemCategory) error
}

// Sample returns the demo cart printed when no seed file is configured.
func Sample() []Entry {
	return []Entry{
		{Title: "Apple", UnitPrice: decimal.RequireFromString("0.99"), Quantity: 5, Category: enums.ItemCategoryNew},
		{Title: "Banana", UnitPrice: decimal.RequireFromString("20.00"), Quantity: 4, Category: enums.ItemCategorySecondFree},
		{Title: "A long piece of toilet paper", UnitPrice: decimal.RequireFromString("17.20"), Quantity: 1, Category: enums.ItemCategorySale},
		{Title: "Nails", UnitPrice: decimal.RequireFromString("2.00"), Quantity: 500, Category: enums.ItemCategoryRegular},
	}
}

// Load decodes a seed document of the form
//
//	items:
//	  - title: Apple
//	    unit_price: 0.99
//	    quantity: 5
//	    category: new
//
// Unknown keys are rejected.
func Load(r io.Reader) ([]Entry, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid seed document")
	}
	return doc.Items, nil
}

// LoadFile reads a seed document from path.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "seed file not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "open seed file")
	}
	defer f.Close()

	return Load(f)
}

// Apply adds every entry to the cart in order. Rejected entries are skipped
// and their errors combined; accepted entries stay in the cart.
func Apply(cart Adder, entries []Entry) error {
	var errs error
	for i, entry := range entries {
		if err := cart.AddItem(entry.Title, entry.UnitPrice, entry.Quantity, entry.Category); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("item %d (%q): %w", i+1, entry.Title, err))
		}
	}
	return errs
}

// Errors splits an error returned by Apply into one error per rejected entry.
func Errors(err error) []error {
	return multierr.Errors(err)
}
