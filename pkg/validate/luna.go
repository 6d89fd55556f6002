package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

const orderNumberLength = 12

func IsLuna(s string) bool {
	if s == "" {
		return false
	}
	err := goluhn.Validate(s)
	return err == nil
}

// NewOrderNumber returns a random Luhn-valid order number.
func NewOrderNumber() string {
	return goluhn.Generate(orderNumberLength)
}
