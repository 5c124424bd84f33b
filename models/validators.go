package models

import (
	"fmt"

	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/utils"
	"github.com/shopspring/decimal"
)

// scale of every decimal(20,4) column
const decimalPlaces = 4

// validateScale checks named values in order and reports the first that would be rounded.
func validateScale(fields []string, values []decimal.Decimal) error {
	for i, field := range fields {
		if err := utils.ValidateDecimalPlaces(field, values[i], decimalPlaces); err != nil {
			return err
		}
	}
	return nil
}

// validateLineScale checks quantity and unit price of each line; priceField is the
// json name of the unit price on the item.
func validateLineScale(lines []txLine, priceField string) error {
	for i, l := range lines {
		err := validateScale(
			[]string{fmt.Sprintf("items[%d].quantity", i), fmt.Sprintf("items[%d].%s", i, priceField)},
			[]decimal.Decimal{l.Quantity, l.UnitPrice},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// length is checked by the validate tags; this adds the optional
// libphonenumber check for the configured region
func validateContactNumber(contactNumber string) error {
	if !config.StrictPhoneValidation() {
		return nil
	}
	if err := utils.ValidatePhoneNumber(contactNumber, config.PhoneRegion()); err != nil {
		return utils.NewValidationError("contact_number is not a valid phone number")
	}
	return nil
}
