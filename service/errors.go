package service

import "errors"

// Failure kinds for sale creation. Detail text is attached at the
// point of failure with fmt.Errorf("%w: ..."); controllers match the
// kind with errors.Is and render the message.
var (
	ErrInvalidRequest     = errors.New("invalid sale request")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrEmptySale          = errors.New("sale has no items")
	ErrPersistence        = errors.New("sale could not be saved")
)

var saleErrorKinds = []error{
	ErrInvalidRequest,
	ErrProductUnavailable,
	ErrInsufficientStock,
	ErrCustomerNotFound,
	ErrEmptySale,
}

// IsSaleError reports whether err carries one of the validation kinds
// above, as opposed to an infrastructure failure.
func IsSaleError(err error) bool {
	for _, kind := range saleErrorKinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
