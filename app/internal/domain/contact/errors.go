package contact

import "errors"

var ErrDeliveryFailed = errors.New("contact message could not be delivered")
