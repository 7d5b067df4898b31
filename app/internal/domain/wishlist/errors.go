package wishlist

import "errors"

var ErrNotInWishlist = errors.New("item not in wishlist")
