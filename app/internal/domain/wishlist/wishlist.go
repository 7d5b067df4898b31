package wishlist

// SlotKey is the storage slot holding a session's wishlist snapshot.
const SlotKey = "wishlist"

// Wishlist is an ordered set of product ids.
type Wishlist struct {
	ProductIDs []string `json:"productIds"`
}
