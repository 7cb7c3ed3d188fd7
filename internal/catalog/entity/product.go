package entity

// Product is a catalog item. Locked products cannot be deleted.
type Product struct {
	ID        int64
	Name      string
	Price     int64
	Locked    bool
	CreatedAt int64
}
