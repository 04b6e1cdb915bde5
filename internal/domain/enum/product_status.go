package enum

// ProductStatus represents the publication state of a product
type ProductStatus string

const (
	ProductStatusDraft      ProductStatus = "DRAFT"
	ProductStatusActive     ProductStatus = "ACTIVE"
	ProductStatusInactive   ProductStatus = "INACTIVE"
	ProductStatusOutOfStock ProductStatus = "OUT_OF_STOCK"
)

func (s ProductStatus) String() string {
	return string(s)
}

// IsValid reports whether s is a known status
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusDraft, ProductStatusActive, ProductStatusInactive, ProductStatusOutOfStock:
		return true
	}
	return false
}
