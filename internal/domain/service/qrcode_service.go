package service

// QRCodeService defines the interface for QR code label generation
type QRCodeService interface {
	// GenerateProductLabel renders a PNG QR code identifying a product
	GenerateProductLabel(productID int64, code string) ([]byte, error)
}
