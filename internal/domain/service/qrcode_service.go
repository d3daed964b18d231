package service

import "restomap/internal/domain/entity"

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateMapLinkQR renders the restaurant's map link as a PNG QR code
	GenerateMapLinkQR(restaurant *entity.Restaurant) ([]byte, error)
}
