package qrcode

import (
	"encoding/json"

	"shop/config"
	"shop/internal/domain/service"
	"shop/internal/errors"

	"github.com/skip2/go-qrcode"
)

const labelType = "product"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// LabelData is the JSON payload encoded in a product label
type LabelData struct {
	Type      string `json:"type"`
	ProductID int64  `json:"productId"`
	Code      string `json:"code,omitempty"`
}

// NewQRCodeService builds the service from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := 0, ""
	if cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}

	return newQRCodeService(size, level)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateProductLabel renders {type, productId, code} as a PNG
func (s *qrcodeService) GenerateProductLabel(productID int64, code string) ([]byte, error) {
	payload, err := json.Marshal(LabelData{Type: labelType, ProductID: productID, Code: code})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal label data")
	}

	qrCode, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}

// ParseProductLabel decodes a scanned label payload
func ParseProductLabel(raw string) (*LabelData, error) {
	var data LabelData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal label data")
	}
	if data.Type != labelType {
		return nil, errors.Errorf("invalid label type: %s", data.Type)
	}
	if data.ProductID <= 0 {
		return nil, errors.New("label has no product id")
	}

	return &data, nil
}
