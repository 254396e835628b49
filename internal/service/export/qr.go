package export

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

// FingerQR encodes an employee's finger id as a PNG QR code. The fingerprint
// reader station scans this card to preselect the employee.
func FingerQR(fingerID string) ([]byte, error) {
	if fingerID == "" {
		return nil, fmt.Errorf("employee has no finger id")
	}

	png, err := qrcode.Encode(fingerID, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode finger qr: %w", err)
	}
	return png, nil
}
