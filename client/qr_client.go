package client

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/rs/zerolog"
)

// QRClient decodes QR codes embedded in uploaded images so their payload can
// supplement the OCR output.
type QRClient struct {
	log zerolog.Logger
}

func NewQRClient(log zerolog.Logger) *QRClient {
	return &QRClient{log: log}
}

// DecodeFile decodes a QR code from the image at path and returns its text
// payload. A missing or undecodable QR code is an error; callers treat it as
// "nothing found".
func (q *QRClient) DecodeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decode QR code: %w", err)
	}

	text := result.GetText()
	q.log.Debug().Int("bytes", len(text)).Msg("QR code decoded")
	return text, nil
}
