// Package qr produces registration-link QR codes for workshops. It is a pure
// function of workshop data and never touches the ledger.
package qr

import (
	"encoding/json"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/mrpavithran/WorkShop/internal/domain"
)

// Payload is the document encoded into the QR image.
type Payload struct {
	Title string  `json:"title"`
	Date  string  `json:"date"`
	Price float64 `json:"price"`
	URL   string  `json:"url"`
}

// RegistrationURL builds the public registration link for a workshop.
func RegistrationURL(origin string, workshopID int64) string {
	return fmt.Sprintf("%s/workshop/%d/register", origin, workshopID)
}

// BuildPayload assembles the encoded payload for a workshop.
func BuildPayload(w domain.Workshop, origin string) Payload {
	return Payload{
		Title: w.Title,
		Date:  w.Date.Format("2006-01-02"),
		Price: w.Price,
		URL:   RegistrationURL(origin, w.ID),
	}
}

// EncodePNG renders the workshop's registration payload as a 256x256 PNG.
func EncodePNG(w domain.Workshop, origin string) ([]byte, error) {
	payload, err := json.Marshal(BuildPayload(w, origin))
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(string(payload), qrcode.Medium, 256)
}
