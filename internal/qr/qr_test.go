package qr

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mrpavithran/WorkShop/internal/domain"
)

func TestRegistrationURL(t *testing.T) {
	require.Equal(t,
		"https://workshops.example.com/workshop/7/register",
		RegistrationURL("https://workshops.example.com", 7))
}

func TestBuildPayload(t *testing.T) {
	w := domain.Workshop{
		ID:    3,
		Title: "Intro to X",
		Date:  time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Price: 100,
	}

	payload := BuildPayload(w, "http://localhost:8080")
	require.Equal(t, "Intro to X", payload.Title)
	require.Equal(t, "2030-01-01", payload.Date)
	require.Equal(t, float64(100), payload.Price)
	require.Equal(t, "http://localhost:8080/workshop/3/register", payload.URL)
}

func TestEncodePNGProducesDecodableImage(t *testing.T) {
	w := domain.Workshop{
		ID:    1,
		Title: "Intro to X",
		Date:  time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Price: 100,
	}

	data, err := EncodePNG(w, "http://localhost:8080")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 256, img.Bounds().Dx())
	require.Equal(t, 256, img.Bounds().Dy())
}
