package certificate

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mrpavithran/WorkShop/internal/domain"
)

func TestRenderProducesCertificatePNG(t *testing.T) {
	w := domain.Workshop{
		Title: "Intro to X",
		Date:  time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	data, err := Render(w, "Jamie Tester")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 800, img.Bounds().Dx())
	require.Equal(t, 600, img.Bounds().Dy())
}
