package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		title    string
		fallback string
		want     string
	}{
		{name: "Simple title", title: "Tasting", fallback: "evento", want: "tasting"},
		{name: "Spaces become dashes", title: "Cata de Vinos", fallback: "evento", want: "cata-de-vinos"},
		{name: "Accents folded", title: "Sesión de Cerámica", fallback: "evento", want: "sesion-de-ceramica"},
		{name: "Punctuation collapsed", title: "Wine & Cheese!!", fallback: "evento", want: "wine-cheese"},
		{name: "Empty falls back", title: "", fallback: "evento", want: "evento"},
		{name: "Only symbols falls back", title: "???", fallback: "promo", want: "promo"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Make(tc.title, tc.fallback))
		})
	}
}
