package views

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl := Templates()
	for _, name := range []string{Home, Register, Login, CatalogList, CatalogEntry, Cart, Buy, Confirmation, Error} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestHeaderShowsFlashesAndCount(t *testing.T) {
	var buf bytes.Buffer
	err := Templates().ExecuteTemplate(&buf, Home, map[string]any{
		"CartCount": 3,
		"LoggedIn":  true,
		"Flashes":   []map[string]string{{"Category": "success", "Message": "Added to cart!"}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Cart (3)")
	assert.Contains(t, out, `class="flash flash-success"`)
	assert.Contains(t, out, "Added to cart!")
	assert.Contains(t, out, "/logout")
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$409.00", Money(decimal.RequireFromString("409")))
	assert.Equal(t, "$0.50", Money(decimal.NewFromFloat(0.5)))
}
