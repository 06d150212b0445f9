package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/matthieukhl/gearshop/internal/metrics"
	"github.com/matthieukhl/gearshop/internal/models"
	"github.com/matthieukhl/gearshop/internal/session"
	"github.com/matthieukhl/gearshop/internal/views"
)

func (s *Server) showCart(c *gin.Context) {
	userID, _ := session.UserID(c)

	items, err := s.store.CartItems(c.Request.Context(), userID)
	if err != nil {
		s.fail(c, fmt.Errorf("failed to list cart: %w", err))
		return
	}

	s.render(c, http.StatusOK, views.Cart, gin.H{
		"Title": "Cart",
		"Items": items,
		"Total": s.cartTotal(c, items),
	})
}

// cartTotal sums item prices. Prices are stored as text; one that does not
// parse is logged and left out of the total.
func (s *Server) cartTotal(c *gin.Context, items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			s.logger(c).WithError(err).WithField("cart_item_id", it.ID).Warn("unparseable cart price")
			continue
		}
		total = total.Add(price)
	}
	return total
}

func (s *Server) clearCart(c *gin.Context) {
	userID, _ := session.UserID(c)

	n, err := s.store.ClearCart(c.Request.Context(), userID)
	if err != nil {
		s.fail(c, err)
		return
	}

	metrics.Record(metrics.EventCartClear)
	s.logger(c).WithField("removed", n).Debug("cart cleared")

	session.Get(c).AddFlash(session.Success, "Cart cleared!")
	s.redirect(c, "/")
}
