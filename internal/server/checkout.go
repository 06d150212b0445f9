package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/matthieukhl/gearshop/internal/events"
	"github.com/matthieukhl/gearshop/internal/forms"
	"github.com/matthieukhl/gearshop/internal/metrics"
	"github.com/matthieukhl/gearshop/internal/models"
	"github.com/matthieukhl/gearshop/internal/session"
	"github.com/matthieukhl/gearshop/internal/views"
)

func (s *Server) showBuy(c *gin.Context) {
	s.render(c, http.StatusOK, views.Buy, gin.H{"Title": "Checkout", "Form": forms.BuyForm{}})
}

func (s *Server) buy(c *gin.Context) {
	userID, _ := session.UserID(c)

	var form forms.BuyForm
	if errs := forms.Bind(c, &form); errs.Any() {
		s.render(c, http.StatusOK, views.Buy, gin.H{"Title": "Checkout", "Form": form, "Errors": errs})
		return
	}

	purchase, err := models.NewPurchase(userID, form.IDNumber, form.PhoneNumber, form.Email, form.Address)
	if err != nil {
		s.fail(c, fmt.Errorf("failed to build purchase: %w", err))
		return
	}

	ctx := c.Request.Context()
	cleared, err := s.store.Checkout(ctx, purchase)
	if err != nil {
		s.fail(c, fmt.Errorf("checkout failed: %w", err))
		return
	}

	entry := s.logger(c).WithFields(logrus.Fields{
		"user_id":     userID,
		"purchase_id": purchase.ID,
	})
	// Best effort: the purchase is already committed.
	if err := s.publisher.PublishPurchase(ctx, events.NewPurchaseEvent(purchase, cleared, time.Now())); err != nil {
		entry.WithError(err).Warn("failed to publish purchase event")
	}
	metrics.Record(metrics.EventCheckout)
	entry.Info("purchase completed")

	c.Set(cartCountKey, 0)
	session.Get(c).AddFlash(session.Success, "Purchase successful!")
	s.render(c, http.StatusOK, views.Confirmation, gin.H{"Title": "Thank you", "Purchase": purchase})
}
