package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/gearshop/internal/catalog"
	"github.com/matthieukhl/gearshop/internal/metrics"
	"github.com/matthieukhl/gearshop/internal/models"
	"github.com/matthieukhl/gearshop/internal/session"
	"github.com/matthieukhl/gearshop/internal/views"
)

func (s *Server) listCatalog(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.render(c, http.StatusOK, views.CatalogList, gin.H{
			"Title":   cat.Title,
			"Catalog": cat,
			"Entries": cat.Entries(),
		})
	}
}

// lookupEntry resolves the :id parameter. Unknown or malformed ids send the
// visitor back to the listing with a flash.
func (s *Server) lookupEntry(c *gin.Context, cat *catalog.Catalog) (catalog.Entry, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err == nil {
		if entry, ok := cat.Lookup(id); ok {
			return entry, true
		}
	}

	session.Get(c).AddFlash(session.Danger, cat.Noun+" not found.")
	s.redirect(c, cat.Path())
	return catalog.Entry{}, false
}

func (s *Server) showEntry(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry, ok := s.lookupEntry(c, cat)
		if !ok {
			return
		}
		s.render(c, http.StatusOK, views.CatalogEntry, gin.H{
			"Title":   entry.Name,
			"Catalog": cat,
			"Entry":   entry,
		})
	}
}

func (s *Server) addToCart(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry, ok := s.lookupEntry(c, cat)
		if !ok {
			return
		}

		userID, ok := session.UserID(c)
		if !ok {
			session.Get(c).AddFlash(session.Info, "You need to log in to add items to your cart.")
			s.redirect(c, "/login")
			return
		}

		item, err := models.NewCartItem(userID, entry.Name, entry.Price)
		if err != nil {
			s.fail(c, fmt.Errorf("failed to build cart item: %w", err))
			return
		}
		if err := s.store.AddCartItem(c.Request.Context(), item); err != nil {
			s.fail(c, err)
			return
		}

		metrics.Record(metrics.EventCartAdd)
		session.Get(c).AddFlash(session.Success, "Added to cart!")
		s.redirect(c, "/cart")
	}
}
