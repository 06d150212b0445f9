package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/matthieukhl/gearshop/internal/forms"
	"github.com/matthieukhl/gearshop/internal/session"
	"github.com/matthieukhl/gearshop/internal/views"
)

const (
	loggerKey    = "gearshop.logger"
	cartCountKey = "cart_count"
)

// requestLogger tags the request with an id and logs one line when it ends.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		entry := s.log.WithField("request_id", requestID)
		c.Set(loggerKey, entry)

		c.Next()

		fields := logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		}
		if userID, ok := c.Get(session.UserIDKey); ok {
			fields["user_id"] = userID
		}
		entry = entry.WithFields(fields)

		switch {
		case len(c.Errors) > 0:
			entry.WithField("errors", c.Errors.String()).Error("request failed")
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("request failed")
		default:
			entry.Info("request")
		}
	}
}

func (s *Server) logger(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get(loggerKey); ok {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(s.log)
}

// cartCount exposes the number of items in the session user's cart to every
// page. Anonymous visitors get zero without a query. A session whose user no
// longer exists is logged out and treated as anonymous.
func (s *Server) cartCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		count := 0
		if userID, ok := session.UserID(c); ok {
			n, found, err := s.store.CartSummary(c.Request.Context(), userID)
			if err != nil {
				s.fail(c, fmt.Errorf("failed to count cart items: %w", err))
				return
			}
			if found {
				count = n
			} else {
				s.logger(c).WithField("user_id", userID).Warn("session user no longer exists")
				session.Get(c).Logout()
			}
		}
		c.Set(cartCountKey, count)
		c.Next()
	}
}

// requireUser sends anonymous visitors to the login page with message.
func (s *Server) requireUser(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.UserID(c); !ok {
			session.Get(c).AddFlash(session.Info, message)
			s.redirect(c, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// render writes a page with the data every view expects: pending flashes,
// login state and cart count.
func (s *Server) render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	sess := session.Get(c)
	data["Flashes"] = sess.PopFlashes()
	data["LoggedIn"] = sess.Authenticated()
	data["CartCount"] = c.GetInt(cartCountKey)
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = forms.Errors{}
	}

	if err := s.sessions.Save(c); err != nil {
		s.logger(c).WithError(err).Error("failed to save session")
	}
	c.HTML(status, page, data)
}

func (s *Server) redirect(c *gin.Context, location string) {
	if err := s.sessions.Save(c); err != nil {
		s.logger(c).WithError(err).Error("failed to save session")
	}
	c.Redirect(http.StatusFound, location)
}

// fail answers with a 500 page for errors the visitor cannot fix.
func (s *Server) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
	s.render(c, http.StatusInternalServerError, views.Error, gin.H{
		"Title":   "Error",
		"Message": "An unexpected error occurred. Please try again later.",
	})
}
