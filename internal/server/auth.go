package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/gearshop/internal/forms"
	"github.com/matthieukhl/gearshop/internal/metrics"
	"github.com/matthieukhl/gearshop/internal/models"
	"github.com/matthieukhl/gearshop/internal/session"
	"github.com/matthieukhl/gearshop/internal/store"
	"github.com/matthieukhl/gearshop/internal/views"
)

func (s *Server) showRegister(c *gin.Context) {
	s.render(c, http.StatusOK, views.Register, gin.H{"Title": "Register", "Form": forms.RegisterForm{}})
}

func (s *Server) register(c *gin.Context) {
	ctx := c.Request.Context()

	var form forms.RegisterForm
	errs := forms.Bind(c, &form)
	if err := form.CheckAvailability(ctx, s.store, errs); err != nil {
		s.fail(c, err)
		return
	}
	if errs.Any() {
		s.render(c, http.StatusOK, views.Register, gin.H{"Title": "Register", "Form": form, "Errors": errs})
		return
	}

	user, err := models.NewUser(form.Username, form.Email, form.Password)
	if err != nil {
		s.fail(c, fmt.Errorf("failed to build user: %w", err))
		return
	}
	// A duplicate here means another registration won the race past
	// CheckAvailability; the unique keys reject it.
	if err := s.store.CreateUser(ctx, user); err != nil {
		s.fail(c, err)
		return
	}

	metrics.Record(metrics.EventRegistration)
	s.logger(c).WithField("user_id", user.ID).Info("user registered")

	session.Get(c).AddFlash(session.Success, "You have successfully registered!")
	s.redirect(c, "/login")
}

func (s *Server) showLogin(c *gin.Context) {
	s.render(c, http.StatusOK, views.Login, gin.H{"Title": "Log in", "Form": forms.LoginForm{}})
}

func (s *Server) login(c *gin.Context) {
	var form forms.LoginForm
	if errs := forms.Bind(c, &form); errs.Any() {
		s.render(c, http.StatusOK, views.Login, gin.H{"Title": "Log in", "Form": form, "Errors": errs})
		return
	}

	user, err := s.store.UserByUsername(c.Request.Context(), form.Username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		s.fail(c, fmt.Errorf("failed to load user: %w", err))
		return
	}

	sess := session.Get(c)
	if user == nil || !user.CheckPassword(form.Password) {
		metrics.Record(metrics.EventLoginFailed)
		sess.AddFlash(session.Danger, "Invalid username or password")
		s.render(c, http.StatusOK, views.Login, gin.H{"Title": "Log in", "Form": forms.LoginForm{Username: form.Username}})
		return
	}

	sess.Login(user.ID)
	metrics.Record(metrics.EventLogin)
	sess.AddFlash(session.Success, "Logged in successfully!")
	s.redirect(c, "/")
}

func (s *Server) logout(c *gin.Context) {
	sess := session.Get(c)
	if sess.Authenticated() {
		metrics.Record(metrics.EventLogout)
	}
	sess.Logout()
	sess.AddFlash(session.Info, "You have been logged out.")
	s.redirect(c, "/")
}
