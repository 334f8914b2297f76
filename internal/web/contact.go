package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/mail"
)

type contactForm struct {
	Name    string `form:"fullName" binding:"required,max=120"`
	Email   string `form:"email" binding:"required,email,max=254"`
	Message string `form:"message" binding:"required,max=5000"`
}

// HTMX contact form, returns just the form HTML.
func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form", gin.H{"title": "Contact Me"})
}

// Contact submissions are stored first so nothing is lost when the mail
// relay is down; the admin dashboard lists unsent messages.
func (s *Server) handleContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusUnprocessableEntity, "contact-error", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
		return
	}

	ctx := c.Request.Context()
	id, err := s.store.SaveMessage(ctx, form.Name, form.Email, form.Message, s.clock.Now())
	if err != nil {
		s.logger.Error("saving contact message", zap.Error(err))
		c.HTML(http.StatusOK, "contact-error", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	err = s.mailer.Send(ctx, mail.Contact{Name: form.Name, Email: form.Email, Message: form.Message})
	switch {
	case errors.Is(err, mail.ErrNotConfigured):
		s.logger.Warn("contact message stored without email", zap.Int64("message_id", id))
	case err != nil:
		s.logger.Error("emailing contact message", zap.Int64("message_id", id), zap.Error(err))
	default:
		if err := s.store.MarkMessageSent(ctx, id); err != nil {
			s.logger.Warn("marking message sent", zap.Int64("message_id", id), zap.Error(err))
		}
	}

	c.HTML(http.StatusOK, "contact-success", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
