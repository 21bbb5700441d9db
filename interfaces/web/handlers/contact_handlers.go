package handlers

import (
	"net/http"
	"strings"

	"github.com/amar2mail9/Polytechub.com/application"
	"github.com/amar2mail9/Polytechub.com/logging"
)

// ContactHandlers serves the contact page and its form submission.
type ContactHandlers struct {
	contactService *application.ContactService
	logger         *logging.Logger
}

// NewContactHandlers creates the contact page handlers.
func NewContactHandlers(contactService *application.ContactService, logger *logging.Logger) *ContactHandlers {
	if logger == nil {
		logger = logging.Default()
	}
	return &ContactHandlers{
		contactService: contactService,
		logger:         logger.WithComponent("contact"),
	}
}

type contactPage struct {
	basePage
	Form         application.ContactForm
	Submitted    bool
	ErrorMessage string
}

// ContactPage renders the empty contact form.
func (h *ContactHandlers) ContactPage(w http.ResponseWriter, r *http.Request) {
	RenderPage(w, http.StatusOK, "contact", contactPage{
		basePage: basePage{Title: "Contact Us"},
	})
}

// SubmitContact validates the submission and relays it through the email
// delivery service. Validation and relay failures re-render the form with
// an inline message and the entered values preserved; nothing is retried
// automatically.
func (h *ContactHandlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		RenderPage(w, http.StatusBadRequest, "contact", contactPage{
			basePage:     basePage{Title: "Contact Us"},
			ErrorMessage: "Invalid form submission.",
		})
		return
	}

	form := application.ContactForm{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Subject: strings.TrimSpace(r.PostFormValue("subject")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}

	if err := h.contactService.Submit(r.Context(), form); err != nil {
		h.logger.Error("contact submission failed", "error", err)
		RenderPage(w, http.StatusOK, "contact", contactPage{
			basePage:     basePage{Title: "Contact Us"},
			Form:         form,
			ErrorMessage: "Failed to send message. Please try again.",
		})
		return
	}

	RenderPage(w, http.StatusOK, "contact", contactPage{
		basePage:  basePage{Title: "Contact Us"},
		Submitted: true,
	})
}
