package http

import (
	"net/http"

	domcontact "example.com/cosmatic-storefront/app/internal/domain/contact"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (a *API) handleContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondValidationError(w, err)
		return
	}

	l := getLocale(r.Context())
	err := a.contactSvc.Submit(r.Context(), domcontact.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
		Locale:  l,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{
		"status":  "sent",
		"message": a.translator.Lookup(l, "contact.sent"),
	})
}
