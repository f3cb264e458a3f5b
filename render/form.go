package render

import (
	"html/template"
	"strings"
)

// FormAction is the submit endpoint baked into the rendered form.
const FormAction = "/subscribe"

type formData struct {
	Title       string
	Description template.HTML
	ButtonText  string
	Token       string
	Action      string
}

// SubscriptionForm renders the email subscription form with the supplied
// anti-forgery token embedded. It is a pure function of settings and token;
// callers mint a fresh token per render.
func SubscriptionForm(s FormSettings, token string) (string, error) {
	data := formData{
		Title: s.Title,
		// Sanitized upstream by the settings store.
		Description: template.HTML(s.Description),
		ButtonText:  s.ButtonText,
		Token:       token,
		Action:      FormAction,
	}

	buf := new(strings.Builder)
	if err := formTemplate.Execute(buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
