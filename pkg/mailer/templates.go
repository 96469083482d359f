package mailer

import (
	"bytes"
	"fmt"
	htmpl "html/template"
	texttpl "text/template"
)

// Minimal transactional templates. Data keys: AppName, Name, Email.
var templates = map[string]struct {
	subject string
	text    string
	html    string
}{
	TemplateWelcome: {
		subject: "Welcome to {{.AppName}}",
		text:    "Hi {{.Name}},\n\nYour {{.AppName}} account ({{.Email}}) is ready. Log in to browse stores and leave ratings.\n",
		html:    "<p>Hi {{.Name}},</p><p>Your {{.AppName}} account (<b>{{.Email}}</b>) is ready. Log in to browse stores and leave ratings.</p>",
	},
	TemplatePasswordChanged: {
		subject: "Your {{.AppName}} password was changed",
		text:    "Hi {{.Name}},\n\nThe password for {{.Email}} was just changed. If this wasn't you, contact support immediately.\n",
		html:    "<p>Hi {{.Name}},</p><p>The password for <b>{{.Email}}</b> was just changed. If this wasn't you, contact support immediately.</p>",
	},
}

// Render produces subject, text and html bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	t, ok := templates[name]
	if !ok {
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
	if subject, err = renderText(name+".subject", t.subject, data); err != nil {
		return "", "", "", err
	}
	if text, err = renderText(name+".text", t.text, data); err != nil {
		return "", "", "", err
	}
	if html, err = renderHTML(name+".html", t.html, data); err != nil {
		return "", "", "", err
	}
	return subject, text, html, nil
}

func renderText(name, src string, data any) (string, error) {
	tpl, err := texttpl.New(name).Parse(src)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("exec %q: %w", name, err)
	}
	return buf.String(), nil
}

func renderHTML(name, src string, data any) (string, error) {
	tpl, err := htmpl.New(name).Parse(src)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("exec %q: %w", name, err)
	}
	return buf.String(), nil
}
