// Package templates renders the HTML bodies for outgoing mail. Kept small
// on purpose: the engine only ever sends verification codes.
package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// TwoFaCode is the registry name of the verification-code template. Its
// data keys are Code, AttemptID and ExpiresIn.
const TwoFaCode = "twofa_code"

var twoFaCode = template.Must(template.New(TwoFaCode).Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif;">
    <p>Your verification code:</p>
    <p style="font-size: 28px; letter-spacing: 4px;"><strong>{{.Code}}</strong></p>
    <p>Attempt id: <code>{{.AttemptID}}</code></p>
    <p>The code expires in {{.ExpiresIn}} and can be used once. If you did not request it, you can ignore this message.</p>
  </body>
</html>`))

var registry = map[string]*template.Template{
	TwoFaCode: twoFaCode,
}

// RenderHTML renders the named template with the given data.
func RenderHTML(name string, data map[string]any) (string, error) {
	tpl, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
