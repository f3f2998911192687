// Package templates provides email template layout
package templates

import (
	"bytes"
	"html/template"
	"log"
)

type EmailLayoutProps struct {
	Preheader  string
	Content    string
	FooterText string
}

// Internal template data structure with safe HTML typing
type emailTemplateData struct {
	Preheader  string
	Content    template.HTML // Mark as safe HTML to prevent escaping
	FooterText string
}

// emailLayoutTemplate is the compiled template for email layout
var emailLayoutTemplate = template.Must(template.New("emailLayout").Parse(`
<!doctype html>
<html lang="en">
  <head>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8">
    <title>Email from PageMint</title>
    <style media="all" type="text/css">
      @media only screen and (max-width: 640px) {
        .main p, .main td, .main span { font-size: 16px !important; }
        .wrapper { padding: 8px !important; }
        .container { padding: 0 !important; padding-top: 8px !important; width: 100% !important; }
      }
      body { font-family: Helvetica, sans-serif; background-color: #f4f5f6; margin: 0; padding: 0; }
      .container { margin: 0 auto !important; max-width: 600px; padding: 24px; width: 600px; }
      .main { background: #ffffff; border: 1px solid #eaebed; border-radius: 16px; width: 100%; }
      .wrapper { box-sizing: border-box; padding: 24px; }
      .footer { clear: both; padding-top: 24px; text-align: center; width: 100%; color: #9a9ea6; font-size: 14px; }
    </style>
  </head>
  <body>
    {{if .Preheader}}<span style="display:none;visibility:hidden;">{{.Preheader}}</span>{{end}}
    <div class="container">
      <div class="main">
        <div class="wrapper">{{.Content}}</div>
      </div>
      <div class="footer">{{.FooterText}}</div>
    </div>
  </body>
</html>`))

// GetEmailLayout wraps content in the standard email chrome.
func GetEmailLayout(props EmailLayoutProps) string {
	if props.FooterText == "" {
		props.FooterText = "Sent by PageMint"
	}

	data := emailTemplateData{
		Preheader:  props.Preheader,
		Content:    template.HTML(props.Content),
		FooterText: props.FooterText,
	}

	var buf bytes.Buffer
	if err := emailLayoutTemplate.Execute(&buf, data); err != nil {
		log.Printf("ERROR: failed to execute email layout template: %v", err)
		return props.Content
	}
	return buf.String()
}
