// Package render produces downloadable artifacts from materialized
// resumes. The real PDF pipeline lives outside this service; the HTML
// renderer is the in-process implementation of the same boundary.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/resumebuilderpro/resume-api/internal/core/domain"
)

const resumeTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Payload.Personal.FirstName}} {{.Payload.Personal.LastName}}</h1>
<p>{{.Payload.Personal.Email}} &middot; {{.Payload.Personal.Phone}}</p>
{{with .Payload.Personal.Summary}}<p>{{.}}</p>{{end}}
{{if .Payload.Experience}}<h2>Experience</h2>
{{range .Payload.Experience}}<section>
<h3>{{.Position}} &mdash; {{.Company}}</h3>
<p>{{.StartDate}} &ndash; {{if .Current}}Present{{else}}{{.EndDate}}{{end}}{{with .Location}} &middot; {{.}}{{end}}</p>
<p>{{.Description}}</p>
</section>{{end}}{{end}}
{{if .Payload.Education}}<h2>Education</h2>
{{range .Payload.Education}}<section>
<h3>{{.Degree}}, {{.FieldOfStudy}} &mdash; {{.Institution}}</h3>
<p>{{.StartDate}} &ndash; {{.EndDate}}{{with .GPA}} &middot; GPA {{.}}{{end}}</p>
</section>{{end}}{{end}}
{{if or .Payload.Skills.Technical .Payload.Skills.Soft}}<h2>Skills</h2>
<ul>{{range .Payload.Skills.Technical}}<li>{{.}}</li>{{end}}{{range .Payload.Skills.Soft}}<li>{{.}}</li>{{end}}</ul>{{end}}
</body>
</html>
`

// HTMLRenderer implements ports.Renderer with a static HTML template.
type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{tmpl: template.Must(template.New("resume").Parse(resumeTemplate))}
}

func (r *HTMLRenderer) Render(resume *domain.Resume) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, resume); err != nil {
		return nil, fmt.Errorf("render resume: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *HTMLRenderer) FileExtension() string { return ".html" }
