package scaffold

import (
	"bytes"
	"fmt"
	"text/template"
)

const readmeTemplate = `# {{.Name}}

RTI DDS node targeting {{.Target}}.

- src/     node sources
- include/ headers
- config/  node configs and params
- launch/  launch files
`

const cmakeTemplate = `cmake_minimum_required(VERSION 3.16)
project({{.Name}} LANGUAGES CXX)

# TODO: add node sources under src/ and headers under include/
`

// TemplateRenderer renders minimal starter contents for scaffold files
// using text/template.
type TemplateRenderer struct {
	templates map[Kind]*template.Template
}

// NewTemplateRenderer creates a TemplateRenderer with the built-in templates.
func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		templates: map[Kind]*template.Template{
			KindReadme: template.Must(template.New(string(KindReadme)).Parse(readmeTemplate)),
			KindCMake:  template.Must(template.New(string(KindCMake)).Parse(cmakeTemplate)),
		},
	}
}

// Render returns the rendered contents for the given kind.
func (r *TemplateRenderer) Render(kind Kind, ctx Context) ([]byte, error) {
	tmpl, ok := r.templates[kind]
	if !ok {
		return nil, fmt.Errorf("no template for %q", kind)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("failed to render %q: %w", kind, err)
	}

	return buf.Bytes(), nil
}
