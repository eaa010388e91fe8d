package ui

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// handleNotes renders the engineering notes page from the embedded NOTES.md.
func (s *Server) handleNotes(c *gin.Context) {
	source, err := s.embeddedFiles.ReadFile("NOTES.md")
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	rendered := markdown.ToHTML(source, p, renderer)

	s.renderTemplate(c, "notes.html", gin.H{
		"Content": template.HTML(rendered),
	})
}
