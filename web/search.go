package web

import (
	"bytes"
	"html/template"
	"net/http"

	"blog/models"

	"github.com/gin-gonic/gin"
)

// The search endpoint returns a rendered HTML fragment wrapped in JSON so
// the page script can drop it straight into the DOM.
var searchFragment = template.Must(template.New("search_results").Parse(
	`<ul class="search-results">
{{- range . }}
<li><a href="/posts/{{ .ID }}/">{{ .Text }}</a> <span class="author">{{ .Author.Username }}</span></li>
{{- end }}
</ul>`))

func Search(c *gin.Context) {
	data, exists := c.GetQuery("data")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'data' parameter"})
		return
	}
	posts, err := models.SearchPosts(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	var buf bytes.Buffer
	if err := searchFragment.Execute(&buf, posts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": buf.String()})
}
