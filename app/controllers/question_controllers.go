package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/app/content"
	"github.com/shashiranjanraj/storefront/app/views"
	"github.com/shashiranjanraj/storefront/pkg/router"
)

type QuestionController struct{}

func NewQuestionController() *QuestionController {
	return &QuestionController{}
}

func (c *QuestionController) Index(w http.ResponseWriter, _ *http.Request) {
	views.Render(w, http.StatusOK, "questions.tmpl", struct {
		Title    string
		Sections []content.Section
	}{"Questions and Answers", content.Sections()})
}

// Show renders one Q&A section. An unknown slug falls back to an empty
// page under the generic title.
func (c *QuestionController) Show(w http.ResponseWriter, r *http.Request) {
	title := "Questions and Answers"
	var items []content.QA

	if section, ok := content.BySlug(router.Param(r, "section")); ok {
		title = section.Title
		items = section.Items
	}

	views.Render(w, http.StatusOK, "questions_detail.tmpl", struct {
		Title string
		Items []content.QA
	}{title, items})
}
