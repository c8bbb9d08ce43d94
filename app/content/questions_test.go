package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections(t *testing.T) {
	sections := Sections()
	require.Len(t, sections, 3)

	slugs := make([]string, 0, len(sections))
	for _, s := range sections {
		slugs = append(slugs, s.Slug)
		assert.NotEmpty(t, s.Title, "section %s", s.Slug)
		assert.NotEmpty(t, s.Items, "section %s", s.Slug)
		for _, qa := range s.Items {
			assert.NotEmpty(t, qa.Question)
			assert.NotEmpty(t, qa.Answer)
		}
	}

	assert.Equal(t, []string{
		"general_database_questions",
		"sql_database_queries",
		"database_design_architecture",
	}, slugs)
}

func TestBySlug(t *testing.T) {
	section, ok := BySlug("sql_database_queries")
	require.True(t, ok)
	assert.Equal(t, "SQL and Database Queries", section.Title)

	_, ok = BySlug("no_such_section")
	assert.False(t, ok)
}
