package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/basket/internal/config"
	"github.com/thenoetrevino/basket/internal/models"
)

func TestCategoryGlyph_Distinct(t *testing.T) {
	seen := map[string]models.Category{}
	for _, c := range models.Categories() {
		g := CategoryGlyph(c)
		prev, dup := seen[g]
		assert.False(t, dup, "%s shares a glyph with %s", c, prev)
		seen[g] = c
	}
	assert.Equal(t, "•", CategoryGlyph("OTHER"))
}

func TestRenderItemLine(t *testing.T) {
	Init(config.MonochromeTheme())
	t.Cleanup(func() { Init(config.DefaultTheme()) })

	item := models.Item{ID: 3, Title: "Milk", Price: "2.50", Category: models.CategoryFood, Priority: models.PriorityHigh}
	line := RenderItemLine(item)

	assert.Contains(t, line, "[ ]")
	assert.Contains(t, line, "#3")
	assert.Contains(t, line, "Milk")
	assert.Contains(t, line, "$2.50")
	assert.Contains(t, line, "!")

	item.IsDone = true
	item.Priority = models.PriorityNormal
	line = RenderItemLine(item)
	assert.Contains(t, line, "[x]")
	assert.NotContains(t, line, "!")
}

func TestRenderTotal(t *testing.T) {
	assert.Contains(t, RenderTotal("12.50"), "$12.50")
	assert.Contains(t, RenderTotal("12.50"), "Total Estimated Cost:")
}
