package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindForCategoryFallsThroughToResidential(t *testing.T) {
	assert.Equal(t, KindCommercial, KindForCategory(CategoryCommercial))
	assert.Equal(t, KindPlot, KindForCategory(CategoryPlots))
	assert.Equal(t, KindResidential, KindForCategory(CategoryResidential))

	// Неизвестная или пустая категория - не ошибка, а residential.
	assert.Equal(t, KindResidential, KindForCategory(""))
	assert.Equal(t, KindResidential, KindForCategory("Castle"))
}
