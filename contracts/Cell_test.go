package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	t.Run("strings pass verbatim", func(t *testing.T) {
		assert.Equal(t, "", FormatValue(""))
		assert.Equal(t, "hello", FormatValue("hello"))
		assert.Equal(t, "=not a formula", FormatValue("=not a formula"))
	})

	t.Run("numbers render in shortest decimal form", func(t *testing.T) {
		assert.Equal(t, "3", FormatValue(float64(3)))
		assert.Equal(t, "0.5", FormatValue(0.5))
		assert.Equal(t, "-2.25", FormatValue(-2.25))
	})

	t.Run("formula errors render their code", func(t *testing.T) {
		assert.Equal(t, "#REF!", FormatValue(*NewFormulaError(FormulaErrorRef)))
		assert.Equal(t, "#DIV/0!", FormatValue(*NewFormulaError(FormulaErrorDiv0)))
	})
}
