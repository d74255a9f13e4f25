package alocacao_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vivere-producoes/estoque-api/internal/domain/alocacao"
)

// TestSplit_Vetores valida a divisão 70/30 contra vetores conhecidos. O primário
// recebe o piso de 70% e o secundário absorve o resto do arredondamento, de modo
// que nenhuma unidade se perde.
func TestSplit_Vetores(t *testing.T) {
	casos := []struct {
		total      int64
		primario   int64
		secundario int64
	}{
		{100, 70, 30},
		{10, 7, 3},
		{9, 6, 3},
		{1, 0, 1},
		{2, 1, 1},
		{3, 2, 1},
		{7, 4, 3},
		{0, 0, 0},
		{1000, 700, 300},
	}
	for _, c := range casos {
		primario, secundario := alocacao.Split(c.total)
		assert.Equal(t, c.primario, primario, "primário para total=%d", c.total)
		assert.Equal(t, c.secundario, secundario, "secundário para total=%d", c.total)
	}
}

// TestSplit_SomaPreservada verifica que primário + secundário == total para uma
// faixa contínua de quantidades.
func TestSplit_SomaPreservada(t *testing.T) {
	for total := int64(0); total <= 500; total++ {
		primario, secundario := alocacao.Split(total)
		assert.Equal(t, total, primario+secundario, "soma para total=%d", total)
		assert.GreaterOrEqual(t, primario, int64(0))
		assert.GreaterOrEqual(t, secundario, int64(0))
	}
}
