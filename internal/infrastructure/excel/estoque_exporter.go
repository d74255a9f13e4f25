package excel

import (
	"bytes"
	"fmt"

	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// EstoqueExporter gera a planilha .xlsx com o catálogo e o diário de movimentações.
type EstoqueExporter struct{}

// NewEstoqueExporter constrói o exportador.
func NewEstoqueExporter() *EstoqueExporter {
	return &EstoqueExporter{}
}

// Export monta o workbook com duas abas (Inventário e Movimentos) e devolve os bytes.
func (e *EstoqueExporter) Export(materiais []*entity.Material, movimentos []*entity.Movimento) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	inv := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(inv, "Inventário"); err != nil {
		return nil, fmt.Errorf("renomear aba: %w", err)
	}
	header := []interface{}{"material", "categoria", "quantidade"}
	if err := f.SetSheetRow("Inventário", "A1", &header); err != nil {
		return nil, fmt.Errorf("cabeçalho inventário: %w", err)
	}
	row := 2
	for _, m := range materiais {
		linha := []interface{}{m.Material, m.Categoria, m.Quantidade}
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow("Inventário", cell, &linha); err != nil {
			return nil, fmt.Errorf("linha inventário: %w", err)
		}
		row++
	}

	if _, err := f.NewSheet("Movimentos"); err != nil {
		return nil, fmt.Errorf("criar aba movimentos: %w", err)
	}
	movHeader := []interface{}{"material", "tipo", "quantidade", "horario"}
	if err := f.SetSheetRow("Movimentos", "A1", &movHeader); err != nil {
		return nil, fmt.Errorf("cabeçalho movimentos: %w", err)
	}
	row = 2
	for _, mv := range movimentos {
		linha := []interface{}{mv.Material, mv.Tipo, mv.Quantidade, mv.Horario.Format("2006-01-02 15:04:05")}
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow("Movimentos", cell, &linha); err != nil {
			return nil, fmt.Errorf("linha movimentos: %w", err)
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("gravar planilha: %w", err)
	}
	return buf.Bytes(), nil
}
