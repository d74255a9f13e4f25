package dto

// CreateMaterialRequest body para POST /api/inventario.
type CreateMaterialRequest struct {
	Material   string `json:"material"`
	Categoria  string `json:"categoria"`
	Quantidade int64  `json:"quantidade"`
}

// MaterialResponse saída de um material do catálogo.
type MaterialResponse struct {
	ID         int64  `json:"id"`
	Material   string `json:"material"`
	Categoria  string `json:"categoria"`
	Quantidade int64  `json:"quantidade"`
}

// MaterialNomeResponse saída de GET /api/materiais (nomes distintos, sem quantidade).
type MaterialNomeResponse struct {
	Material  string `json:"material"`
	Categoria string `json:"categoria"`
}

// TotalEstoqueResponse saída de GET /api/estoque/total.
type TotalEstoqueResponse struct {
	Total int64 `json:"total"`
}
