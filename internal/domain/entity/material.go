package entity

// Material representa um item do catálogo de estoque (quantidade atual por material).
// O piso de não-negatividade vale para movimentos (motor de estoque); o cadastro
// aceita a quantidade inicial como veio.
type Material struct {
	ID         int64
	Material   string
	Categoria  string
	Quantidade int64
}
