package entity

// Deposito representa um local físico de armazenamento.
type Deposito struct {
	ID       int64
	Nome     string
	Endereco string
}
