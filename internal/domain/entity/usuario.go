package entity

// Usuario conta de acesso ao painel. SenhaHash guarda o bcrypt da senha; nunca é serializada.
type Usuario struct {
	ID        string
	Nome      string
	Email     string
	SenhaHash string
	Perfil    string
}
