package dto

// CreateUsuarioRequest body para POST /api/usuarios.
type CreateUsuarioRequest struct {
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Senha  string `json:"senha"`
	Perfil string `json:"perfil"`
}

// UsuarioResponse saída de um usuário (nunca inclui senha ou hash).
type UsuarioResponse struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
}
