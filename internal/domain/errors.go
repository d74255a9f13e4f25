package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidMovementType = errors.New("tipo de movimento inválido")
	ErrInvalidQuantity     = errors.New("quantidade inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrInsufficientStock   = errors.New("quantidade insuficiente para saída")
	ErrStorageUnavailable  = errors.New("armazenamento indisponível")
)
