package catalog

import (
	"context"
	"strings"

	"github.com/vivere-producoes/estoque-api/internal/application/inventory"
	"github.com/vivere-producoes/estoque-api/internal/domain"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
	"github.com/vivere-producoes/estoque-api/pkg/texto"
)

// UseCase casos de uso do catálogo de materiais (quantidade atual por material).
type UseCase struct {
	matRepo  repository.MaterialRepository
	txRunner inventory.TxRunner
}

// NewUseCase constrói o caso de uso. O txRunner é usado apenas pela limpeza total,
// que precisa apagar catálogo e movimentações como uma unidade.
func NewUseCase(matRepo repository.MaterialRepository, txRunner inventory.TxRunner) *UseCase {
	return &UseCase{matRepo: matRepo, txRunner: txRunner}
}

// CreateInput entrada para cadastrar um material no catálogo.
type CreateInput struct {
	Material   string
	Categoria  string
	Quantidade int64
}

// Create cadastra um material. A quantidade inicial é aceita como veio; o piso de
// não-negatividade vale a partir dos movimentos, não do cadastro.
func (uc *UseCase) Create(in CreateInput) (*entity.Material, error) {
	if strings.TrimSpace(in.Material) == "" || strings.TrimSpace(in.Categoria) == "" {
		return nil, domain.ErrInvalidInput
	}
	m := &entity.Material{
		Material:   in.Material,
		Categoria:  in.Categoria,
		Quantidade: in.Quantidade,
	}
	if err := uc.matRepo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Get busca um material pelo nome.
func (uc *UseCase) Get(material string) (*entity.Material, error) {
	m, err := uc.matRepo.GetByName(material)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

// Remove apaga a linha do material. Os movimentos que o referenciam permanecem
// como trilha de auditoria órfã.
func (uc *UseCase) Remove(material string) error {
	return uc.matRepo.Delete(material)
}

// List retorna o catálogo completo, ordenado por categoria.
func (uc *UseCase) List() ([]*entity.Material, error) {
	return uc.matRepo.List()
}

// Search filtra o catálogo por nome, ignorando acentos e caixa ("trelica" acha "Treliça").
func (uc *UseCase) Search(termo string) ([]*entity.Material, error) {
	all, err := uc.matRepo.List()
	if err != nil {
		return nil, err
	}
	alvo := texto.Normalizar(termo)
	var out []*entity.Material
	for _, m := range all {
		if strings.Contains(texto.Normalizar(m.Material), alvo) {
			out = append(out, m)
		}
	}
	return out, nil
}

// ListByCategoria retorna os materiais com quantidade > 0 de uma categoria.
func (uc *UseCase) ListByCategoria(categoria string) ([]*entity.Material, error) {
	return uc.matRepo.ListByCategoria(categoria)
}

// Categorias retorna os rótulos de categoria presentes no catálogo.
func (uc *UseCase) Categorias() ([]string, error) {
	return uc.matRepo.Categorias()
}

// Total retorna a soma das quantidades de todo o catálogo (0 se vazio).
func (uc *UseCase) Total() (int64, error) {
	return uc.matRepo.Total()
}

// Limpar apaga catálogo e movimentações na mesma transação (tudo ou nada).
func (uc *UseCase) Limpar(ctx context.Context) error {
	return uc.txRunner.Run(ctx, func(
		matRepo repository.MaterialRepository,
		movRepo repository.MovimentoRepository,
	) error {
		if err := matRepo.DeleteAll(); err != nil {
			return err
		}
		return movRepo.DeleteAll()
	})
}
