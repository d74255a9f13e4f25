package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivere-producoes/estoque-api/internal/application/catalog"
	"github.com/vivere-producoes/estoque-api/internal/domain"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

// Fakes mínimos: o catálogo só precisa do repositório de materiais e, para a
// limpeza total, de um runner que entrega também o diário.

type fakeCatalogo struct {
	materiais  []*entity.Material
	movimentos []*entity.Movimento

	falharLimpezaMovimentos bool
}

type fakeMatRepo struct{ e *fakeCatalogo }

func (r *fakeMatRepo) GetByName(material string) (*entity.Material, error) {
	for _, m := range r.e.materiais {
		if m.Material == material {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMatRepo) GetByNameForUpdate(material string) (*entity.Material, error) {
	return r.GetByName(material)
}

func (r *fakeMatRepo) Create(m *entity.Material) error {
	if existente, _ := r.GetByName(m.Material); existente != nil {
		return domain.ErrDuplicate
	}
	m.ID = int64(len(r.e.materiais) + 1)
	r.e.materiais = append(r.e.materiais, m)
	return nil
}

func (r *fakeMatRepo) UpdateQuantidade(material string, quantidade int64) error {
	m, _ := r.GetByName(material)
	if m == nil {
		return domain.ErrNotFound
	}
	m.Quantidade = quantidade
	return nil
}

func (r *fakeMatRepo) Delete(material string) error {
	for i, m := range r.e.materiais {
		if m.Material == material {
			r.e.materiais = append(r.e.materiais[:i], r.e.materiais[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeMatRepo) List() ([]*entity.Material, error) {
	return r.e.materiais, nil
}

func (r *fakeMatRepo) ListByCategoria(categoria string) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.e.materiais {
		if m.Categoria == categoria && m.Quantidade > 0 {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMatRepo) Categorias() ([]string, error) {
	vistas := map[string]bool{}
	var out []string
	for _, m := range r.e.materiais {
		if !vistas[m.Categoria] {
			vistas[m.Categoria] = true
			out = append(out, m.Categoria)
		}
	}
	return out, nil
}

func (r *fakeMatRepo) Total() (int64, error) {
	var total int64
	for _, m := range r.e.materiais {
		total += m.Quantidade
	}
	return total, nil
}

func (r *fakeMatRepo) DeleteAll() error {
	r.e.materiais = nil
	return nil
}

type fakeMovRepo struct{ e *fakeCatalogo }

func (r *fakeMovRepo) Create(m *entity.Movimento) error {
	r.e.movimentos = append(r.e.movimentos, m)
	return nil
}

func (r *fakeMovRepo) List() ([]*entity.Movimento, error) { return r.e.movimentos, nil }
func (r *fakeMovRepo) Count() (int64, error)              { return int64(len(r.e.movimentos)), nil }

func (r *fakeMovRepo) DeleteAll() error {
	if r.e.falharLimpezaMovimentos {
		return errors.New("falha injetada na limpeza")
	}
	r.e.movimentos = nil
	return nil
}

// fakeTx clona o estado e só o promove no commit.
type fakeTx struct{ e *fakeCatalogo }

func (t *fakeTx) Run(_ context.Context, fn func(
	matRepo repository.MaterialRepository,
	movRepo repository.MovimentoRepository,
) error) error {
	copia := &fakeCatalogo{
		materiais:               append([]*entity.Material(nil), t.e.materiais...),
		movimentos:              append([]*entity.Movimento(nil), t.e.movimentos...),
		falharLimpezaMovimentos: t.e.falharLimpezaMovimentos,
	}
	if err := fn(&fakeMatRepo{e: copia}, &fakeMovRepo{e: copia}); err != nil {
		return err
	}
	*t.e = *copia
	return nil
}

func novoCatalogo() (*fakeCatalogo, *catalog.UseCase) {
	e := &fakeCatalogo{}
	return e, catalog.NewUseCase(&fakeMatRepo{e: e}, &fakeTx{e: e})
}

func TestCreate_EDuplicado(t *testing.T) {
	_, uc := novoCatalogo()

	m, err := uc.Create(catalog.CreateInput{Material: "Treliça Q30", Categoria: "Estrutura", Quantidade: 40})
	require.NoError(t, err)
	assert.Equal(t, int64(40), m.Quantidade)

	_, err = uc.Create(catalog.CreateInput{Material: "Treliça Q30", Categoria: "Estrutura"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// TestCreate_QuantidadeNegativaAceita: o piso de não-negatividade vale a partir
// dos movimentos; o cadastro aceita qualquer quantidade inicial.
func TestCreate_QuantidadeNegativaAceita(t *testing.T) {
	_, uc := novoCatalogo()

	m, err := uc.Create(catalog.CreateInput{Material: "Cabo P10", Categoria: "Som", Quantidade: -5})
	require.NoError(t, err)
	assert.Equal(t, int64(-5), m.Quantidade)
}

func TestCreate_EntradaInvalida(t *testing.T) {
	_, uc := novoCatalogo()
	_, err := uc.Create(catalog.CreateInput{Material: "  ", Categoria: "Som"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(catalog.CreateInput{Material: "Mesa de Som", Categoria: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGet_NaoEncontrado(t *testing.T) {
	_, uc := novoCatalogo()
	_, err := uc.Get("Canhão de Confete")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestRemove_Permissivo confirma que remover material inexistente não é erro.
func TestRemove_Permissivo(t *testing.T) {
	_, uc := novoCatalogo()
	assert.NoError(t, uc.Remove("Canhão de Confete"))
}

// TestSearch_IgnoraAcentosECaixa cobre o filtro de busca: "trelica" deve achar
// "Treliça Q30".
func TestSearch_IgnoraAcentosECaixa(t *testing.T) {
	_, uc := novoCatalogo()
	_, err := uc.Create(catalog.CreateInput{Material: "Treliça Q30", Categoria: "Estrutura"})
	require.NoError(t, err)
	_, err = uc.Create(catalog.CreateInput{Material: "Mesa de Som", Categoria: "Som"})
	require.NoError(t, err)

	achados, err := uc.Search("trelica")
	require.NoError(t, err)
	require.Len(t, achados, 1)
	assert.Equal(t, "Treliça Q30", achados[0].Material)

	achados, err = uc.Search("SOM")
	require.NoError(t, err)
	require.Len(t, achados, 1)
	assert.Equal(t, "Mesa de Som", achados[0].Material)
}

func TestListByCategoria_SoComEstoque(t *testing.T) {
	_, uc := novoCatalogo()
	_, err := uc.Create(catalog.CreateInput{Material: "Moving Head Beam", Categoria: "Iluminação", Quantidade: 8})
	require.NoError(t, err)
	_, err = uc.Create(catalog.CreateInput{Material: "Máquina de Fumaça", Categoria: "Iluminação", Quantidade: 0})
	require.NoError(t, err)

	comEstoque, err := uc.ListByCategoria("Iluminação")
	require.NoError(t, err)
	require.Len(t, comEstoque, 1)
	assert.Equal(t, "Moving Head Beam", comEstoque[0].Material)
}

func TestTotal_VazioEZero(t *testing.T) {
	_, uc := novoCatalogo()
	total, err := uc.Total()
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	_, err = uc.Create(catalog.CreateInput{Material: "Treliça Q30", Categoria: "Estrutura", Quantidade: 40})
	require.NoError(t, err)
	_, err = uc.Create(catalog.CreateInput{Material: "Mesa de Som", Categoria: "Som", Quantidade: 2})
	require.NoError(t, err)

	total, err = uc.Total()
	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
}

// TestLimpar_TudoOuNada: quando a limpeza do diário falha, o catálogo também não
// pode ser esvaziado.
func TestLimpar_TudoOuNada(t *testing.T) {
	e, uc := novoCatalogo()
	_, err := uc.Create(catalog.CreateInput{Material: "Treliça Q30", Categoria: "Estrutura", Quantidade: 40})
	require.NoError(t, err)
	e.movimentos = append(e.movimentos, &entity.Movimento{Material: "Treliça Q30", Tipo: "entrada", Quantidade: 40})

	e.falharLimpezaMovimentos = true
	require.Error(t, uc.Limpar(context.Background()))
	assert.Len(t, e.materiais, 1, "rollback preserva o catálogo")
	assert.Len(t, e.movimentos, 1, "rollback preserva o diário")

	e.falharLimpezaMovimentos = false
	require.NoError(t, uc.Limpar(context.Background()))
	assert.Empty(t, e.materiais)
	assert.Empty(t, e.movimentos)
}
