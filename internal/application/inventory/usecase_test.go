package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivere-producoes/estoque-api/internal/application/inventory"
	"github.com/vivere-producoes/estoque-api/internal/domain"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
//
// estadoEstoque guarda catálogo e movimentos. O fakeTxRunner clona o estado,
// executa o callback sobre a cópia e só promove a cópia no "commit" (callback
// sem erro). Assim os testes verificam a propriedade tudo-ou-nada sem banco.
// ──────────────────────────────────────────────────────────────────────────────

type estadoEstoque struct {
	materiais  []*entity.Material
	movimentos []*entity.Movimento
	proximoMov int64

	falharUpdate bool
	falharCreate bool
}

func novoEstado() *estadoEstoque {
	return &estadoEstoque{proximoMov: 1}
}

func (e *estadoEstoque) clonar() *estadoEstoque {
	c := &estadoEstoque{
		proximoMov:   e.proximoMov,
		falharUpdate: e.falharUpdate,
		falharCreate: e.falharCreate,
	}
	for _, m := range e.materiais {
		copia := *m
		c.materiais = append(c.materiais, &copia)
	}
	for _, m := range e.movimentos {
		copia := *m
		c.movimentos = append(c.movimentos, &copia)
	}
	return c
}

type fakeMaterialRepo struct{ e *estadoEstoque }

func (r *fakeMaterialRepo) GetByName(material string) (*entity.Material, error) {
	for _, m := range r.e.materiais {
		if m.Material == material {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMaterialRepo) GetByNameForUpdate(material string) (*entity.Material, error) {
	return r.GetByName(material)
}

func (r *fakeMaterialRepo) Create(m *entity.Material) error {
	if existente, _ := r.GetByName(m.Material); existente != nil {
		return domain.ErrDuplicate
	}
	m.ID = int64(len(r.e.materiais) + 1)
	r.e.materiais = append(r.e.materiais, m)
	return nil
}

func (r *fakeMaterialRepo) UpdateQuantidade(material string, quantidade int64) error {
	if r.e.falharUpdate {
		return errors.New("falha injetada no update")
	}
	m, _ := r.GetByName(material)
	if m == nil {
		return domain.ErrNotFound
	}
	m.Quantidade = quantidade
	return nil
}

func (r *fakeMaterialRepo) Delete(material string) error {
	for i, m := range r.e.materiais {
		if m.Material == material {
			r.e.materiais = append(r.e.materiais[:i], r.e.materiais[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeMaterialRepo) List() ([]*entity.Material, error) {
	return r.e.materiais, nil
}

func (r *fakeMaterialRepo) ListByCategoria(categoria string) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.e.materiais {
		if m.Categoria == categoria && m.Quantidade > 0 {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMaterialRepo) Categorias() ([]string, error) {
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

func (r *fakeMaterialRepo) Total() (int64, error) {
	var total int64
	for _, m := range r.e.materiais {
		total += m.Quantidade
	}
	return total, nil
}

func (r *fakeMaterialRepo) DeleteAll() error {
	r.e.materiais = nil
	return nil
}

type fakeMovimentoRepo struct{ e *estadoEstoque }

func (r *fakeMovimentoRepo) Create(m *entity.Movimento) error {
	if r.e.falharCreate {
		return errors.New("falha injetada no create")
	}
	m.ID = r.e.proximoMov
	r.e.proximoMov++
	r.e.movimentos = append(r.e.movimentos, m)
	return nil
}

func (r *fakeMovimentoRepo) List() ([]*entity.Movimento, error) {
	return r.e.movimentos, nil
}

func (r *fakeMovimentoRepo) Count() (int64, error) {
	return int64(len(r.e.movimentos)), nil
}

func (r *fakeMovimentoRepo) DeleteAll() error {
	r.e.movimentos = nil
	return nil
}

// fakeTxRunner copia o estado, roda o callback sobre a cópia e só a promove se
// não houve erro, imitando Commit/Rollback.
type fakeTxRunner struct{ e *estadoEstoque }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	matRepo repository.MaterialRepository,
	movRepo repository.MovimentoRepository,
) error) error {
	copia := t.e.clonar()
	if err := fn(&fakeMaterialRepo{e: copia}, &fakeMovimentoRepo{e: copia}); err != nil {
		return err
	}
	*t.e = *copia
	return nil
}

func novoAmbiente() (*estadoEstoque, *inventory.RegisterMovementUseCase) {
	e := novoEstado()
	uc := inventory.NewRegisterMovementUseCase(&fakeTxRunner{e: e}, &fakeMovimentoRepo{e: e})
	return e, uc
}

func cadastrar(t *testing.T, e *estadoEstoque, material, categoria string, quantidade int64) {
	t.Helper()
	repo := &fakeMaterialRepo{e: e}
	require.NoError(t, repo.Create(&entity.Material{
		Material:   material,
		Categoria:  categoria,
		Quantidade: quantidade,
	}))
}

func quantidadeDe(t *testing.T, e *estadoEstoque, material string) int64 {
	t.Helper()
	m, err := (&fakeMaterialRepo{e: e}).GetByName(material)
	require.NoError(t, err)
	require.NotNil(t, m)
	return m.Quantidade
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário de ponta a ponta: entrada, saída parcial e saída acima do saldo.
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_CenarioEntradaSaida(t *testing.T) {
	e, uc := novoAmbiente()
	cadastrar(t, e, "Treliça Q30", "Estrutura", 0)

	res, err := uc.RegisterMovement(context.Background(), inventory.MovimentoInput{
		Material: "Treliça Q30", Tipo: "entrada", Quantidade: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), res.Quantidade)
	assert.Equal(t, int64(1), res.MovimentoID)

	res, err = uc.RegisterMovement(context.Background(), inventory.MovimentoInput{
		Material: "Treliça Q30", Tipo: "saida", Quantidade: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30), res.Quantidade)

	// Saída acima do saldo: recusada sem nenhum efeito observável.
	_, err = uc.RegisterMovement(context.Background(), inventory.MovimentoInput{
		Material: "Treliça Q30", Tipo: "saida", Quantidade: 100,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(30), quantidadeDe(t, e, "Treliça Q30"))

	total, err := uc.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "a saída recusada não entra no diário")
}

// TestRegisterMovement_SaidaExataZeraSaldo verifica que saída igual ao saldo é
// aceita e deixa a quantidade em zero, não negativa.
func TestRegisterMovement_SaidaExataZeraSaldo(t *testing.T) {
	e, uc := novoAmbiente()
	cadastrar(t, e, "Microfone Sem Fio", "Som", 10)

	res, err := uc.RegisterMovement(context.Background(), inventory.MovimentoInput{
		Material: "Microfone Sem Fio", Tipo: "saida", Quantidade: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Quantidade)
	assert.Equal(t, int64(0), quantidadeDe(t, e, "Microfone Sem Fio"))
}

// ── Ordem de validação ────────────────────────────────────────────────────────

func TestRegisterMovement_TipoInvalido(t *testing.T) {
	_, uc := novoAmbiente()
	_, err := uc.RegisterMovement(context.Background(), inventory.MovimentoInput{
		Material: "Treliça Q30", Tipo: "transferencia", Quantidade: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)
}

func TestRegisterMovement_TipoValidadoAntesDaQuantidade(t *testing.T) {
	_, uc := novoAmbiente()
	// As duas validações falhariam; o tipo tem precedência.
	_, err := uc.RegisterMovement(context.Background(), inventory.MovimentoInput{
		Material: "Treliça Q30", Tipo: "transferencia", Quantidade: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)
}

func TestRegisterMovement_QuantidadeInvalida(t *testing.T) {
	_, uc := novoAmbiente()
	for _, q := range []int64{0, -5} {
		_, err := uc.RegisterMovement(context.Background(), inventory.MovimentoInput{
			Material: "Treliça Q30", Tipo: "entrada", Quantidade: q,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "quantidade=%d", q)
	}
}

func TestRegisterMovement_MaterialInexistente(t *testing.T) {
	e, uc := novoAmbiente()

	_, err := uc.RegisterMovement(context.Background(), inventory.MovimentoInput{
		Material: "Canhão de Confete", Tipo: "entrada", Quantidade: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, e.movimentos)
}

// ── Atomicidade ───────────────────────────────────────────────────────────────

// TestRegisterMovement_FalhaNoDiarioDesfazTudo injeta falha na gravação do
// movimento e verifica que a quantidade do material não muda (rollback).
func TestRegisterMovement_FalhaNoDiarioDesfazTudo(t *testing.T) {
	e, uc := novoAmbiente()
	cadastrar(t, e, "Painel de LED P3", "Vídeo", 20)
	e.falharCreate = true

	_, err := uc.RegisterMovement(context.Background(), inventory.MovimentoInput{
		Material: "Painel de LED P3", Tipo: "saida", Quantidade: 5,
	})
	require.Error(t, err)
	assert.Equal(t, int64(20), quantidadeDe(t, e, "Painel de LED P3"))
	assert.Empty(t, e.movimentos)
}

func TestRegisterMovement_FalhaNoUpdateNaoGravaMovimento(t *testing.T) {
	e, uc := novoAmbiente()
	cadastrar(t, e, "Painel de LED P3", "Vídeo", 20)
	e.falharUpdate = true

	_, err := uc.RegisterMovement(context.Background(), inventory.MovimentoInput{
		Material: "Painel de LED P3", Tipo: "entrada", Quantidade: 5,
	})
	require.Error(t, err)
	assert.Equal(t, int64(20), quantidadeDe(t, e, "Painel de LED P3"))
	assert.Empty(t, e.movimentos)
}

// TestRegisterMovement_DiarioEmOrdemDeInsercao confirma que List devolve os
// movimentos na ordem em que foram aceitos.
func TestRegisterMovement_DiarioEmOrdemDeInsercao(t *testing.T) {
	e, uc := novoAmbiente()
	cadastrar(t, e, "Refletor LED Par 64", "Iluminação", 0)

	for _, q := range []int64{30, 10, 5} {
		_, err := uc.RegisterMovement(context.Background(), inventory.MovimentoInput{
			Material: "Refletor LED Par 64", Tipo: "entrada", Quantidade: q,
		})
		require.NoError(t, err)
	}

	movimentos, err := uc.List()
	require.NoError(t, err)
	require.Len(t, movimentos, 3)
	assert.Equal(t, []int64{30, 10, 5}, []int64{
		movimentos[0].Quantidade, movimentos[1].Quantidade, movimentos[2].Quantidade,
	})
	assert.Equal(t, int64(1), movimentos[0].ID)
	assert.Equal(t, int64(3), movimentos[2].ID)
}
