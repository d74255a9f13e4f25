package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivere-producoes/estoque-api/internal/application/usecase"
	"github.com/vivere-producoes/estoque-api/internal/domain"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
)

type fakeEventoRepo struct{ eventos []*entity.Evento }

func (r *fakeEventoRepo) Create(e *entity.Evento) error {
	e.ID = int64(len(r.eventos) + 1)
	r.eventos = append(r.eventos, e)
	return nil
}

func (r *fakeEventoRepo) GetByID(id int64) (*entity.Evento, error) {
	for _, e := range r.eventos {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEventoRepo) Update(e *entity.Evento) error { return nil }

func (r *fakeEventoRepo) List() ([]*entity.Evento, error) { return r.eventos, nil }

func entradaValida() usecase.EventoInput {
	return usecase.EventoInput{
		NomeEvento: "Festival de Verão",
		Cliente:    "Prefeitura de Maricá",
		DataInicio: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		DataFim:    time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC),
	}
}

func TestEventoCreate_StatusPadrao(t *testing.T) {
	uc := usecase.NewEventoUseCase(&fakeEventoRepo{})

	e, err := uc.Create(entradaValida())
	require.NoError(t, err)
	assert.Equal(t, usecase.StatusEventoPadrao, e.Status)
}

func TestEventoCreate_EntradaInvalida(t *testing.T) {
	uc := usecase.NewEventoUseCase(&fakeEventoRepo{})

	in := entradaValida()
	in.NomeEvento = " "
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = entradaValida()
	in.DataFim = time.Time{}
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEventoUpdate_NaoEncontrado(t *testing.T) {
	uc := usecase.NewEventoUseCase(&fakeEventoRepo{})

	in := entradaValida()
	in.Status = "Cancelado"
	_, err := uc.Update(42, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
