package usecase

import (
	"strings"
	"time"

	"github.com/vivere-producoes/estoque-api/internal/domain"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

// StatusEventoPadrao aplicado quando a requisição não informa status.
const StatusEventoPadrao = "Confirmado"

// EventoUseCase casos de uso CRUD para eventos de produção.
type EventoUseCase struct {
	repo repository.EventoRepository
}

// NewEventoUseCase constrói o caso de uso.
func NewEventoUseCase(repo repository.EventoRepository) *EventoUseCase {
	return &EventoUseCase{repo: repo}
}

// EventoInput entrada para criar ou atualizar um evento.
type EventoInput struct {
	NomeEvento string
	Cliente    string
	Status     string
	DataInicio time.Time
	DataFim    time.Time
}

func (in EventoInput) validar(exigirStatus bool) error {
	if strings.TrimSpace(in.NomeEvento) == "" || strings.TrimSpace(in.Cliente) == "" {
		return domain.ErrInvalidInput
	}
	if in.DataInicio.IsZero() || in.DataFim.IsZero() {
		return domain.ErrInvalidInput
	}
	if exigirStatus && strings.TrimSpace(in.Status) == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create cadastra um evento. Status vazio assume o padrão.
func (uc *EventoUseCase) Create(in EventoInput) (*entity.Evento, error) {
	if err := in.validar(false); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Status) == "" {
		in.Status = StatusEventoPadrao
	}
	e := &entity.Evento{
		NomeEvento: in.NomeEvento,
		Cliente:    in.Cliente,
		Status:     in.Status,
		DataInicio: in.DataInicio,
		DataFim:    in.DataFim,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update sobrescreve todos os campos de um evento existente.
func (uc *EventoUseCase) Update(id int64, in EventoInput) (*entity.Evento, error) {
	if err := in.validar(true); err != nil {
		return nil, err
	}
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	e.NomeEvento = in.NomeEvento
	e.Cliente = in.Cliente
	e.Status = in.Status
	e.DataInicio = in.DataInicio
	e.DataFim = in.DataFim
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return e, nil
}

// List lista todos os eventos.
func (uc *EventoUseCase) List() ([]*entity.Evento, error) {
	return uc.repo.List()
}
