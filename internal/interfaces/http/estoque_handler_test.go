package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivere-producoes/estoque-api/internal/application/catalog"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	apphttp "github.com/vivere-producoes/estoque-api/internal/interfaces/http"
)

// buildEstoqueApp monta as rotas do catálogo com parâmetros de path, sobre o
// caso de uso real e fakes de persistência.
func buildEstoqueApp() (*fiber.App, *fakeMatRepo) {
	mat := &fakeMatRepo{materiais: map[string]*entity.Material{
		"Treliça Q30": {ID: 1, Material: "Treliça Q30", Categoria: "Estrutura", Quantidade: 40},
	}}
	mov := &fakeMovRepo{}
	uc := catalog.NewUseCase(mat, &fakeTx{mat: mat, mov: mov})
	handler := apphttp.NewEstoqueHandler(uc, nil, nil)

	app := fiber.New(fiber.Config{UnescapePath: true})
	app.Get("/api/inventario/:material", handler.GetMaterial)
	app.Delete("/api/inventario/:material", handler.RemoveMaterial)
	return app, mat
}

// TestGetMaterial_NomeComEspacoEAcento garante que nomes percent-encoded no path
// ("Treli%C3%A7a%20Q30") chegam decodificados ao handler e encontram o material.
func TestGetMaterial_NomeComEspacoEAcento(t *testing.T) {
	app, _ := buildEstoqueApp()

	req := httptest.NewRequest(http.MethodGet, "/api/inventario/Treli%C3%A7a%20Q30", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Material   string `json:"material"`
		Quantidade int64  `json:"quantidade"`
	}
	decodificar(t, resp, &body)
	assert.Equal(t, "Treliça Q30", body.Material)
	assert.Equal(t, int64(40), body.Quantidade)
}

func TestDeleteMaterial_NomeComEspacoEAcento(t *testing.T) {
	app, mat := buildEstoqueApp()

	req := httptest.NewRequest(http.MethodDelete, "/api/inventario/Treli%C3%A7a%20Q30", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, mat.materiais["Treliça Q30"], "a linha decodificada deve ter sido removida")
}

func TestGetMaterial_Inexistente(t *testing.T) {
	app, _ := buildEstoqueApp()

	req := httptest.NewRequest(http.MethodGet, "/api/inventario/Canh%C3%A3o%20de%20Confete", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
