package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger entra en pánico al arrancar si el documento que
// apunta swaggerDocPath no existe. El archivo viene pregenerado en el repo;
// acá se verifica que esté y que describa las rutas del API.
func TestSwagger_DocumentoPregeneradoExiste(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "docs", "swagger.json"))
	require.NoError(t, err, "el binario espera %s junto al directorio de trabajo", swaggerDocPath)

	var doc struct {
		Swagger string                     `json:"swagger"`
		Info    struct{ Title string }     `json:"info"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "Kiosco API", doc.Info.Title)

	for _, path := range []string{
		"/health",
		"/api/auth/login",
		"/api/products",
		"/api/customers/{id}/sales",
		"/api/sales/{id}/payments",
		"/api/cash/close",
		"/api/scanner/events",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}
