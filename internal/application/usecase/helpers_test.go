package usecase_test

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jhoicas/kiosco-api/internal/infrastructure/store"
)

// openTestStore abre un almacén efímero en memoria con el esquema aplicado.
func openTestStore(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := store.Open(":memory:")
	require.NoError(t, err, "debe abrirse el almacén en memoria")
	return db
}

// testNode genera snowflakes para los tests.
func testNode(t *testing.T) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return node
}

// fixedClock devuelve un reloj congelado en el instante dado.
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
