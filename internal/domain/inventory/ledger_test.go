package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del libro de movimientos (Apply). Los saldos nunca pueden quedar
// negativos y el snapshot del último movimiento debe coincidir con los saldos
// vivos después de cada aplicación.
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_EntradaSumaEnDestino(t *testing.T) {
	bal := inventory.Balances{Stock: 0, Warehouse: 0}

	mov := &entity.Movement{Type: entity.MovementIn, Quantity: 10, ToLocation: entity.LocationStock}
	bal, err := inventory.Apply(bal, mov)
	require.NoError(t, err)
	assert.Equal(t, int64(10), bal.Stock, "una entrada a stock debe sumar en stock")
	assert.Equal(t, int64(0), bal.Warehouse)

	mov = &entity.Movement{Type: entity.MovementIn, Quantity: 4, ToLocation: entity.LocationWarehouse}
	bal, err = inventory.Apply(bal, mov)
	require.NoError(t, err)
	assert.Equal(t, int64(4), bal.Warehouse, "una entrada a bodega debe sumar en bodega")
}

func TestApply_EntradaSinDestinoVaABodega(t *testing.T) {
	// Mismo comportamiento del modelo original: si el destino no es "stock",
	// la entrada cae en bodega.
	bal, err := inventory.Apply(inventory.Balances{}, &entity.Movement{
		Type: entity.MovementIn, Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), bal.Warehouse)
	assert.Equal(t, int64(0), bal.Stock)
}

func TestApply_SalidaRestaDelOrigen(t *testing.T) {
	bal := inventory.Balances{Stock: 10, Warehouse: 5}

	mov := &entity.Movement{Type: entity.MovementOut, Quantity: 3, FromLocation: entity.LocationStock}
	bal, err := inventory.Apply(bal, mov)
	require.NoError(t, err)
	assert.Equal(t, int64(7), bal.Stock)
	assert.Equal(t, int64(5), bal.Warehouse)

	mov = &entity.Movement{Type: entity.MovementOut, Quantity: 5, FromLocation: entity.LocationWarehouse}
	bal, err = inventory.Apply(bal, mov)
	require.NoError(t, err)
	assert.Equal(t, int64(0), bal.Warehouse)
}

func TestApply_SalidaInsuficiente_NoMutaSaldos(t *testing.T) {
	orig := inventory.Balances{Stock: 2, Warehouse: 0}
	mov := &entity.Movement{Type: entity.MovementOut, Quantity: 3, FromLocation: entity.LocationStock}

	bal, err := inventory.Apply(orig, mov)
	require.ErrorIs(t, err, domain.ErrInsufficientStock,
		"una salida mayor al saldo debe rechazarse con inventario insuficiente")
	assert.Equal(t, orig, bal, "los saldos no deben cambiar tras un rechazo")
	assert.Zero(t, mov.StockAfter, "el movimiento rechazado no debe quedar con snapshot")
}

func TestApply_TrasladoIdaYVuelta_RestauraSaldos(t *testing.T) {
	orig := inventory.Balances{Stock: 8, Warehouse: 2}

	bal, err := inventory.Apply(orig, &entity.Movement{
		Type: entity.MovementTransfer, Quantity: 5,
		FromLocation: entity.LocationStock, ToLocation: entity.LocationWarehouse,
	})
	require.NoError(t, err)
	assert.Equal(t, inventory.Balances{Stock: 3, Warehouse: 7}, bal)

	bal, err = inventory.Apply(bal, &entity.Movement{
		Type: entity.MovementTransfer, Quantity: 5,
		FromLocation: entity.LocationWarehouse, ToLocation: entity.LocationStock,
	})
	require.NoError(t, err)
	assert.Equal(t, orig, bal, "un traslado de ida y vuelta debe restaurar los saldos originales")
}

func TestApply_TrasladoMismoOrigenYDestino_Invalido(t *testing.T) {
	_, err := inventory.Apply(inventory.Balances{Stock: 5}, &entity.Movement{
		Type: entity.MovementTransfer, Quantity: 1,
		FromLocation: entity.LocationStock, ToLocation: entity.LocationStock,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_TrasladoSinSaldoEnOrigen(t *testing.T) {
	orig := inventory.Balances{Stock: 1, Warehouse: 0}
	bal, err := inventory.Apply(orig, &entity.Movement{
		Type: entity.MovementTransfer, Quantity: 2,
		FromLocation: entity.LocationStock, ToLocation: entity.LocationWarehouse,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, orig, bal)
}

func TestApply_ABodegaSeNormalizaAEntrada(t *testing.T) {
	mov := &entity.Movement{Type: entity.MovementToWarehouse, Quantity: 6}
	bal, err := inventory.Apply(inventory.Balances{}, mov)
	require.NoError(t, err)

	assert.Equal(t, entity.MovementIn, mov.Type, "A_BODEGA debe normalizarse a entrada")
	assert.Equal(t, entity.LocationWarehouse, mov.ToLocation)
	assert.Equal(t, int64(6), bal.Warehouse)
}

func TestApply_PendientePago_NoAplicaPeroEstampaSnapshot(t *testing.T) {
	orig := inventory.Balances{Stock: 9, Warehouse: 1}
	mov := &entity.Movement{
		Type: entity.MovementOut, Quantity: 4,
		FromLocation: entity.LocationStock,
		Note:         "salida pendiente_pago (pago en proceso)",
	}

	bal, err := inventory.Apply(orig, mov)
	require.NoError(t, err)
	assert.Equal(t, orig, bal, "un movimiento pendiente de pago no debe tocar los saldos")
	assert.Equal(t, orig.Stock, mov.StockAfter, "el snapshot refleja los saldos vigentes")
	assert.Equal(t, orig.Warehouse, mov.WarehouseAfter)
}

func TestApply_CantidadNoPositiva_Invalida(t *testing.T) {
	for _, qty := range []int64{0, -3} {
		_, err := inventory.Apply(inventory.Balances{Stock: 5}, &entity.Movement{
			Type: entity.MovementIn, Quantity: qty, ToLocation: entity.LocationStock,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe ser inválida", qty)
	}
}

// TestApply_SecuenciaLarga verifica el invariante global: tras cada movimiento
// aceptado, ambos saldos son >= 0 y el snapshot coincide con los saldos vivos.
func TestApply_SecuenciaLarga_InvarianteDeSnapshots(t *testing.T) {
	bal := inventory.Balances{}
	movs := []*entity.Movement{
		{Type: entity.MovementIn, Quantity: 20, ToLocation: entity.LocationStock},
		{Type: entity.MovementIn, Quantity: 15, ToLocation: entity.LocationWarehouse},
		{Type: entity.MovementOut, Quantity: 5, FromLocation: entity.LocationStock},
		{Type: entity.MovementTransfer, Quantity: 10, FromLocation: entity.LocationWarehouse, ToLocation: entity.LocationStock},
		{Type: entity.MovementOut, Quantity: 25, FromLocation: entity.LocationStock},
		{Type: entity.MovementToWarehouse, Quantity: 7},
	}

	for i, m := range movs {
		var err error
		bal, err = inventory.Apply(bal, m)
		require.NoError(t, err, "movimiento %d", i)
		assert.GreaterOrEqual(t, bal.Stock, int64(0))
		assert.GreaterOrEqual(t, bal.Warehouse, int64(0))
		assert.Equal(t, bal.Stock, m.StockAfter, "snapshot de stock del movimiento %d", i)
		assert.Equal(t, bal.Warehouse, m.WarehouseAfter, "snapshot de bodega del movimiento %d", i)
	}

	assert.Equal(t, inventory.Balances{Stock: 0, Warehouse: 12}, bal)
}
