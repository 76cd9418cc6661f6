package orders_test

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/orders"
)

func strptr(s string) *string { return &s }

func TestComputeTotal_SumaDeSubtotales(t *testing.T) {
	items := []entity.OrderItem{
		{ProductID: "a", Quantity: 3, UnitPrice: decimal.NewFromInt(100), Subtotal: decimal.NewFromInt(300)},
		{ProductID: "b", Quantity: 1, UnitPrice: decimal.NewFromInt(2500), Subtotal: decimal.NewFromInt(2500)},
	}
	total := orders.ComputeTotal(items)
	assert.True(t, decimal.NewFromInt(2800).Equal(total),
		"el total debe ser la suma exacta de los subtotales, no el valor del cliente")
}

func TestSubtotal_CantidadPorPrecio(t *testing.T) {
	it := entity.OrderItem{Quantity: 4, UnitPrice: decimal.NewFromFloat(19.99)}
	assert.True(t, decimal.NewFromFloat(79.96).Equal(orders.Subtotal(it)))
}

func TestPrimarySeller_MonoVendedor(t *testing.T) {
	items := []entity.OrderItem{
		{ProductID: "a", SellerID: strptr("v1")},
		{ProductID: "b", SellerID: strptr("v1")},
	}
	seller := orders.PrimarySeller(items)
	require.NotNil(t, seller, "si todas las líneas son del mismo vendedor debe asignarse")
	assert.Equal(t, "v1", *seller)
}

func TestPrimarySeller_MultiVendedor_QuedaNil(t *testing.T) {
	items := []entity.OrderItem{
		{ProductID: "a", SellerID: strptr("v1")},
		{ProductID: "b", SellerID: strptr("v2")},
	}
	assert.Nil(t, orders.PrimarySeller(items), "pedido multi-vendedor no tiene vendedor principal")
}

func TestPrimarySeller_SinVendedores_QuedaNil(t *testing.T) {
	items := []entity.OrderItem{{ProductID: "a"}, {ProductID: "b"}}
	assert.Nil(t, orders.PrimarySeller(items))
}

func TestCoalesceItems_AgrupaDuplicados(t *testing.T) {
	merged := orders.CoalesceItems([]orders.RequestedItem{
		{ProductID: "a", Quantity: 2},
		{ProductID: "b", Quantity: 1},
		{ProductID: "a", Quantity: 3},
	})
	require.Len(t, merged, 2, "las líneas repetidas deben agruparse antes de tocar stock")
	assert.Equal(t, orders.RequestedItem{ProductID: "a", Quantity: 5}, merged[0])
	assert.Equal(t, orders.RequestedItem{ProductID: "b", Quantity: 1}, merged[1])
}

func TestNewCode_Formato(t *testing.T) {
	code := orders.NewCode()
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d+-\d{1,4}$`), code)
}

func TestValidPhone(t *testing.T) {
	valid := []string{"3001234567", "+57 300 123", "310-555-99"}
	for _, p := range valid {
		assert.True(t, orders.ValidPhone(p), "teléfono %q debe ser válido", p)
	}
	invalid := []string{"12345", "abcdefghi", "3001234567890123", ""}
	for _, p := range invalid {
		assert.False(t, orders.ValidPhone(p), "teléfono %q debe ser inválido", p)
	}
}

func TestValidateShipping_CamposObligatorios(t *testing.T) {
	base := entity.Shipping{Name: "Ana", City: "Cali", Address: "Calle 1 # 2-3", Phone: "3001234567"}
	require.NoError(t, orders.ValidateShipping(base))

	missingName := base
	missingName.Name = ""
	assert.Error(t, orders.ValidateShipping(missingName))

	badPhone := base
	badPhone.Phone = "abc"
	assert.Error(t, orders.ValidateShipping(badPhone))
}

// ──────────────────────────────────────────────────────────────────────────────
// CanTransition: matriz de roles
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransition_Matriz(t *testing.T) {
	order := &entity.Order{
		Status: entity.OrderPending,
		Items: []entity.OrderItem{
			{ProductID: "a", SellerID: strptr("v1")},
			{ProductID: "b", SellerID: strptr("v2")},
		},
	}

	assert.True(t, orders.CanTransition(entity.RoleAdmin, "x", order, entity.OrderConfirmed),
		"admin puede cambiar cualquier pedido")
	assert.True(t, orders.CanTransition(entity.RoleVendedor, "v1", order, entity.OrderShipped),
		"vendedor con al menos una línea suya puede actualizar")
	assert.False(t, orders.CanTransition(entity.RoleVendedor, "v9", order, entity.OrderShipped),
		"vendedor ajeno no puede actualizar pedidos de otros")
	assert.False(t, orders.CanTransition(entity.RoleCliente, "c1", order, entity.OrderCancelled),
		"cliente no cambia estados")
	assert.False(t, orders.CanTransition(entity.RoleAdmin, "x", order, "inexistente"),
		"estado destino desconocido se rechaza")
}
