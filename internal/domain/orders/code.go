package orders

import (
	"fmt"
	"math/rand"
	"time"
)

// NewCode genera el código legible del pedido: ORD-<epoch ms>-<aleatorio 0..9999>.
// Se genera una sola vez al crear el pedido y es inmutable.
func NewCode() string {
	return fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), rand.Intn(10000))
}
