package order_number

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	prefix = "SE"
	digits = 8
)

// OrderNumberFactory выдаёт человекочитаемые номера заказов вида
// SE12345678. Номера случайные, уникальность обеспечивает уникальный
// индекс в БД.
type OrderNumberFactory struct{}

func New() *OrderNumberFactory {
	return &OrderNumberFactory{}
}

func (f *OrderNumberFactory) Generate() string {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand не отказывает на поддерживаемых платформах
		panic(fmt.Sprintf("order number generation: %v", err))
	}

	return fmt.Sprintf("%s%0*d", prefix, digits, n)
}
