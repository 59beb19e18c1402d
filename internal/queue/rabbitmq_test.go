package queue

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
)

func TestExtractRetries(t *testing.T) {
	casos := []struct {
		nome     string
		headers  amqp.Table
		esperado int
	}{
		{"headers nil", nil, 0},
		{"sem chave", amqp.Table{}, 0},
		{"int32", amqp.Table{"x-retries": int32(2)}, 2},
		{"int64", amqp.Table{"x-retries": int64(5)}, 5},
		{"float64", amqp.Table{"x-retries": float64(1)}, 1},
		{"tipo inesperado", amqp.Table{"x-retries": "3"}, 0},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if got := extractRetries(c.headers); got != c.esperado {
				t.Errorf("extractRetries = %d, esperado %d", got, c.esperado)
			}
		})
	}
}
