package messaging

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWriterConcurrent(t *testing.T) {
	producer := NewKafkaProducer([]string{"localhost:9092"})
	defer producer.Close()

	topics := []string{
		"storefront.cart",
		"storefront.notifications",
		"storefront.checkout",
		"storefront.audit",
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		topic := topics[i%len(topics)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				require.NotNil(t, producer.getWriter(topic))
			}
		}()
	}
	wg.Wait()

	assert.Len(t, producer.writers, len(topics))
}

func TestGetWriterReusesPerTopic(t *testing.T) {
	producer := NewKafkaProducer([]string{"localhost:9092"})
	defer producer.Close()

	first := producer.getWriter("storefront.cart")
	assert.Same(t, first, producer.getWriter("storefront.cart"))
	assert.NotSame(t, first, producer.getWriter("storefront.notifications"))
}

func TestSendMessageMarshalsValue(t *testing.T) {
	producer := NewKafkaProducer([]string{"localhost:9092"})
	defer producer.Close()

	// Unmarshalable payloads fail before any broker I/O.
	err := producer.SendMessage("storefront.cart", "s1", func() {})
	require.Error(t, err)
	assert.Contains(t, fmt.Sprintf("%v", err), "unsupported type")
}
