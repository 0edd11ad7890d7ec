package event

import (
	"sync"
	"time"
)

// Topic identifica o tipo de evento publicado no barramento
type Topic string

const (
	TopicSaleCompleted   Topic = "sale.completed"
	TopicSaleRefunded    Topic = "sale.refunded"
	TopicProductChanged  Topic = "product.changed"
	TopicCustomerChanged Topic = "customer.changed"
	TopicSettingsChanged Topic = "settings.changed"
)

// Event é a notificação entregue aos assinantes de um tópico
type Event struct {
	Topic   Topic
	Payload interface{}
	At      time.Time
}

type subscriber struct {
	id int
	ch chan Event
}

// Bus é o barramento de eventos em processo que desacopla o fluxo de
// checkout das visões de relatório e catálogo. A publicação nunca bloqueia:
// assinantes com buffer cheio perdem o evento e devem recarregar o estado
// na próxima leitura.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Topic][]subscriber
}

// NewBus cria um novo barramento de eventos
func NewBus() *Bus {
	return &Bus{
		subs: make(map[Topic][]subscriber),
	}
}

// Subscribe registra um assinante para um tópico. Retorna o canal de
// entrega e a função que cancela a assinatura.
func (b *Bus) Subscribe(topic Topic, buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}

	b.mu.Lock()
	b.nextID++
	sub := subscriber{id: b.nextID, ch: make(chan Event, buffer)}
	b.subs[topic] = append(b.subs[topic], sub)
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[topic]
		for i := range list {
			if list[i].id == sub.id {
				b.subs[topic] = append(list[:i], list[i+1:]...)
				close(sub.ch)
				return
			}
		}
	}

	return sub.ch, cancel
}

// Publish entrega um evento a todos os assinantes do tópico sem bloquear
func (b *Bus) Publish(topic Topic, payload interface{}) {
	evt := Event{Topic: topic, Payload: payload, At: time.Now()}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs[topic] {
		select {
		case sub.ch <- evt:
		default:
			// Assinante lento: o evento é descartado
		}
	}
}
