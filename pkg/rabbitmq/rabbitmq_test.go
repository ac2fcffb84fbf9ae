package rabbitmq

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"

	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAcknowledger struct {
	acked   []uint64
	nacked  []uint64
	requeue []bool
}

func (a *recordingAcknowledger) Ack(tag uint64, _ bool) error {
	a.acked = append(a.acked, tag)
	return nil
}

func (a *recordingAcknowledger) Nack(tag uint64, _ bool, requeue bool) error {
	a.nacked = append(a.nacked, tag)
	a.requeue = append(a.requeue, requeue)
	return nil
}

func (a *recordingAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func TestEncode(t *testing.T) {
	msg, err := encode(map[string]interface{}{"type": "purchase.created", "quantity": 2})
	require.NoError(t, err)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "purchase.created", decoded["type"])

	_, err = encode(make(chan int))
	assert.Error(t, err)
}

func TestDispatch(t *testing.T) {
	c := &Client{log: logger.Nop()}
	ack := &recordingAcknowledger{}
	failing := func([]byte) error { return errors.New("boom") }

	c.dispatch(amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte(`{}`)}, func([]byte) error { return nil })
	c.dispatch(amqp.Delivery{Acknowledger: ack, DeliveryTag: 2}, failing)
	c.dispatch(amqp.Delivery{Acknowledger: ack, DeliveryTag: 3, Redelivered: true}, failing)

	assert.Equal(t, []uint64{1}, ack.acked)
	assert.Equal(t, []uint64{2, 3}, ack.nacked)
	assert.Equal(t, []bool{true, false}, ack.requeue)
}

func TestPublishWithoutChannel(t *testing.T) {
	c := &Client{log: logger.Nop()}
	assert.Error(t, c.Publish("purchase_events", map[string]string{"a": "b"}))
}
