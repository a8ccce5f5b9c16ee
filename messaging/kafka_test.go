package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	skafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []skafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...skafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestPublish(t *testing.T) {
	fw := &fakeWriter{}
	p := NewKafkaProducerWithWriter(fw)

	err := p.Publish(context.Background(), "user-10", map[string]string{"title": "Work order updated"})
	require.NoError(t, err)
	require.Len(t, fw.msgs, 1)
	assert.Equal(t, []byte("user-10"), fw.msgs[0].Key)

	var body map[string]string
	require.NoError(t, json.Unmarshal(fw.msgs[0].Value, &body))
	assert.Equal(t, "Work order updated", body["title"])
}

func TestPublishWriteError(t *testing.T) {
	fw := &fakeWriter{err: errors.New("broker unavailable")}
	p := NewKafkaProducerWithWriter(fw)

	err := p.Publish(context.Background(), "user-10", map[string]string{"a": "b"})
	assert.EqualError(t, err, "broker unavailable")
}

func TestPublishUnmarshalable(t *testing.T) {
	p := NewKafkaProducerWithWriter(&fakeWriter{})
	err := p.Publish(context.Background(), "k", make(chan int))
	assert.Error(t, err)
}
