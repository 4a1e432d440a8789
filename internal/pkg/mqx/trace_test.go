package mqx

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	testioc "github.com/ecodeclub/workaudit/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type testEvent struct {
	Id   string `json:"id"`
	Step int    `json:"step"`
}

func TestTraceMQ_GeneralProducer(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	old := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	t.Cleanup(func() {
		otel.SetTracerProvider(old)
	})

	const topic = "trace_test_events"
	var q mq.MQ = NewTraceMQ(testioc.InitMQ(topic))
	consumer, err := q.Consumer(topic, "trace_test")
	require.NoError(t, err)
	producer, err := NewGeneralProducer[testEvent](q, topic, WithKeyFunc(func(evt testEvent) string {
		return evt.Id
	}))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, producer.Produce(ctx, testEvent{Id: "w-1", Step: 2}))

	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("w-1"), msg.Key)
	var evt testEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, testEvent{Id: "w-1", Step: 2}, evt)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "mq.produce", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
}
