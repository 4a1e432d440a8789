package cronx

import (
	"context"
	"time"

	"github.com/gotomicro/ego/task/ecron"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 统计定时任务的运行次数和耗时
type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

func NewMetricsBuilder(reg prometheus.Registerer) *MetricsBuilder {
	factory := promauto.With(reg)
	summaryVec := factory.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "cron_job_duration_seconds",
			Help: "Cron job duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		},
		[]string{"job", "status"},
	)
	counterVec := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cron_job_runs_total",
			Help: "Total number of cron job runs",
		},
		[]string{"job", "status"},
	)
	return &MetricsBuilder{
		summaryVec: summaryVec,
		counterVec: counterVec,
	}
}

func (b *MetricsBuilder) Build(fn ecron.FuncJob, name string) ecron.FuncJob {
	return func(ctx context.Context) error {
		start := time.Now()
		err := fn(ctx)
		status := "success"
		if err != nil {
			status = "failed"
		}
		b.summaryVec.WithLabelValues(name, status).Observe(time.Since(start).Seconds())
		b.counterVec.WithLabelValues(name, status).Inc()
		return err
	}
}
