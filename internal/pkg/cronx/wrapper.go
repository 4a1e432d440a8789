package cronx

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/gotomicro/ego/task/ejob"
)

// FuncJob 把 NamedJob 包装成 ecron 能够调度的任务，并记录日志
func FuncJob(job ecron.NamedJob) ecron.FuncJob {
	name := job.Name()
	return func(ctx context.Context) error {
		start := time.Now()
		elog.DefaultLogger.Debug("开始运行",
			elog.String("cronjob", name))
		err := job.Run(ctx)
		if err != nil {
			elog.DefaultLogger.Error("执行失败",
				elog.FieldErr(err),
				elog.String("cronjob", name))
			return err
		}
		elog.DefaultLogger.Debug("结束运行",
			elog.String("cronjob", name),
			elog.FieldKey("运行时间"),
			elog.FieldCost(time.Since(start)))
		return nil
	}
}

// OneShot 让定时任务也可以通过 --job 参数手动执行一次
func OneShot(name string, fn ecron.FuncJob) ejob.Ejob {
	return ejob.Job(name, func(ctx ejob.Context) error {
		return fn(ctx.Ctx)
	})
}
