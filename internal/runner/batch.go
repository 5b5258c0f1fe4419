package runner

import (
	"context"

	"docktab/internal/command"
)

// TargetResult 批量执行中单个目标的结果，成功与失败都逐目标归属
type TargetResult struct {
	Target string // 目标容器 ID
	Output string // 成功时的输出文本
	Err    error  // 失败时的错误（CommandError，stderr 原文作为消息）
}

// RunBatch 逐条执行命令。各目标相互独立：某个目标失败不会中断
// 其余目标，错误收集在对应结果里，批量结束后统一上报，绝不静默丢弃。
func RunBatch(ctx context.Context, r Runner, cmds []command.BuiltCommand) []TargetResult {
	results := make([]TargetResult, 0, len(cmds))

	for _, c := range cmds {
		res, err := r.Run(ctx, c)

		tr := TargetResult{Target: c.Target, Err: err}
		if res != nil {
			tr.Output = res.Output
		}
		results = append(results, tr)
	}

	return results
}

// FailedTargets 过滤出失败的结果，供上层汇总展示
func FailedTargets(results []TargetResult) []TargetResult {
	failed := make([]TargetResult, 0)
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
