package command

import (
	"errors"
	"fmt"
	"strconv"
)

// ListingFormat 固定的 ls 输出模板：每个容器输出一行 7 元素 JSON 数组，
// 字段顺序 [id, image, command, createdAt, status, ports, names]，
// 与 internal/listing 的解析约定一一对应。
const ListingFormat = `[{{json .ID}},{{json .Image}},{{json .Command}},{{json .CreatedAt}},{{json .Status}},{{json .Ports}},{{json .Names}}]`

// ErrNoTarget 按容器操作在目标列表为空时返回
// （调用方应先通过 selection.Resolve 保证非空，这里是防御性不变量）
var ErrNoTarget = errors.New("没有目标容器，未构建任何命令")

// UnknownActionError 未知操作，属于编程错误而非用户错误
type UnknownActionError struct {
	Action Action
}

// Error 实现 error 接口
func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("未知的容器操作: %d", int(e.Action))
}

// Build 把 (操作, 选项, 目标列表) 转换为待执行的命令序列。
// 按容器操作为每个目标生成一条独立命令，顺序与 targets 一致；
// 集合操作（ls）生成单条命令。选项传 nil 时使用零值默认。
func Build(action Action, opts ActionOptions, targets []string) ([]BuiltCommand, error) {
	switch action {
	case ActionLs:
		o, _ := opts.(LsOptions)
		return []BuiltCommand{Ls(o)}, nil

	case ActionStart:
		return perTarget(action, targets, false, func(id string) []string {
			return []string{"container", "start", id}
		})

	case ActionStop:
		o, _ := opts.(StopOptions)
		return perTarget(action, targets, false, func(id string) []string {
			return appendTimeout([]string{"container", "stop"}, o.Timeout, id)
		})

	case ActionRestart:
		o, _ := opts.(StopOptions)
		return perTarget(action, targets, false, func(id string) []string {
			return appendTimeout([]string{"container", "restart"}, o.Timeout, id)
		})

	case ActionRm:
		o, _ := opts.(RmOptions)
		return perTarget(action, targets, false, func(id string) []string {
			args := []string{"container", "rm"}
			if o.Force {
				args = append(args, "-f")
			}
			if o.Link {
				args = append(args, "-l")
			}
			if o.Volumes {
				args = append(args, "-v")
			}
			return append(args, id)
		})

	case ActionKill:
		o, _ := opts.(KillOptions)
		return perTarget(action, targets, false, func(id string) []string {
			args := []string{"container", "kill"}
			if o.Signal != "" {
				args = append(args, "-s", o.Signal)
			}
			return append(args, id)
		})

	case ActionPause:
		return perTarget(action, targets, false, func(id string) []string {
			return []string{"container", "pause", id}
		})

	case ActionUnpause:
		return perTarget(action, targets, false, func(id string) []string {
			return []string{"container", "unpause", id}
		})

	case ActionRename:
		o, _ := opts.(RenameOptions)
		if o.NewName == "" {
			return nil, errors.New("重命名缺少新名称")
		}
		return perTarget(action, targets, false, func(id string) []string {
			return []string{"container", "rename", id, o.NewName}
		})

	case ActionLogs:
		o, _ := opts.(LogsOptions)
		return perTarget(action, targets, o.Follow, func(id string) []string {
			args := []string{"container", "logs"}
			if o.Follow {
				args = append(args, "-f")
			}
			if o.Tail > 0 {
				args = append(args, "--tail", strconv.Itoa(o.Tail))
			}
			return append(args, id)
		})

	case ActionInspect:
		return perTarget(action, targets, false, func(id string) []string {
			return []string{"container", "inspect", id}
		})

	case ActionDiff:
		return perTarget(action, targets, false, func(id string) []string {
			return []string{"container", "diff", id}
		})

	case ActionAttach:
		return perTarget(action, targets, true, func(id string) []string {
			return []string{"container", "attach", id}
		})

	case ActionShell:
		o, _ := opts.(ShellOptions)
		if o.Shell == "" {
			return nil, errors.New("缺少 shell 程序")
		}
		return perTarget(action, targets, true, func(id string) []string {
			return []string{"container", "exec", "-i", "-t", id, o.Shell}
		})

	case ActionCpFrom:
		o, _ := opts.(CpOptions)
		if err := checkCpOptions(o); err != nil {
			return nil, err
		}
		// 容器侧作为源：<id>:<path>，路径中的冒号不再解析
		return perTarget(action, targets, false, func(id string) []string {
			return []string{"container", "cp", id + ":" + o.ContainerPath, o.HostPath}
		})

	case ActionCpTo:
		o, _ := opts.(CpOptions)
		if err := checkCpOptions(o); err != nil {
			return nil, err
		}
		// 容器侧作为目标
		return perTarget(action, targets, false, func(id string) []string {
			return []string{"container", "cp", o.HostPath, id + ":" + o.ContainerPath}
		})

	default:
		return nil, &UnknownActionError{Action: action}
	}
}

// Ls 构建列出容器的命令。用户选项统一排在 --format 之前。
func Ls(opts LsOptions) BuiltCommand {
	args := []string{"container", "ls"}
	if opts.All {
		args = append(args, "-a")
	}
	for _, f := range opts.Filters {
		args = append(args, "--filter", f)
	}
	if opts.Last > 0 {
		args = append(args, "-n", strconv.Itoa(opts.Last))
	}
	if opts.NoTrunc {
		args = append(args, "--no-trunc")
	}
	args = append(args, "--format", ListingFormat)

	return BuiltCommand{
		Args:    args,
		Surface: ActionLs.String(),
	}
}

// perTarget 为每个目标构建一条命令，保持 targets 的输入顺序
func perTarget(action Action, targets []string, stream bool, argsFor func(id string) []string) ([]BuiltCommand, error) {
	if len(targets) == 0 {
		return nil, ErrNoTarget
	}

	cmds := make([]BuiltCommand, 0, len(targets))
	for _, id := range targets {
		cmds = append(cmds, BuiltCommand{
			Args:    argsFor(id),
			Target:  id,
			Surface: action.String() + " " + id,
			Stream:  stream,
		})
	}
	return cmds, nil
}

// appendTimeout 追加可选的 -t 参数，0 表示省略
func appendTimeout(args []string, timeout int, id string) []string {
	if timeout > 0 {
		args = append(args, "-t", strconv.Itoa(timeout))
	}
	return append(args, id)
}

func checkCpOptions(o CpOptions) error {
	if o.ContainerPath == "" {
		return errors.New("缺少容器内路径")
	}
	if o.HostPath == "" {
		return errors.New("缺少宿主机路径")
	}
	return nil
}
