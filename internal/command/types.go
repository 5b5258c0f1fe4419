package command

import "strings"

// Action 表示一个容器操作（对应 docker container 的子命令）
type Action int

const (
	ActionUnknown Action = iota
	ActionLs              // 列出容器
	ActionStart           // 启动容器
	ActionStop            // 停止容器
	ActionRestart         // 重启容器
	ActionRm              // 删除容器
	ActionKill            // 杀死容器
	ActionPause           // 暂停容器
	ActionUnpause         // 恢复容器
	ActionRename          // 重命名容器
	ActionLogs            // 查看日志
	ActionInspect         // 查看详情（原始 JSON）
	ActionDiff            // 查看文件系统变更
	ActionAttach          // 附加到容器主进程
	ActionShell           // 进入交互式 shell
	ActionCpFrom          // 从容器复制文件到宿主机
	ActionCpTo            // 从宿主机复制文件到容器
)

// String 返回操作对应的子命令名称（也用于输出面板命名）
func (a Action) String() string {
	switch a {
	case ActionLs:
		return "ls"
	case ActionStart:
		return "start"
	case ActionStop:
		return "stop"
	case ActionRestart:
		return "restart"
	case ActionRm:
		return "rm"
	case ActionKill:
		return "kill"
	case ActionPause:
		return "pause"
	case ActionUnpause:
		return "unpause"
	case ActionRename:
		return "rename"
	case ActionLogs:
		return "logs"
	case ActionInspect:
		return "inspect"
	case ActionDiff:
		return "diff"
	case ActionAttach:
		return "attach"
	case ActionShell:
		return "shell"
	case ActionCpFrom:
		return "cp-from"
	case ActionCpTo:
		return "cp-to"
	default:
		return "unknown"
	}
}

// BuiltCommand 一条构建完成的 docker 命令
// Args 是 docker 可执行文件之后的全部参数 token，可直接交给执行层，
// 不做任何 shell 引号处理（由消费方按需转义）。
type BuiltCommand struct {
	Args    []string // 有序参数 token，如 ["container", "stop", "-t", "5", "abc123"]
	Target  string   // 目标容器 ID（集合操作如 ls 为空）
	Surface string   // 输出面板名称，如 "diff abc123"，同名面板复用
	Stream  bool     // 流式/长时命令（attach、logs -f、shell），不等待输出返回
}

// String 返回命令的可读形式（用于状态栏展示和日志）
func (c BuiltCommand) String() string {
	return strings.Join(c.Args, " ")
}

// ActionOptions 各操作的选项结构实现此接口，供 Build 统一分发
type ActionOptions interface {
	isOptions()
}

// LsOptions 列出容器的选项
type LsOptions struct {
	All     bool     // 包含已停止的容器（-a）
	Filters []string // 过滤条件，如 "status=exited"（--filter）
	Last    int      // 只显示最近创建的 N 个，0 表示不限制（-n）
	NoTrunc bool     // 不截断输出（--no-trunc）
}

// StopOptions 停止/重启容器的选项
type StopOptions struct {
	Timeout int // 杀死前等待的秒数，0 表示不传 -t（使用 docker 默认值）
}

// RmOptions 删除容器的选项，三个布尔各自独立
type RmOptions struct {
	Force   bool // 强制删除运行中的容器（-f）
	Link    bool // 删除指定链接（-l）
	Volumes bool // 一并删除匿名卷（-v）
}

// KillOptions 杀死容器的选项
type KillOptions struct {
	Signal string // 信号名，空表示不传 -s（docker 默认 KILL）
}

// LogsOptions 日志选项
type LogsOptions struct {
	Follow bool // 跟踪模式（-f），命令转为流式
	Tail   int  // 显示最后 N 行，0 表示全部（--tail）
}

// RenameOptions 重命名选项
type RenameOptions struct {
	NewName string // 新名称，必填
}

// ShellOptions 交互式 shell 选项
type ShellOptions struct {
	Shell string // 容器内 shell 程序，如 /bin/sh，必填
}

// CpOptions 文件复制选项
// 两个路径均按原样透传，不解析其中的冒号或空格。
type CpOptions struct {
	ContainerPath string // 容器内路径
	HostPath      string // 宿主机路径
}

func (LsOptions) isOptions()     {}
func (StopOptions) isOptions()   {}
func (RmOptions) isOptions()     {}
func (KillOptions) isOptions()   {}
func (LogsOptions) isOptions()   {}
func (RenameOptions) isOptions() {}
func (ShellOptions) isOptions()  {}
func (CpOptions) isOptions()     {}
