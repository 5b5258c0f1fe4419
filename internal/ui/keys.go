package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap 定义容器表格的快捷键映射（使用 bubbles/key 管理）
type KeyMap struct {
	// 全局快捷键
	Quit key.Binding
	Back key.Binding

	// 导航快捷键
	Up   key.Binding
	Down key.Binding

	// 选择与列表
	Mark      key.Binding
	Refresh   key.Binding
	ToggleAll key.Binding
	SortNext  key.Binding
	SortFlip  key.Binding

	// 容器操作
	Start   key.Binding
	Stop    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Kill    key.Binding
	Remove  key.Binding
	Rename  key.Binding

	// 查看类操作
	Logs    key.Binding
	Follow  key.Binding
	Inspect key.Binding
	Diff    key.Binding

	// 交互类操作
	Attach key.Binding
	Shell  key.Binding

	// 文件复制
	CopyFrom key.Binding
	CopyTo   key.Binding
}

// DefaultKeyMap 返回默认的快捷键映射
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "退出程序"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "关闭面板/取消"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "向上移动"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "向下移动"),
		),

		Mark: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "标记/取消标记"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "刷新列表"),
		),
		ToggleAll: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "显示/隐藏已停止容器"),
		),
		SortNext: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "切换排序列"),
		),
		SortFlip: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "切换排序方向"),
		),

		Start: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "启动容器"),
		),
		Stop: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "停止容器"),
		),
		Pause: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "暂停/恢复容器"),
		),
		Restart: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "重启容器"),
		),
		Kill: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "强杀容器"),
		),
		Remove: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "删除容器"),
		),
		Rename: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "重命名容器"),
		),

		Logs: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "查看日志"),
		),
		Follow: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "跟随日志"),
		),
		Inspect: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "检查容器"),
		),
		Diff: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "查看文件变更"),
		),

		Attach: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "附加到容器"),
		),
		Shell: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "进入 Shell"),
		),

		CopyFrom: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "从容器复制文件"),
		),
		CopyTo: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "复制文件到容器"),
		),
	}
}
