package ui

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docktab/internal/command"
	"docktab/internal/config"
	"docktab/internal/listing"
	"docktab/internal/runner"
	"docktab/internal/selection"
	"docktab/internal/session"
)

// 列表视图样式 - 使用自适应颜色，不硬编码背景色
var (
	statusBarLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Bold(true)

	statusBarKeyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("81"))

	successMsgStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("82")).
		Bold(true)

	errorMsgStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	hintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	separatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	markStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("213")).
		Bold(true)

	promptStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("81")).
		Bold(true)

	dialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Width(56)

	stateBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Width(66)
)

// sortColumns 可用排序列，o 键按此顺序循环
var sortColumns = []string{"id", "names", "image", "command", "created", "status", "ports"}

// promptKind 底部输入栏的用途
type promptKind int

const (
	promptNone promptKind = iota
	promptRename
	promptCopyFrom
	promptCopyTo
)

// ListView 容器表格视图：列表数据、标记集、排序状态与操作分发
type ListView struct {
	cfg      *config.Config
	run      runner.Runner
	sessions *session.Registry

	// UI 尺寸
	width  int
	height int

	// 数据状态。rows 保持 docker 输出的原始顺序，
	// viewRows 是当前排序下的展示顺序。
	rows     []listing.Row
	viewRows []listing.Row
	loading  bool
	errorMsg string

	// 标记集：按标记先后顺序保存容器 ID
	marked []string

	// 排序状态（仅影响展示，不改动数据）
	sortColumn string
	sortDesc   bool
	showAll    bool

	// 状态消息
	statusMsg  string
	statusTime time.Time

	// 删除确认对话框
	showConfirm      bool
	confirmTargets   []string
	confirmSelection int // 0=Cancel 1=OK

	// 底部输入栏（重命名、文件复制路径）。重命名多目标时逐个询问。
	prompt        promptKind
	promptTargets []string
	promptInput   string

	// 活跃的流式读取句柄，面板名称 -> 读取端
	streams map[string]io.ReadCloser

	tableModel  table.Model
	viewer      *SurfaceViewer
	errorDialog *ErrorDialog
	keys        KeyMap

	lastRefreshTime time.Time
}

// NewListView 创建容器表格视图
func NewListView(cfg *config.Config, run runner.Runner, sessions *session.Registry) *ListView {
	columns := []table.Column{
		{Title: " ", Width: 2},
		{Title: "CONTAINER ID", Width: 14},
		{Title: "NAMES", Width: 18},
		{Title: "IMAGE", Width: 25},
		{Title: "COMMAND", Width: 22},
		{Title: "CREATED", Width: 20},
		{Title: "STATUS", Width: 22},
		{Title: "PORTS", Width: 30},
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(s)

	return &ListView{
		cfg:        cfg,
		run:        run,
		sessions:   sessions,
		sortColumn: cfg.DefaultSortColumn,
		sortDesc:   cfg.SortDescending,
		showAll:    cfg.ShowAll,
		streams:    make(map[string]io.ReadCloser),
		tableModel: t,
		viewer:     NewSurfaceViewer(),
		errorDialog: NewErrorDialog(),
		keys:       DefaultKeyMap(),
	}
}

// Init 初始化视图并加载列表
func (v *ListView) Init() tea.Cmd {
	v.loading = true
	return v.loadListing()
}

// 消息类型

// listingLoadedMsg 列表加载完成
type listingLoadedMsg struct {
	rows []listing.Row
}

// listingErrorMsg 列表加载失败
type listingErrorMsg struct {
	err error
}

// batchDoneMsg 批量操作完成，成功与失败逐目标归属
type batchDoneMsg struct {
	action  command.Action
	results []runner.TargetResult
}

// surfaceReadyMsg 同步查看类操作的输出就绪
type surfaceReadyMsg struct {
	name    string
	content string
}

// surfaceErrorMsg 查看类操作失败
type surfaceErrorMsg struct {
	name string
	err  error
}

// streamChunkMsg 流式会话的一段输出。sessionID 用于区分同名面板上
// 被替换掉的旧会话，旧会话的尾包直接丢弃。
type streamChunkMsg struct {
	name      string
	sessionID string
	chunk     string
}

// streamDoneMsg 流式会话结束
type streamDoneMsg struct {
	name      string
	sessionID string
}

// execDoneMsg 交互式子进程（attach、shell）退出
type execDoneMsg struct {
	surface string
	err     error
}

// statusClearMsg 清除状态消息
type statusClearMsg struct{}

// Update 处理消息并更新视图状态
func (v *ListView) Update(msg tea.Msg) (*ListView, tea.Cmd) {
	switch msg := msg.(type) {
	case listingLoadedMsg:
		v.rows = msg.rows
		v.loading = false
		v.errorMsg = ""
		v.lastRefreshTime = time.Now()
		v.pruneMarks()
		v.rebuildTable()
		return v, nil

	case listingErrorMsg:
		v.loading = false
		v.errorMsg = msg.err.Error()
		return v, nil

	case batchDoneMsg:
		failed := runner.FailedTargets(msg.results)
		if len(failed) > 0 {
			v.errorDialog.ShowBatchErrors(msg.action.String(), failed)
		} else {
			v.setStatus(fmt.Sprintf("✅ %s: %d 个目标完成", msg.action, len(msg.results)))
		}
		v.loading = true
		return v, tea.Batch(v.loadListing(), v.clearStatusAfter(3*time.Second))

	case surfaceReadyMsg:
		v.viewer.SetSize(v.width, v.height)
		v.viewer.Show(msg.name, msg.content)
		return v, nil

	case surfaceErrorMsg:
		v.errorDialog.ShowError(fmt.Sprintf("%s: %v", msg.name, msg.err))
		return v, nil

	case streamChunkMsg:
		if s := v.sessions.Get(msg.name); s == nil || s.ID != msg.sessionID {
			return v, nil
		}
		v.viewer.Append(msg.name, msg.chunk)
		return v, v.readStream(msg.name, msg.sessionID)

	case streamDoneMsg:
		if s := v.sessions.Get(msg.name); s == nil || s.ID != msg.sessionID {
			return v, nil
		}
		v.sessions.Stop(msg.name)
		delete(v.streams, msg.name)
		v.viewer.Append(msg.name, "--- 会话已结束 ---")
		return v, nil

	case execDoneMsg:
		if msg.err != nil {
			v.errorDialog.ShowError(fmt.Sprintf("%s: %v", msg.surface, msg.err))
		}
		v.loading = true
		return v, v.loadListing()

	case statusClearMsg:
		if time.Since(v.statusTime) >= 3*time.Second {
			v.statusMsg = ""
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

// handleKey 处理按键
func (v *ListView) handleKey(msg tea.KeyMsg) (*ListView, tea.Cmd) {
	// 弹窗与面板优先拦截
	if v.errorDialog.Update(msg) {
		return v, nil
	}
	if v.viewer.IsVisible() && v.viewer.Update(msg) {
		return v, nil
	}
	if v.showConfirm {
		return v.handleConfirmKey(msg)
	}
	if v.prompt != promptNone {
		return v.handlePromptKey(msg)
	}

	switch {
	case key.Matches(msg, v.keys.Refresh):
		v.loading = true
		v.errorMsg = ""
		return v, v.loadListing()

	case key.Matches(msg, v.keys.Mark):
		if r := v.selectedRow(); r != nil {
			v.toggleMark(r.ID)
			v.rebuildTable()
		}
		return v, nil

	case key.Matches(msg, v.keys.ToggleAll):
		v.showAll = !v.showAll
		v.loading = true
		return v, v.loadListing()

	case key.Matches(msg, v.keys.SortNext):
		v.sortColumn = nextSortColumn(v.sortColumn)
		v.rebuildTable()
		return v, nil

	case key.Matches(msg, v.keys.SortFlip):
		v.sortDesc = !v.sortDesc
		v.rebuildTable()
		return v, nil

	case key.Matches(msg, v.keys.Start):
		return v, v.runBatch(command.ActionStart, nil)

	case key.Matches(msg, v.keys.Stop):
		return v, v.runBatch(command.ActionStop, command.StopOptions{Timeout: 10})

	case key.Matches(msg, v.keys.Pause):
		return v, v.togglePause()

	case key.Matches(msg, v.keys.Restart):
		return v, v.runBatch(command.ActionRestart, command.StopOptions{Timeout: 10})

	case key.Matches(msg, v.keys.Kill):
		return v, v.runBatch(command.ActionKill, nil)

	case key.Matches(msg, v.keys.Remove):
		return v.showRemoveConfirm()

	case key.Matches(msg, v.keys.Rename):
		return v.startPrompt(promptRename)

	case key.Matches(msg, v.keys.CopyFrom):
		return v.startPrompt(promptCopyFrom)

	case key.Matches(msg, v.keys.CopyTo):
		return v.startPrompt(promptCopyTo)

	case key.Matches(msg, v.keys.Logs):
		return v, v.viewSurfaces(command.ActionLogs, command.LogsOptions{Tail: 200})

	case key.Matches(msg, v.keys.Inspect):
		return v, v.viewSurfaces(command.ActionInspect, nil)

	case key.Matches(msg, v.keys.Diff):
		return v, v.viewSurfaces(command.ActionDiff, nil)

	case key.Matches(msg, v.keys.Follow):
		return v, v.followLogs()

	case key.Matches(msg, v.keys.Attach):
		return v, v.execInteractive(command.ActionAttach, nil)

	case key.Matches(msg, v.keys.Shell):
		return v, v.execInteractive(command.ActionShell, command.ShellOptions{Shell: v.cfg.DefaultShell})

	default:
		v.tableModel, _ = v.tableModel.Update(msg)
		return v, nil
	}
}

// handleConfirmKey 处理删除确认对话框的按键
func (v *ListView) handleConfirmKey(msg tea.KeyMsg) (*ListView, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "tab", "h", "l":
		v.confirmSelection = 1 - v.confirmSelection
		return v, nil
	case "enter":
		targets := v.confirmTargets
		ok := v.confirmSelection == 1
		v.showConfirm = false
		v.confirmTargets = nil
		v.confirmSelection = 0

		if ok {
			// 确认即强制删除：目标可能处于运行状态
			return v, v.runBatchOn(command.ActionRm, command.RmOptions{Force: true}, targets)
		}
		return v, nil
	case "esc":
		v.showConfirm = false
		v.confirmTargets = nil
		v.confirmSelection = 0
		return v, nil
	}
	return v, nil
}

// handlePromptKey 处理底部输入栏的按键
func (v *ListView) handlePromptKey(msg tea.KeyMsg) (*ListView, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// 取消当前目标及排队中的其余目标
		v.resetPrompt()
		return v, nil
	case tea.KeyEnter:
		return v.submitPrompt()
	case tea.KeyBackspace:
		if len(v.promptInput) > 0 {
			v.promptInput = v.promptInput[:len(v.promptInput)-1]
		}
		return v, nil
	case tea.KeySpace:
		v.promptInput += " "
		return v, nil
	case tea.KeyRunes:
		v.promptInput += string(msg.Runes)
		return v, nil
	}
	return v, nil
}

// submitPrompt 提交输入栏。多目标重命名逐个处理，
// 提交当前目标后继续询问下一个。
func (v *ListView) submitPrompt() (*ListView, tea.Cmd) {
	input := strings.TrimSpace(v.promptInput)
	if input == "" || len(v.promptTargets) == 0 {
		v.resetPrompt()
		return v, nil
	}

	target := v.promptTargets[0]
	kind := v.prompt

	var opts command.ActionOptions
	var action command.Action

	switch kind {
	case promptRename:
		action = command.ActionRename
		opts = command.RenameOptions{NewName: input}
	case promptCopyFrom, promptCopyTo:
		containerPath, hostPath, err := parseCopyInput(input)
		if err != nil {
			v.errorDialog.ShowError(err.Error())
			return v, nil
		}
		if kind == promptCopyFrom {
			action = command.ActionCpFrom
		} else {
			action = command.ActionCpTo
		}
		opts = command.CpOptions{ContainerPath: containerPath, HostPath: hostPath}
	default:
		v.resetPrompt()
		return v, nil
	}

	// 推进到下一个目标
	v.promptTargets = v.promptTargets[1:]
	v.promptInput = ""
	if len(v.promptTargets) == 0 {
		v.prompt = promptNone
	}

	return v, v.runBatchOn(action, opts, []string{target})
}

// resetPrompt 清空输入栏状态
func (v *ListView) resetPrompt() {
	v.prompt = promptNone
	v.promptTargets = nil
	v.promptInput = ""
}

// parseCopyInput 解析复制路径输入："<容器内路径> <宿主机路径>"
func parseCopyInput(input string) (containerPath, hostPath string, err error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("需要两个路径：<容器内路径> <宿主机路径>，收到 %q", input)
	}
	return fields[0], fields[1], nil
}

// startPrompt 打开输入栏，多目标时排队逐个询问
func (v *ListView) startPrompt(kind promptKind) (*ListView, tea.Cmd) {
	targets, err := v.resolveTargets()
	if err != nil {
		v.errorDialog.ShowError(err.Error())
		return v, nil
	}
	v.prompt = kind
	v.promptTargets = targets
	v.promptInput = ""
	return v, nil
}

// showRemoveConfirm 显示删除确认对话框
func (v *ListView) showRemoveConfirm() (*ListView, tea.Cmd) {
	targets, err := v.resolveTargets()
	if err != nil {
		v.errorDialog.ShowError(err.Error())
		return v, nil
	}
	v.showConfirm = true
	v.confirmTargets = targets
	v.confirmSelection = 0 // 默认选中 Cancel
	return v, nil
}

// 选择与标记

// selectedRow 当前光标所在行
func (v *ListView) selectedRow() *listing.Row {
	if len(v.viewRows) == 0 {
		return nil
	}
	i := v.tableModel.Cursor()
	if i < 0 || i >= len(v.viewRows) {
		return nil
	}
	return &v.viewRows[i]
}

// resolveTargets 确定操作目标：有标记用标记（按标记顺序），
// 否则落到光标行
func (v *ListView) resolveTargets() ([]string, error) {
	cursor := ""
	if r := v.selectedRow(); r != nil {
		cursor = r.ID
	}
	return selection.Resolve(v.marked, cursor)
}

// toggleMark 切换标记。新标记追加到末尾，保持标记先后顺序。
func (v *ListView) toggleMark(id string) {
	for i, m := range v.marked {
		if m == id {
			v.marked = append(v.marked[:i], v.marked[i+1:]...)
			return
		}
	}
	v.marked = append(v.marked, id)
}

// isMarked 检查容器是否已标记
func (v *ListView) isMarked(id string) bool {
	for _, m := range v.marked {
		if m == id {
			return true
		}
	}
	return false
}

// pruneMarks 刷新后剔除已不存在的容器标记
func (v *ListView) pruneMarks() {
	present := make(map[string]bool, len(v.rows))
	for _, r := range v.rows {
		present[r.ID] = true
	}

	kept := v.marked[:0]
	for _, m := range v.marked {
		if present[m] {
			kept = append(kept, m)
		}
	}
	v.marked = kept
}

// 排序

// nextSortColumn 循环到下一个排序列
func nextSortColumn(current string) string {
	for i, c := range sortColumns {
		if c == current {
			return sortColumns[(i+1)%len(sortColumns)]
		}
	}
	return sortColumns[0]
}

// sortRows 按列排序，返回新切片不改动原顺序。稳定排序：
// 同键值的行保持 docker 输出的相对顺序。
func sortRows(rows []listing.Row, column string, desc bool) []listing.Row {
	out := make([]listing.Row, len(rows))
	copy(out, rows)

	keyOf := func(r listing.Row) string {
		switch column {
		case "id":
			return r.ID
		case "names":
			return r.Names
		case "image":
			return r.Image
		case "command":
			return r.Command
		case "status":
			return r.Status
		case "ports":
			return r.Ports
		default:
			return r.Image
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		if column == "created" {
			less = out[i].Created.Before(out[j].Created)
		} else {
			less = keyOf(out[i]) < keyOf(out[j])
		}
		if desc {
			return !less
		}
		return less
	})

	return out
}

// rebuildTable 重新计算展示顺序并刷新表格数据
func (v *ListView) rebuildTable() {
	v.viewRows = sortRows(v.rows, v.sortColumn, v.sortDesc)

	rows := make([]table.Row, len(v.viewRows))
	for i, r := range v.viewRows {
		mark := " "
		if v.isMarked(r.ID) {
			mark = markStyle.Render("●")
		}
		rows[i] = table.Row{
			mark,
			r.ID,
			r.Names,
			r.Image,
			r.Command,
			r.CreatedAt,
			r.Status,
			r.Ports,
		}
	}
	v.tableModel.SetRows(rows)
}

// 操作分发

// loadListing 构建 ls 命令并解析输出
func (v *ListView) loadListing() tea.Cmd {
	cmd := command.Ls(command.LsOptions{
		All:     v.showAll,
		Filters: v.cfg.DefaultFilters,
	})
	timeout := v.cfg.CommandTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		res, err := v.run.Run(ctx, cmd)
		if err != nil {
			return listingErrorMsg{err: err}
		}

		rows, err := listing.Parse(res.Output)
		if err != nil {
			return listingErrorMsg{err: err}
		}
		return listingLoadedMsg{rows: rows}
	}
}

// runBatch 对当前选择执行动作
func (v *ListView) runBatch(action command.Action, opts command.ActionOptions) tea.Cmd {
	targets, err := v.resolveTargets()
	if err != nil {
		v.errorDialog.ShowError(err.Error())
		return nil
	}
	return v.runBatchOn(action, opts, targets)
}

// runBatchOn 对指定目标逐个执行动作，失败不中断其余目标
func (v *ListView) runBatchOn(action command.Action, opts command.ActionOptions, targets []string) tea.Cmd {
	cmds, err := command.Build(action, opts, targets)
	if err != nil {
		v.errorDialog.ShowError(err.Error())
		return nil
	}

	// 整批共用超时，逐目标累加
	timeout := v.cfg.CommandTimeout * time.Duration(len(cmds))
	run := v.run

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		results := runner.RunBatch(ctx, run, cmds)
		return batchDoneMsg{action: action, results: results}
	}
}

// togglePause 按光标行状态决定暂停还是恢复
func (v *ListView) togglePause() tea.Cmd {
	action := command.ActionPause
	if r := v.selectedRow(); r != nil && strings.Contains(r.Status, "Paused") {
		action = command.ActionUnpause
	}
	return v.runBatch(action, nil)
}

// viewSurfaces 执行同步查看类操作（logs、inspect、diff），
// 每个目标的输出进入以 "动作 ID" 命名的面板
func (v *ListView) viewSurfaces(action command.Action, opts command.ActionOptions) tea.Cmd {
	targets, err := v.resolveTargets()
	if err != nil {
		v.errorDialog.ShowError(err.Error())
		return nil
	}

	cmds, err := command.Build(action, opts, targets)
	if err != nil {
		v.errorDialog.ShowError(err.Error())
		return nil
	}

	timeout := v.cfg.CommandTimeout
	run := v.run

	teaCmds := make([]tea.Cmd, 0, len(cmds))
	for _, c := range cmds {
		c := c
		teaCmds = append(teaCmds, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			res, err := run.Run(ctx, c)
			if err != nil {
				return surfaceErrorMsg{name: c.Surface, err: err}
			}
			return surfaceReadyMsg{name: c.Surface, content: res.Output}
		})
	}

	return tea.Batch(teaCmds...)
}

// followLogs 启动日志跟随。对同一目标再次跟随时，
// 旧会话被注册表关闭并替换，面板复用。
func (v *ListView) followLogs() tea.Cmd {
	targets, err := v.resolveTargets()
	if err != nil {
		v.errorDialog.ShowError(err.Error())
		return nil
	}

	cmds, err := command.Build(command.ActionLogs, command.LogsOptions{Follow: true, Tail: 100}, targets)
	if err != nil {
		v.errorDialog.ShowError(err.Error())
		return nil
	}

	teaCmds := make([]tea.Cmd, 0, len(cmds))
	for _, c := range cmds {
		reader, err := v.run.Stream(context.Background(), c)
		if err != nil {
			v.errorDialog.ShowError(fmt.Sprintf("%s: %v", c.Surface, err))
			continue
		}

		s := v.sessions.Open(c.Surface, reader)
		v.streams[c.Surface] = reader

		v.viewer.SetSize(v.width, v.height)
		v.viewer.Show(c.Surface, "")

		teaCmds = append(teaCmds, v.readStream(c.Surface, s.ID))
	}

	return tea.Batch(teaCmds...)
}

// readStream 读取流式会话的下一段输出
func (v *ListView) readStream(name, sessionID string) tea.Cmd {
	reader, ok := v.streams[name]
	if !ok {
		return nil
	}

	return func() tea.Msg {
		buf := make([]byte, 4096)
		n, err := reader.Read(buf)
		if n > 0 {
			return streamChunkMsg{name: name, sessionID: sessionID, chunk: string(buf[:n])}
		}
		if err != nil {
			return streamDoneMsg{name: name, sessionID: sessionID}
		}
		return streamChunkMsg{name: name, sessionID: sessionID}
	}
}

// execInteractive 交互式操作（attach、shell）接管整个终端，
// 子进程退出后回到列表。只作用于光标行。
func (v *ListView) execInteractive(action command.Action, opts command.ActionOptions) tea.Cmd {
	r := v.selectedRow()
	if r == nil {
		v.errorDialog.ShowError(selection.ErrEmptySelection.Error())
		return nil
	}

	cmds, err := command.Build(action, opts, []string{r.ID})
	if err != nil {
		v.errorDialog.ShowError(err.Error())
		return nil
	}
	c := cmds[0]

	proc := exec.Command(v.cfg.DockerBinary, c.Args...)
	return tea.ExecProcess(proc, func(err error) tea.Msg {
		return execDoneMsg{surface: c.Surface, err: err}
	})
}

// 状态消息

func (v *ListView) setStatus(msg string) {
	v.statusMsg = msg
	v.statusTime = time.Now()
}

func (v *ListView) clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// SetSize 设置视图尺寸并调整表格大小
func (v *ListView) SetSize(width, height int) {
	v.width = width
	v.height = height

	tableHeight := height - 12
	if tableHeight < 5 {
		tableHeight = 5
	}
	v.tableModel.SetHeight(tableHeight)

	v.viewer.SetSize(width, height)
	v.errorDialog.SetWidth(width)
}

// View 渲染视图
func (v *ListView) View() string {
	if v.viewer.IsVisible() {
		return v.viewer.View()
	}

	var s string
	s += v.renderStatusBar()

	if v.statusMsg != "" {
		s += "\n  " + successMsgStyle.Render(v.statusMsg) + "\n"
	}

	// 统计栏
	lineWidth := v.width - 6
	if lineWidth < 60 {
		lineWidth = 60
	}
	line := separatorStyle.Render(strings.Repeat("─", lineWidth))

	scope := "running"
	if v.showAll {
		scope = "all"
	}
	direction := "asc"
	if v.sortDesc {
		direction = "desc"
	}
	stats := statusBarLabelStyle.Render(fmt.Sprintf("📦 Containers: %d", len(v.rows))) +
		separatorStyle.Render("  │  ") +
		hintStyle.Render(fmt.Sprintf("Marked: %d", len(v.marked))) +
		separatorStyle.Render("  │  ") +
		hintStyle.Render(fmt.Sprintf("Scope: %s", scope)) +
		separatorStyle.Render("  │  ") +
		hintStyle.Render(fmt.Sprintf("Sort: %s %s", v.sortColumn, direction))

	s += "\n  " + line + "\n"
	s += "  " + stats + "\n"
	s += "  " + line + "\n"

	if v.loading && len(v.rows) == 0 {
		s += "\n  " + stateBoxStyle.Render(statusBarKeyStyle.Render("⏳ 正在加载容器列表...")) + "\n"
		return s
	}

	// 初始加载失败时显示阻塞式错误框
	if v.errorMsg != "" && len(v.rows) == 0 {
		errContent := lipgloss.JoinVertical(lipgloss.Left,
			errorMsgStyle.Render(v.errorMsg),
			"",
			statusBarKeyStyle.Render("按 r 重新加载")+hintStyle.Render(" 或 ")+statusBarKeyStyle.Render("按 q 退出"),
		)
		s += "\n  " + stateBoxStyle.Render(errContent) + "\n"
		return s
	}

	if len(v.rows) == 0 {
		s += "\n  " + stateBoxStyle.Render(hintStyle.Render("📦 暂无容器，按 r 刷新或按 A 显示已停止容器")) + "\n"
		return s
	}

	s += "  " + v.tableModel.View() + "\n"

	// 非阻塞错误提示
	if v.errorMsg != "" {
		s += "\n  " + errorMsgStyle.Render("⚠ "+v.errorMsg) + "\n"
	}

	// 底部输入栏
	if v.prompt != promptNone && len(v.promptTargets) > 0 {
		s += v.renderPrompt()
	}

	if v.showConfirm {
		s = v.overlayDialog(s)
	}

	if v.errorDialog.IsVisible() {
		s = v.errorDialog.Overlay(s)
	}

	return s
}

// renderStatusBar 渲染顶部快捷键提示
func (v *ListView) renderStatusBar() string {
	keyStyle := statusBarKeyStyle
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	makeItem := func(k, desc string) string {
		return keyStyle.Render("<"+k+">") + descStyle.Render(" "+desc+"  ")
	}

	var lines []string
	lines = append(lines, "  "+statusBarLabelStyle.Render("📦 docktab")+"   "+
		makeItem("space", "Mark")+makeItem("r", "Refresh")+makeItem("A", "All")+
		makeItem("o/O", "Sort")+makeItem("q", "Quit"))
	lines = append(lines, "  "+statusBarLabelStyle.Render("Ops:")+"        "+
		makeItem("t", "Start")+makeItem("p", "Stop")+makeItem("P", "Pause")+
		makeItem("R", "Restart")+makeItem("K", "Kill")+makeItem("ctrl+d", "Remove")+makeItem("m", "Rename"))
	lines = append(lines, "  "+statusBarLabelStyle.Render("View:")+"       "+
		makeItem("l", "Logs")+makeItem("L", "Follow")+makeItem("i", "Inspect")+
		makeItem("d", "Diff")+makeItem("a", "Attach")+makeItem("s", "Shell")+
		makeItem("c/C", "Copy"))

	return "\n" + strings.Join(lines, "\n") + "\n"
}

// renderPrompt 渲染底部输入栏
func (v *ListView) renderPrompt() string {
	target := v.promptTargets[0]

	var label string
	switch v.prompt {
	case promptRename:
		label = fmt.Sprintf("重命名 %s 为:", target)
	case promptCopyFrom:
		label = fmt.Sprintf("从 %s 复制 <容器内路径> <宿主机路径>:", target)
	case promptCopyTo:
		label = fmt.Sprintf("复制到 %s <容器内路径> <宿主机路径>:", target)
	}

	remaining := ""
	if n := len(v.promptTargets) - 1; n > 0 {
		remaining = hintStyle.Render(fmt.Sprintf("  [还有 %d 个目标]", n))
	}

	cursor := lipgloss.NewStyle().Reverse(true).Render(" ")
	return "\n  " + promptStyle.Render(label) + " " + v.promptInput + cursor + remaining +
		"  " + hintStyle.Render("[Enter=确认 ESC=取消]") + "\n"
}

// overlayDialog 将删除确认对话框叠加到内容上（居中显示）
func (v *ListView) overlayDialog(baseContent string) string {
	lines := strings.Split(baseContent, "\n")

	dialogContent := v.renderConfirmDialog()
	dialogLines := strings.Split(dialogContent, "\n")

	insertLine := 0
	if len(lines) > len(dialogLines) {
		insertLine = (len(lines) - len(dialogLines)) / 2
	}

	var result strings.Builder
	for i := 0; i < len(lines); i++ {
		dialogIdx := i - insertLine
		if dialogIdx >= 0 && dialogIdx < len(dialogLines) {
			result.WriteString(dialogLines[dialogIdx])
		} else {
			result.WriteString(lines[i])
		}
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}

	return result.String()
}

// renderConfirmDialog 渲染删除确认对话框
func (v *ListView) renderConfirmDialog() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Bold(true)

	cancelBtnStyle := lipgloss.NewStyle().Padding(0, 2)
	okBtnStyle := lipgloss.NewStyle().Padding(0, 2)

	if v.confirmSelection == 0 {
		cancelBtnStyle = cancelBtnStyle.Reverse(true).Bold(true)
		okBtnStyle = okBtnStyle.Foreground(lipgloss.Color("245"))
	} else {
		cancelBtnStyle = cancelBtnStyle.Foreground(lipgloss.Color("245"))
		okBtnStyle = okBtnStyle.Reverse(true).Bold(true)
	}

	targetInfo := strings.Join(v.confirmTargets, ", ")
	if len(targetInfo) > 40 {
		targetInfo = targetInfo[:37] + "..."
	}

	title := titleStyle.Render(fmt.Sprintf("⚠️  删除 %d 个容器: %s", len(v.confirmTargets), targetInfo))
	warning := hintStyle.Render("删除不可撤销，运行中的容器将被强制删除！")

	buttons := cancelBtnStyle.Render("< Cancel >") + "    " + okBtnStyle.Render("< OK >")
	buttonsLine := lipgloss.NewStyle().Width(52).Align(lipgloss.Center).Render(buttons)

	dialog := dialogStyle.Render(title + "\n\n" + warning + "\n\n" + buttonsLine)

	// 水平居中
	if v.width > 60 {
		leftPadding := (v.width - 60) / 2
		lines := strings.Split(dialog, "\n")
		var result strings.Builder
		for i, line := range lines {
			result.WriteString(strings.Repeat(" ", leftPadding))
			result.WriteString(line)
			if i < len(lines)-1 {
				result.WriteString("\n")
			}
		}
		return result.String()
	}

	return dialog
}
