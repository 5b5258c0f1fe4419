package command

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// TestBuild_StopTimeout 测试 stop 的可选超时参数
func TestBuild_StopTimeout(t *testing.T) {
	// 不传超时：不出现 -t
	cmds, err := Build(ActionStop, StopOptions{}, []string{"x"})
	if err != nil {
		t.Fatalf("Build(stop) failed: %v", err)
	}
	want := []string{"container", "stop", "x"}
	if !reflect.DeepEqual(cmds[0].Args, want) {
		t.Errorf("Expected %v, got %v", want, cmds[0].Args)
	}

	// 传超时：-t 5 紧跟子命令
	cmds, err = Build(ActionStop, StopOptions{Timeout: 5}, []string{"x"})
	if err != nil {
		t.Fatalf("Build(stop, timeout=5) failed: %v", err)
	}
	want = []string{"container", "stop", "-t", "5", "x"}
	if !reflect.DeepEqual(cmds[0].Args, want) {
		t.Errorf("Expected %v, got %v", want, cmds[0].Args)
	}
}

// TestBuild_RmFlagCombinations 测试 rm 三个独立布尔的组合
func TestBuild_RmFlagCombinations(t *testing.T) {
	tests := []struct {
		name string
		opts RmOptions
		want []string
	}{
		{"none", RmOptions{}, []string{"container", "rm", "x"}},
		{"force", RmOptions{Force: true}, []string{"container", "rm", "-f", "x"}},
		{"force+volumes", RmOptions{Force: true, Volumes: true}, []string{"container", "rm", "-f", "-v", "x"}},
		{"link only", RmOptions{Link: true}, []string{"container", "rm", "-l", "x"}},
		{"all", RmOptions{Force: true, Link: true, Volumes: true}, []string{"container", "rm", "-f", "-l", "-v", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, err := Build(ActionRm, tt.opts, []string{"x"})
			if err != nil {
				t.Fatalf("Build(rm) failed: %v", err)
			}
			if !reflect.DeepEqual(cmds[0].Args, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, cmds[0].Args)
			}
		})
	}
}

// TestBuild_RmForceVolumesNotLink 测试 force+volumes 不带 -l（spec 用例）
func TestBuild_RmForceVolumesNotLink(t *testing.T) {
	cmds, err := Build(ActionRm, RmOptions{Force: true, Volumes: true}, []string{"x"})
	if err != nil {
		t.Fatalf("Build(rm) failed: %v", err)
	}

	joined := cmds[0].String()
	if !strings.Contains(joined, "-f") {
		t.Error("Expected -f in command")
	}
	if !strings.Contains(joined, "-v") {
		t.Error("Expected -v in command")
	}
	if strings.Contains(joined, "-l") {
		t.Error("Did not expect -l in command")
	}
	if cmds[0].Args[len(cmds[0].Args)-1] != "x" {
		t.Errorf("Expected target 'x' as last token, got %v", cmds[0].Args)
	}
}

// TestBuild_KillSignal 测试 kill 的可选信号参数
func TestBuild_KillSignal(t *testing.T) {
	cmds, err := Build(ActionKill, KillOptions{}, []string{"x"})
	if err != nil {
		t.Fatalf("Build(kill) failed: %v", err)
	}
	if !reflect.DeepEqual(cmds[0].Args, []string{"container", "kill", "x"}) {
		t.Errorf("Expected no signal flag, got %v", cmds[0].Args)
	}

	cmds, err = Build(ActionKill, KillOptions{Signal: "SIGHUP"}, []string{"x"})
	if err != nil {
		t.Fatalf("Build(kill, signal) failed: %v", err)
	}
	if !reflect.DeepEqual(cmds[0].Args, []string{"container", "kill", "-s", "SIGHUP", "x"}) {
		t.Errorf("Expected -s SIGHUP, got %v", cmds[0].Args)
	}
}

// TestBuild_CpFromColonInPath 测试容器路径中的冒号原样透传
func TestBuild_CpFromColonInPath(t *testing.T) {
	cmds, err := Build(ActionCpFrom, CpOptions{ContainerPath: "/a:b", HostPath: "/tmp/out"}, []string{"x"})
	if err != nil {
		t.Fatalf("Build(cp-from) failed: %v", err)
	}

	want := []string{"container", "cp", "x:/a:b", "/tmp/out"}
	if !reflect.DeepEqual(cmds[0].Args, want) {
		t.Errorf("Expected %v, got %v", want, cmds[0].Args)
	}
}

// TestBuild_CpDirections 测试 cp 两个方向的参数位置
func TestBuild_CpDirections(t *testing.T) {
	opts := CpOptions{ContainerPath: "/etc/conf d", HostPath: "/tmp/conf"}

	// 容器 → 宿主机：容器侧在前
	cmds, err := Build(ActionCpFrom, opts, []string{"abc"})
	if err != nil {
		t.Fatalf("Build(cp-from) failed: %v", err)
	}
	if cmds[0].Args[2] != "abc:/etc/conf d" || cmds[0].Args[3] != "/tmp/conf" {
		t.Errorf("Unexpected cp-from args: %v", cmds[0].Args)
	}

	// 宿主机 → 容器：容器侧在后
	cmds, err = Build(ActionCpTo, opts, []string{"abc"})
	if err != nil {
		t.Fatalf("Build(cp-to) failed: %v", err)
	}
	if cmds[0].Args[2] != "/tmp/conf" || cmds[0].Args[3] != "abc:/etc/conf d" {
		t.Errorf("Unexpected cp-to args: %v", cmds[0].Args)
	}
}

// TestBuild_BatchPerTarget 测试批量操作逐目标独立构建且保持输入顺序
func TestBuild_BatchPerTarget(t *testing.T) {
	targets := []string{"a", "b", "c"}
	cmds, err := Build(ActionStart, nil, targets)
	if err != nil {
		t.Fatalf("Build(start) failed: %v", err)
	}

	if len(cmds) != 3 {
		t.Fatalf("Expected 3 commands, got %d", len(cmds))
	}
	for i, id := range targets {
		if cmds[i].Target != id {
			t.Errorf("Expected command %d to target %q, got %q", i, id, cmds[i].Target)
		}
		want := []string{"container", "start", id}
		if !reflect.DeepEqual(cmds[i].Args, want) {
			t.Errorf("Expected %v, got %v", want, cmds[i].Args)
		}
	}
}

// TestBuild_NoTarget 测试空目标列表的防御性错误
func TestBuild_NoTarget(t *testing.T) {
	for _, action := range []Action{ActionStart, ActionStop, ActionRm, ActionKill, ActionPause, ActionLogs} {
		_, err := Build(action, nil, nil)
		if !errors.Is(err, ErrNoTarget) {
			t.Errorf("Expected ErrNoTarget for %s with no targets, got %v", action, err)
		}
	}
}

// TestBuild_UnknownAction 测试未知操作返回 UnknownActionError
func TestBuild_UnknownAction(t *testing.T) {
	_, err := Build(Action(99), nil, []string{"x"})
	if err == nil {
		t.Fatal("Expected error for unknown action, got nil")
	}

	var uerr *UnknownActionError
	if !errors.As(err, &uerr) {
		t.Errorf("Expected UnknownActionError, got %T: %v", err, err)
	}
}

// TestLs_TokenOrder 测试 ls 的确定性参数顺序（用户选项在 --format 之前）
func TestLs_TokenOrder(t *testing.T) {
	cmd := Ls(LsOptions{All: true, Filters: []string{"status=exited", "name=web"}, Last: 3, NoTrunc: true})

	want := []string{
		"container", "ls",
		"-a",
		"--filter", "status=exited",
		"--filter", "name=web",
		"-n", "3",
		"--no-trunc",
		"--format", ListingFormat,
	}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("Expected %v, got %v", want, cmd.Args)
	}
}

// TestLs_DefaultOptions 测试无选项时只有 --format
func TestLs_DefaultOptions(t *testing.T) {
	cmd := Ls(LsOptions{})

	want := []string{"container", "ls", "--format", ListingFormat}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("Expected %v, got %v", want, cmd.Args)
	}
	if cmd.Target != "" {
		t.Errorf("Expected empty target for ls, got %q", cmd.Target)
	}
}

// TestBuild_LogsFollowIsStream 测试 follow 模式标记为流式命令
func TestBuild_LogsFollowIsStream(t *testing.T) {
	cmds, err := Build(ActionLogs, LogsOptions{Follow: true, Tail: 50}, []string{"x"})
	if err != nil {
		t.Fatalf("Build(logs) failed: %v", err)
	}
	if !cmds[0].Stream {
		t.Error("Expected follow-mode logs to be a stream command")
	}
	want := []string{"container", "logs", "-f", "--tail", "50", "x"}
	if !reflect.DeepEqual(cmds[0].Args, want) {
		t.Errorf("Expected %v, got %v", want, cmds[0].Args)
	}

	// 非 follow：同步命令
	cmds, err = Build(ActionLogs, LogsOptions{}, []string{"x"})
	if err != nil {
		t.Fatalf("Build(logs) failed: %v", err)
	}
	if cmds[0].Stream {
		t.Error("Expected snapshot logs to be synchronous")
	}
}

// TestBuild_SurfaceNames 测试输出面板命名（操作 + 目标）
func TestBuild_SurfaceNames(t *testing.T) {
	cmds, err := Build(ActionDiff, nil, []string{"abc123"})
	if err != nil {
		t.Fatalf("Build(diff) failed: %v", err)
	}
	if cmds[0].Surface != "diff abc123" {
		t.Errorf("Expected surface 'diff abc123', got %q", cmds[0].Surface)
	}
}

// TestBuild_RenameRequiresName 测试重命名缺少新名称时报错
func TestBuild_RenameRequiresName(t *testing.T) {
	if _, err := Build(ActionRename, RenameOptions{}, []string{"x"}); err == nil {
		t.Error("Expected error for rename without new name, got nil")
	}

	cmds, err := Build(ActionRename, RenameOptions{NewName: "web-1"}, []string{"x"})
	if err != nil {
		t.Fatalf("Build(rename) failed: %v", err)
	}
	want := []string{"container", "rename", "x", "web-1"}
	if !reflect.DeepEqual(cmds[0].Args, want) {
		t.Errorf("Expected %v, got %v", want, cmds[0].Args)
	}
}

// TestBuild_ShellCommand 测试交互式 shell 命令构建
func TestBuild_ShellCommand(t *testing.T) {
	if _, err := Build(ActionShell, ShellOptions{}, []string{"x"}); err == nil {
		t.Error("Expected error for shell without program, got nil")
	}

	cmds, err := Build(ActionShell, ShellOptions{Shell: "/bin/bash"}, []string{"x"})
	if err != nil {
		t.Fatalf("Build(shell) failed: %v", err)
	}
	want := []string{"container", "exec", "-i", "-t", "x", "/bin/bash"}
	if !reflect.DeepEqual(cmds[0].Args, want) {
		t.Errorf("Expected %v, got %v", want, cmds[0].Args)
	}
	if !cmds[0].Stream {
		t.Error("Expected shell to be a stream command")
	}
}
