// Package runner 是命令执行层：接收构建好的命令并调用 docker CLI。
// 同步命令捕获全部输出返回；流式命令（attach、logs -f、shell）返回
// 一个读取句柄，关闭句柄即终止子进程。
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"docktab/internal/command"
)

// Result 一次同步执行的结果
type Result struct {
	Output   string        // stdout 输出
	Stderr   string        // stderr 输出
	ExitCode int           // 退出码
	Duration time.Duration // 耗时
}

// CommandError 命令执行失败。消息主体是 stderr 的原文，
// 退出码除成功/失败外不做进一步解释。
type CommandError struct {
	Command  string // 失败命令的可读形式
	Stderr   string // stderr 原文（已去除首尾空白）
	ExitCode int
	Err      error
}

// Error 实现 error 接口
func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("命令执行失败: %v", e.Err)
}

// Unwrap 返回底层错误
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Runner 抽象命令执行能力，方便测试时替换为假实现
type Runner interface {
	// Run 同步执行命令并捕获输出
	Run(ctx context.Context, cmd command.BuiltCommand) (*Result, error)

	// Stream 启动流式命令并立即返回读取句柄，调用方负责关闭
	Stream(ctx context.Context, cmd command.BuiltCommand) (io.ReadCloser, error)
}

// CLIRunner 通过 os/exec 调用 docker 可执行文件
type CLIRunner struct {
	binary string
}

// NewCLIRunner 创建执行器，binary 为空时使用 "docker"
func NewCLIRunner(binary string) *CLIRunner {
	if binary == "" {
		binary = "docker"
	}
	return &CLIRunner{binary: binary}
}

// Run 同步执行命令
func (r *CLIRunner) Run(ctx context.Context, c command.BuiltCommand) (*Result, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, r.binary, c.Args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &Result{
		Output:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		return result, &CommandError{
			Command:  c.String(),
			Stderr:   strings.TrimSpace(stderr.String()),
			ExitCode: result.ExitCode,
			Err:      err,
		}
	}

	return result, nil
}

// Stream 启动流式命令。stderr 合并进同一输出流，
// 关闭返回的句柄会杀死子进程并回收资源。
func (r *CLIRunner) Stream(ctx context.Context, c command.BuiltCommand) (io.ReadCloser, error) {
	cmd := exec.CommandContext(ctx, r.binary, c.Args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &CommandError{Command: c.String(), Err: err}
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Command: c.String(), Err: err}
	}

	return &streamReader{reader: stdout, cmd: cmd}, nil
}

// streamReader 包装流式命令的输出，关闭时终止子进程
type streamReader struct {
	reader io.ReadCloser
	cmd    *exec.Cmd
}

func (s *streamReader) Read(p []byte) (n int, err error) {
	return s.reader.Read(p)
}

func (s *streamReader) Close() error {
	s.reader.Close()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	return s.cmd.Wait()
}
