// Package listing 解析 docker container ls 固定 --format 模板的输出。
// 每行是一个 7 元素 JSON 数组，字段顺序 [id, image, command, createdAt,
// status, ports, names]，与 command.ListingFormat 保持一致。
package listing

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Row 表示容器表格中的一行。每次刷新整体重建，中途不做增量修改；
// ID 仅在同一次快照内保证唯一。
type Row struct {
	ID        string    // 容器 ID（短或长，取决于 --no-trunc）
	Image     string    // 镜像名称
	Command   string    // 启动命令（docker 输出带引号的截断形式）
	CreatedAt string    // 规范化的本地时间 "YYYY-MM-DD HH:MM:SS"
	Created   time.Time // 解析后的创建时间，供排序使用
	Status    string    // 状态描述，如 "Up 2 hours"
	Ports     string    // 端口映射
	Names     string    // 容器名称
}

// MalformedListingError 某一行不是合法的 7 元素 JSON 数组。
// 整个解析失败而不是跳过坏行：残缺的表格比硬失败更危险，
// 可能误导后续的破坏性操作。
type MalformedListingError struct {
	Line string // 出错的原始行，原样保留
	Err  error  // 底层 JSON 错误（字段数不符时为 nil）
}

// Error 实现 error 接口
func (e *MalformedListingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("容器列表输出格式错误: %v (行: %q)", e.Err, e.Line)
	}
	return fmt.Sprintf("容器列表输出格式错误 (行: %q)", e.Line)
}

// Unwrap 返回底层错误
func (e *MalformedListingError) Unwrap() error {
	return e.Err
}

// BadTimestampError 创建时间字段无法解析，与一般的 JSON 错误区分
type BadTimestampError struct {
	Value string // 原始时间字符串
	Err   error
}

// Error 实现 error 接口
func (e *BadTimestampError) Error() string {
	return fmt.Sprintf("无法解析容器创建时间 %q: %v", e.Value, e.Err)
}

// Unwrap 返回底层错误
func (e *BadTimestampError) Unwrap() error {
	return e.Err
}

// createdAtLayouts docker CLI 可能输出的时间格式，按出现频率排列
var createdAtLayouts = []string{
	"2006-01-02 15:04:05 -0700 MST", // {{json .CreatedAt}} 的默认形式
	"2006-01-02 15:04:05 -0700",
	time.RFC3339,
}

// displayLayout 规范化后的显示格式
const displayLayout = "2006-01-02 15:04:05"

// Parse 把原始输出转换为有序的行列表。
// 保持输入行顺序，不做任何排序（排序是表格视图的职责）；
// 空输入返回空列表而非错误。
func Parse(raw string) ([]Row, error) {
	rows := make([]Row, 0)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		row, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// parseLine 解析单行 JSON 数组
func parseLine(line string) (Row, error) {
	var fields []string
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		return Row{}, &MalformedListingError{Line: line, Err: err}
	}
	if len(fields) != 7 {
		return Row{}, &MalformedListingError{Line: line}
	}

	created, err := parseCreatedAt(fields[3])
	if err != nil {
		return Row{}, err
	}

	return Row{
		ID:        fields[0],
		Image:     fields[1],
		Command:   fields[2],
		CreatedAt: created.Local().Format(displayLayout),
		Created:   created,
		Status:    fields[4],
		Ports:     fields[5],
		Names:     fields[6],
	}, nil
}

// parseCreatedAt 依次尝试已知时间格式
func parseCreatedAt(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range createdAtLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, &BadTimestampError{Value: value, Err: lastErr}
}
