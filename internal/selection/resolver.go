// Package selection 把表格的标记状态解析为操作目标列表。
// 决策逻辑与具体表格组件解耦：标记行和光标行都作为普通输入传入。
package selection

import "errors"

// ErrEmptySelection 没有标记行也没有光标行，任何操作都不应继续
var ErrEmptySelection = errors.New("未选中任何容器")

// Resolve 解析当前选择。
// 有标记行时原样返回（保持标记顺序，而非表格顺序，批量操作
// 的副作用顺序依赖于此，例如逐个询问新名称的批量重命名）；
// 无标记行时退化为光标所在行；两者皆空则返回 ErrEmptySelection。
func Resolve(marked []string, cursor string) ([]string, error) {
	if len(marked) > 0 {
		targets := make([]string, len(marked))
		copy(targets, marked)
		return targets, nil
	}

	if cursor != "" {
		return []string{cursor}, nil
	}

	return nil, ErrEmptySelection
}
