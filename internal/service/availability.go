// Package service 实现商品详情页的业务逻辑层，协调远程服务与页面协作对象。
package service

import (
	"strings"

	"github.com/MorseWayne/product_page/internal/domain"
	"github.com/MorseWayne/product_page/internal/view"
)

// ApplyAvailability 对全部已渲染选项值执行一次可用性处理。
// 每次选项变更都对整个集合重新计算，不做增量修补。
// behavior 不是 hide_option / label_option 时整个流程直接跳过。
func ApplyAvailability(elements []view.AttributeElement, inStockIDs []int, behavior domain.BehaviorMode, outOfStockMessage string) {
	if !behavior.Active() {
		return
	}

	suffix := " (" + outOfStockMessage + ")"
	inStock := make(map[int]struct{}, len(inStockIDs))
	for _, id := range inStockIDs {
		inStock[id] = struct{}{}
	}

	for _, element := range elements {
		if _, ok := inStock[element.ID()]; ok {
			enableAttribute(element, behavior, suffix)
		} else {
			disableAttribute(element, behavior, suffix)
		}
	}
}

// enableAttribute 把选项值恢复为可用展示
func enableAttribute(element view.AttributeElement, behavior domain.BehaviorMode, suffix string) {
	if behavior == domain.BehaviorHideOption {
		element.SetHidden(false)
		return
	}
	if element.Type().IsListStyle() {
		element.SetLabel(stripSuffix(element.Label(), suffix))
	} else {
		element.SetUnavailable(false)
	}
}

// disableAttribute 把选项值标记为缺货展示
func disableAttribute(element view.AttributeElement, behavior domain.BehaviorMode, suffix string) {
	if behavior == domain.BehaviorHideOption {
		element.SetHidden(true)
		return
	}
	if element.Type().IsListStyle() {
		// 先去掉已有后缀再追加，保证后缀至多出现一次且始终位于末尾
		element.SetLabel(stripSuffix(element.Label(), suffix) + suffix)
	} else {
		element.SetUnavailable(true)
	}
}

// stripSuffix 只剥离末尾的缺货后缀；标签正文中碰巧出现的相同文案不受影响
func stripSuffix(label, suffix string) string {
	for strings.HasSuffix(label, suffix) {
		label = strings.TrimSuffix(label, suffix)
	}
	return label
}
