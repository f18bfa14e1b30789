package domain

// StepDirection 定义数量步进方向
type StepDirection string

const (
	StepIncrement StepDirection = "inc"
	StepDecrement StepDirection = "dec"
)

// QuantityBounds 定义数量输入的边界；Max <= 0 表示无上限
type QuantityBounds struct {
	Min int
	Max int
}

// EffectiveMin 返回生效的下限，未配置或配置非法时下限为 1
func (b QuantityBounds) EffectiveMin() int {
	if b.Min > 1 {
		return b.Min
	}
	return 1
}

// Bounded 判断是否配置了有效上限
func (b QuantityBounds) Bounded() bool {
	return b.Max > 0
}

// Step 对当前数量执行一次步进并返回结果，保证结果始终落在边界内：
// inc 在达到上限时保持不变；dec 在到达 1 或下限时保持不变。
func (b QuantityBounds) Step(current int, direction StepDirection) int {
	switch direction {
	case StepIncrement:
		if !b.Bounded() || current+1 <= b.Max {
			return current + 1
		}
	case StepDecrement:
		if current > 1 {
			if b.Min <= 0 || current-1 >= b.Min {
				return current - 1
			}
		}
	}
	return current
}
