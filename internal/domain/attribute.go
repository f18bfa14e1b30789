// Package domain 定义商品详情页相关的业务领域模型和核心业务规则。
package domain

// BehaviorMode 定义缺货选项值的展示策略（由服务端下发，页面生命周期内不变）
type BehaviorMode string

const (
	BehaviorNone        BehaviorMode = "none"         // 不做任何处理
	BehaviorHideOption  BehaviorMode = "hide_option"  // 隐藏缺货选项值
	BehaviorLabelOption BehaviorMode = "label_option" // 给缺货选项值追加文案标记
)

// ParseBehaviorMode 解析服务端下发的展示策略，未知值一律按 none 处理
func ParseBehaviorMode(s string) BehaviorMode {
	switch BehaviorMode(s) {
	case BehaviorHideOption:
		return BehaviorHideOption
	case BehaviorLabelOption:
		return BehaviorLabelOption
	default:
		return BehaviorNone
	}
}

// Active 判断该策略是否需要执行可用性处理流程
func (m BehaviorMode) Active() bool {
	return m == BehaviorHideOption || m == BehaviorLabelOption
}

// AttributeType 定义选项控件类型，在构建选项组模型时解析一次，之后不再动态推导
type AttributeType string

const (
	AttributeTypeSelect      AttributeType = "set-select"     // 下拉选择
	AttributeTypeRectangle   AttributeType = "set-rectangle"  // 矩形按钮组
	AttributeTypeRadio       AttributeType = "set-radio"      // 单选按钮组
	AttributeTypeSwatch      AttributeType = "swatch"         // 色块
	AttributeTypeCheckbox    AttributeType = "input-checkbox" // 复选框
	AttributeTypeProductList AttributeType = "product-list"   // 商品列表选择
	AttributeTypeUnknown     AttributeType = ""               // 未声明类型
)

// IsListStyle 判断是否为列表型控件；只有下拉选择通过修改标签文案标记缺货，
// 其余控件类型（含商品列表选择）通过切换不可用样式标记缺货
func (t AttributeType) IsListStyle() bool {
	return t == AttributeTypeSelect
}

// RadioSelectionState 表示可反选单选控件的选中状态机。
// 状态只有 selected/unselected 两种，点击触发迁移，不需要重新绑定任何事件处理。
type RadioSelectionState struct {
	selected bool
}

// NewRadioSelectionState 根据控件初始选中状态创建状态机
func NewRadioSelectionState(checked bool) *RadioSelectionState {
	return &RadioSelectionState{selected: checked}
}

// Selected 返回当前是否处于选中状态
func (s *RadioSelectionState) Selected() bool {
	return s.selected
}

// Click 处理一次点击并返回迁移后的选中状态：
// 已选中时点击会取消选中（调用方需要重新触发选项变更），未选中时点击则进入选中状态。
func (s *RadioSelectionState) Click() bool {
	s.selected = !s.selected
	return s.selected
}
