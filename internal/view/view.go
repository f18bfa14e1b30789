// Package view 定义商品详情页控制器可以读写的页面区域边界。
// 控制器只通过这里声明的更新接口操作页面协作对象，不直接触碰其内部状态。
package view

import "github.com/MorseWayne/product_page/internal/domain"

// TextRegion 表示一个可读写文案的页面区域
type TextRegion interface {
	Text() string
	SetText(text string)
}

// HideableRegion 表示一个可整体显示/隐藏的文案区域
type HideableRegion interface {
	TextRegion
	Show()
	Hide()
	Visible() bool
}

// ValueField 表示一个可读写取值的表单字段
type ValueField interface {
	Value() string
	SetValue(value string)
}

// EnableControl 表示一个可启用/禁用的控件
type EnableControl interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

// Button 表示加购按钮：除启用状态外还承载标签文案与等待态文案
type Button interface {
	EnableControl
	Label() string
	SetLabel(label string)
	WaitingLabel() string
}

// QuantityControl 表示数量输入控件，边界配置来自控件自身的属性
type QuantityControl interface {
	ValueField
	Bounds() domain.QuantityBounds
}

// AttributeElement 表示一个已渲染的选项值元素。
// 控件类型在构建模型时解析一次，可用性处理不再按次推导。
type AttributeElement interface {
	ID() int
	Type() domain.AttributeType
	Hidden() bool
	SetHidden(hidden bool)
	Label() string
	SetLabel(label string)
	Unavailable() bool
	SetUnavailable(unavailable bool)
}

// RadioControl 表示一个可反选的单选输入控件
type RadioControl interface {
	Option() domain.OptionRef
	Checked() bool
	SetChecked(checked bool)
}

// ProductView 表示控制器可操作的全部页面区域。
// 区域可能随模板渲染缺失，缺失的字段为 nil，更新时按"无处可写即跳过"处理。
type ProductView struct {
	PriceWithTax      TextRegion
	PriceWithoutTax   TextRegion
	RRPWithTax        TextRegion
	RRPWithoutTax     TextRegion
	Weight            TextRegion
	SKU               TextRegion
	Message           HideableRegion
	Stock             HideableRegion // 后台未开启库存展示时为 nil
	AddToCart         Button
	Increments        EnableControl
	WishlistVariation ValueField
	QuantityInput     QuantityControl
	QuantityText      TextRegion
}

// Scope 表示一个商品渲染作用域；页面片段可能被动态替换，
// 因此每次使用都重新解析视图模型，而不是持有陈旧引用。
type Scope interface {
	ProductView() *ProductView
	AttributeElements() []AttributeElement
}

// AlternateImage 表示切换到变体图片所需的两种尺寸 URL
type AlternateImage struct {
	MainImageURL string
	ZoomImageURL string
}

// Gallery 表示外部图片画廊组件的更新接口
type Gallery interface {
	SetAlternateImage(image AlternateImage)
	RestoreImage()
}

// Overlay 表示购物车预览浮层组件的更新接口
type Overlay interface {
	Open()
	UpdateContent(fragment string)
}

// Notifier 表示阻塞式用户提示组件
type Notifier interface {
	Alert(message string)
}

// Capabilities 描述运行环境能力；不支持 multipart 表单时相关流程整体跳过
type Capabilities struct {
	MultipartForms bool
}
