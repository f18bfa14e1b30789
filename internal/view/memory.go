package view

import "github.com/MorseWayne/product_page/internal/domain"

// MemoryRegion 内存文案区域实现（用于开发和测试）
type MemoryRegion struct {
	text    string
	visible bool
}

// NewMemoryRegion 创建内存文案区域
func NewMemoryRegion(text string) *MemoryRegion {
	return &MemoryRegion{text: text, visible: true}
}

// NewHiddenMemoryRegion 创建初始隐藏的内存文案区域
func NewHiddenMemoryRegion() *MemoryRegion {
	return &MemoryRegion{}
}

func (r *MemoryRegion) Text() string { return r.text }
func (r *MemoryRegion) SetText(text string) { r.text = text }
func (r *MemoryRegion) Show() { r.visible = true }
func (r *MemoryRegion) Hide() { r.visible = false }
func (r *MemoryRegion) Visible() bool { return r.visible }

// MemoryField 内存表单字段实现
type MemoryField struct {
	value string
}

// NewMemoryField 创建内存表单字段
func NewMemoryField(value string) *MemoryField {
	return &MemoryField{value: value}
}

func (f *MemoryField) Value() string { return f.value }
func (f *MemoryField) SetValue(value string) { f.value = value }

// MemoryButton 内存加购按钮实现
type MemoryButton struct {
	enabled      bool
	label        string
	waitingLabel string
}

// NewMemoryButton 创建内存加购按钮
func NewMemoryButton(label, waitingLabel string) *MemoryButton {
	return &MemoryButton{enabled: true, label: label, waitingLabel: waitingLabel}
}

func (b *MemoryButton) Enabled() bool { return b.enabled }
func (b *MemoryButton) SetEnabled(enabled bool) { b.enabled = enabled }
func (b *MemoryButton) Label() string { return b.label }
func (b *MemoryButton) SetLabel(label string) { b.label = label }
func (b *MemoryButton) WaitingLabel() string { return b.waitingLabel }

// MemoryToggle 内存启用/禁用控件实现
type MemoryToggle struct {
	enabled bool
}

// NewMemoryToggle 创建内存启用控件
func NewMemoryToggle() *MemoryToggle {
	return &MemoryToggle{enabled: true}
}

func (t *MemoryToggle) Enabled() bool { return t.enabled }
func (t *MemoryToggle) SetEnabled(enabled bool) { t.enabled = enabled }

// MemoryQuantityInput 内存数量输入控件实现
type MemoryQuantityInput struct {
	MemoryField
	bounds domain.QuantityBounds
}

// NewMemoryQuantityInput 创建内存数量输入控件
func NewMemoryQuantityInput(value string, bounds domain.QuantityBounds) *MemoryQuantityInput {
	return &MemoryQuantityInput{MemoryField: MemoryField{value: value}, bounds: bounds}
}

func (q *MemoryQuantityInput) Bounds() domain.QuantityBounds { return q.bounds }

// MemoryAttribute 内存选项值元素实现
type MemoryAttribute struct {
	id          int
	attrType    domain.AttributeType
	hidden      bool
	label       string
	unavailable bool
}

// NewMemoryAttribute 创建内存选项值元素
func NewMemoryAttribute(id int, attrType domain.AttributeType, label string) *MemoryAttribute {
	return &MemoryAttribute{id: id, attrType: attrType, label: label}
}

func (a *MemoryAttribute) ID() int { return a.id }
func (a *MemoryAttribute) Type() domain.AttributeType { return a.attrType }
func (a *MemoryAttribute) Hidden() bool { return a.hidden }
func (a *MemoryAttribute) SetHidden(hidden bool) { a.hidden = hidden }
func (a *MemoryAttribute) Label() string { return a.label }
func (a *MemoryAttribute) SetLabel(label string) { a.label = label }
func (a *MemoryAttribute) Unavailable() bool { return a.unavailable }
func (a *MemoryAttribute) SetUnavailable(unavailable bool) { a.unavailable = unavailable }

// MemoryRadio 内存单选输入控件实现
type MemoryRadio struct {
	option  domain.OptionRef
	checked bool
}

// NewMemoryRadio 创建内存单选输入控件
func NewMemoryRadio(option domain.OptionRef, checked bool) *MemoryRadio {
	return &MemoryRadio{option: option, checked: checked}
}

func (r *MemoryRadio) Option() domain.OptionRef { return r.option }
func (r *MemoryRadio) Checked() bool { return r.checked }
func (r *MemoryRadio) SetChecked(checked bool) { r.checked = checked }

// MemoryScope 内存商品作用域实现，持有稳定的视图模型引用
type MemoryScope struct {
	View       *ProductView
	Attributes []AttributeElement
}

func (s *MemoryScope) ProductView() *ProductView { return s.View }
func (s *MemoryScope) AttributeElements() []AttributeElement { return s.Attributes }

// NewMemoryScope 创建一个填满默认区域的内存作用域
func NewMemoryScope() *MemoryScope {
	return &MemoryScope{
		View: &ProductView{
			PriceWithTax:      NewMemoryRegion(""),
			PriceWithoutTax:   NewMemoryRegion(""),
			RRPWithTax:        NewMemoryRegion(""),
			RRPWithoutTax:     NewMemoryRegion(""),
			Weight:            NewMemoryRegion(""),
			SKU:               NewMemoryRegion(""),
			Message:           NewHiddenMemoryRegion(),
			Stock:             NewHiddenMemoryRegion(),
			AddToCart:         NewMemoryButton("Add to Cart", "Adding..."),
			Increments:        NewMemoryToggle(),
			WishlistVariation: NewMemoryField(""),
			QuantityInput:     NewMemoryQuantityInput("1", domain.QuantityBounds{Min: 1}),
			QuantityText:      NewMemoryRegion("1"),
		},
	}
}

// MemoryGallery 内存画廊实现，记录最近一次图片操作
type MemoryGallery struct {
	Alternate *AlternateImage
	Restored  bool
}

func (g *MemoryGallery) SetAlternateImage(image AlternateImage) {
	g.Alternate = &image
	g.Restored = false
}

func (g *MemoryGallery) RestoreImage() {
	g.Alternate = nil
	g.Restored = true
}

// MemoryOverlay 内存浮层实现，记录打开状态与最近一次内容
type MemoryOverlay struct {
	Opened  bool
	Content string
	Updates int
}

func (o *MemoryOverlay) Open() { o.Opened = true }
func (o *MemoryOverlay) UpdateContent(fragment string) {
	o.Content = fragment
	o.Updates++
}

// MemoryNotifier 内存提示实现，记录所有提示文案
type MemoryNotifier struct {
	Messages []string
}

func (n *MemoryNotifier) Alert(message string) {
	n.Messages = append(n.Messages, message)
}
