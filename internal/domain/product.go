package domain

import "net/url"

// FormattedValue 表示一个带格式化文案的金额/数值字段
type FormattedValue struct {
	Formatted string `json:"formatted"`
}

// ProductPrice 表示选项变更响应中的价格字段集合，字段缺失表示对应展示区不更新
type ProductPrice struct {
	WithTax       *FormattedValue `json:"with_tax"`
	WithoutTax    *FormattedValue `json:"without_tax"`
	RRPWithTax    *FormattedValue `json:"rrp_with_tax"`
	RRPWithoutTax *FormattedValue `json:"rrp_without_tax"`
}

// ProductImage 表示变体图片信息；Data 为带 {:size} 占位符的图片 URL 模板
type ProductImage struct {
	Data string `json:"data"`
	Alt  string `json:"alt"`
}

// AttributeChangeResponse 表示选项变更后服务端计算出的权威商品状态。
// 除可用性相关字段外全部可选，缺失字段表示"无需更新"，不得清空已展示的内容。
type AttributeChangeResponse struct {
	PurchasingMessage   string          `json:"purchasing_message"`
	Price               *ProductPrice   `json:"price"`
	Weight              *FormattedValue `json:"weight"`
	VariantID           string          `json:"variantId"`
	SKU                 string          `json:"sku"`
	Stock               *int            `json:"stock"`
	Purchasable         *bool           `json:"purchasable"`
	InStock             *bool           `json:"instock"`
	Image               *ProductImage   `json:"image"`
	OutOfStockBehavior  string          `json:"out_of_stock_behavior"`
	OutOfStockMessage   string          `json:"out_of_stock_message"`
	InStockAttributeIDs []int           `json:"in_stock_attributes"`
}

// Enablement 根据 purchasable && instock 不变式计算加购控件的目标启用状态；
// 两个字段都缺失时返回 ok=false，表示维持当前启用状态不变
func (r *AttributeChangeResponse) Enablement() (enabled bool, ok bool) {
	if r.Purchasable == nil && r.InStock == nil {
		return false, false
	}
	enabled = r.Purchasable != nil && *r.Purchasable && r.InStock != nil && *r.InStock
	return enabled, true
}

// Behavior 返回解析后的缺货展示策略
func (r *AttributeChangeResponse) Behavior() BehaviorMode {
	return ParseBehaviorMode(r.OutOfStockBehavior)
}

// OptionRef 标识一次发生变更的选项控件
type OptionRef struct {
	Name        string // 控件名称
	ControlType string // 控件类型，如 select/radio/file
}

// IsFileInput 判断变更的控件是否为文件上传类型（文件控件无法安全序列化，跳过请求）
func (o OptionRef) IsFileInput() bool {
	return o.ControlType == "file"
}

// FilePart 表示表单中的一个文件字段
type FilePart struct {
	FieldName string
	FileName  string
	Data      []byte
}

// FormSnapshot 表示提交时刻商品表单的完整序列化状态
type FormSnapshot struct {
	ProductID string
	Fields    url.Values
	Files     []FilePart
}
