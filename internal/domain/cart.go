package domain

// CartItem 表示加购成功后服务端返回的购物车条目标识
type CartItem struct {
	Hash string `json:"hash"`
}

// ItemAddResult 表示加购请求的应用层结果；
// Error 非空表示服务端在响应体中携带了业务错误（可能含有 HTML 标记）
type ItemAddResult struct {
	CartItem *CartItem `json:"cart_item"`
	Error    string    `json:"error"`
}

// CartContentOptions 表示拉取购物车预览内容的请求参数
type CartContentOptions struct {
	Template         string // 渲染模板，固定使用 cart/preview
	Suggest          string // 新增条目的 hash，用于关联推荐
	SuggestionsLimit int    // 交叉销售推荐数量上限
}
