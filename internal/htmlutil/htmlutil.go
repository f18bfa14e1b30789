// Package htmlutil 提供面向页面片段的 HTML 辅助处理。
package htmlutil

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// StripTags 去除文本中的全部 HTML 标记，仅保留纯文本内容。
// 用于把服务端返回的业务错误安全地展示给用户。
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}

	var sb strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(sb.String())
		case html.TextToken:
			sb.Write(tokenizer.Text())
		}
	}
}

// CartQuantity 从渲染后的购物车预览片段中读取总数量。
// 取第一个携带 data-cart-quantity 属性的节点的取值，缺失或非法时返回 0。
func CartQuantity(fragment string) int {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			return 0
		}
		if tokenType != html.StartTagToken && tokenType != html.SelfClosingTagToken {
			continue
		}

		_, hasAttr := tokenizer.TagName()
		for hasAttr {
			var key, value []byte
			key, value, hasAttr = tokenizer.TagAttr()
			if string(key) != "data-cart-quantity" {
				continue
			}
			quantity, err := strconv.Atoi(strings.TrimSpace(string(value)))
			if err != nil {
				return 0
			}
			return quantity
		}
	}
}
