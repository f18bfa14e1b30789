// Package imageutil 提供主题图片 URL 的尺寸解析。
package imageutil

import "strings"

// sizeToken 图片 URL 模板中的尺寸占位符
const sizeToken = "{:size}"

// Sizes 定义主题配置的两档图片尺寸，如 "1280x1280" / "608x608"
type Sizes struct {
	Zoom    string
	Product string
}

// GetSrc 将 URL 模板中的尺寸占位符替换为目标尺寸；
// 模板不含占位符时原样返回（部分 CDN 链接不参与尺寸协商）。
func GetSrc(urlTemplate, size string) string {
	if !strings.Contains(urlTemplate, sizeToken) {
		return urlTemplate
	}
	return strings.ReplaceAll(urlTemplate, sizeToken, size)
}
