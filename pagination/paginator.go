// Package pagination 提供成员主页使用的窗口式分页计算。
package pagination

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// PageParam 页码查询参数名
const PageParam = "p"

// Paginate 返回以 currentPage 为中心、长度不超过 windowSize 的连续页码。
// 靠近两端无法居中时向另一端补足；pageCount 为 0 时返回空切片。
func Paginate(currentPage, pageSize, pageCount, windowSize int) []int {
	if pageCount <= 0 || windowSize <= 0 {
		return []int{}
	}

	if pageCount < windowSize {
		ret := make([]int, pageCount)
		for i := range ret {
			ret[i] = i + 1
		}
		return ret
	}

	first := currentPage + 1 - windowSize/2
	if first < 1 {
		first = 1
	}
	if first+windowSize > pageCount {
		first = pageCount - windowSize + 1
	}

	ret := make([]int, windowSize)
	for i := range ret {
		ret[i] = first + i
	}
	return ret
}

// PageCountOf 计算总页数 ceil(recordCount / pageSize)
func PageCountOf(recordCount int64, pageSize int) int {
	if recordCount <= 0 || pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(recordCount) / float64(pageSize)))
}

// GetPage 从查询参数 p 解析当前页码，缺省或非法时为 1，小于 1 时取 1
func GetPage(c *gin.Context) int {
	raw := strings.TrimSpace(c.Query(PageParam))
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
