package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageCount  int
		windowSize int
		want       []int
	}{
		{"无数据", 1, 0, 7, []int{}},
		{"总页数小于窗口", 2, 4, 7, []int{1, 2, 3, 4}},
		{"总页数等于窗口", 3, 7, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"居中", 10, 20, 5, []int{9, 10, 11, 12, 13}},
		{"靠近首页", 1, 20, 5, []int{1, 2, 3, 4, 5}},
		{"靠近末页", 20, 20, 5, []int{16, 17, 18, 19, 20}},
		{"倒数第二页", 19, 20, 5, []int{16, 17, 18, 19, 20}},
		{"偶数窗口", 10, 20, 4, []int{9, 10, 11, 12}},
		{"窗口为零", 1, 5, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(tt.page, 15, tt.pageCount, tt.windowSize))
		})
	}
}

func TestPaginateWindowIsContiguous(t *testing.T) {
	for pageCount := 1; pageCount <= 30; pageCount++ {
		for window := 1; window <= 10; window++ {
			for page := 1; page <= pageCount; page++ {
				nums := Paginate(page, 10, pageCount, window)
				assert.NotEmpty(t, nums)
				assert.LessOrEqual(t, len(nums), window)
				assert.GreaterOrEqual(t, nums[0], 1)
				assert.LessOrEqual(t, nums[len(nums)-1], pageCount)
				for i := 1; i < len(nums); i++ {
					assert.Equal(t, nums[i-1]+1, nums[i])
				}
			}
		}
	}
}

func TestPageCountOf(t *testing.T) {
	assert.Equal(t, 0, PageCountOf(0, 15))
	assert.Equal(t, 1, PageCountOf(1, 15))
	assert.Equal(t, 1, PageCountOf(15, 15))
	assert.Equal(t, 2, PageCountOf(16, 15))
	assert.Equal(t, 4, PageCountOf(47, 15))
	assert.Equal(t, 0, PageCountOf(10, 0))
}

func TestGetPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := map[string]int{
		"/":        1,
		"/?p=":     1,
		"/?p=2":    2,
		"/?p=0":    1,
		"/?p=-3":   1,
		"/?p=abc":  1,
		"/?p=%202": 2,
		"/?p=999":  999,
	}
	for target, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", target, nil)
		assert.Equal(t, want, GetPage(c), target)
	}
}
