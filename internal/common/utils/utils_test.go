// Package utils 通用工具函数单元测试
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ==================== ValidatePhone 测试 ====================

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"Valid 13x", "13812345678", true},
		{"Valid 15x", "15812345678", true},
		{"Valid 18x", "18812345678", true},
		{"Valid 19x", "19812345678", true},
		{"Too short", "1381234567", false},
		{"Too long", "138123456789", false},
		{"Invalid prefix", "12812345678", false},
		{"Contains letters", "1381234567a", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidatePhone(tt.phone)
			assert.Equal(t, tt.want, result)
		})
	}
}

// ==================== ValidateEmail 测试 ====================

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"Valid simple", "user@example.com", true},
		{"Valid with dot", "user.name@example.com", true},
		{"Valid with plus", "user+tag@example.com", true},
		{"Valid subdomain", "user@mail.example.com", true},
		{"No @ sign", "userexample.com", false},
		{"No domain", "user@", false},
		{"No local part", "@example.com", false},
		{"No TLD", "user@example", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateEmail(tt.email)
			assert.Equal(t, tt.want, result)
		})
	}
}

// ==================== Slugify 测试 ====================

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"Simple", "About Us", "about-us"},
		{"Mixed case", "Terms Of Service", "terms-of-service"},
		{"Punctuation", "FAQ: Payments & Refunds!", "faq-payments-refunds"},
		{"Leading and trailing spaces", "  Contact  ", "contact"},
		{"Consecutive separators", "a -- b", "a-b"},
		{"Numbers kept", "Top 10 Shops 2026", "top-10-shops-2026"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

// ==================== 指针函数测试 ====================

func TestStringPtr(t *testing.T) {
	s := "test"
	ptr := StringPtr(s)
	assert.NotNil(t, ptr)
	assert.Equal(t, s, *ptr)
}

func TestIntPtr(t *testing.T) {
	i := 123
	ptr := IntPtr(i)
	assert.NotNil(t, ptr)
	assert.Equal(t, i, *ptr)
}

func TestInt64Ptr(t *testing.T) {
	i := int64(12345)
	ptr := Int64Ptr(i)
	assert.NotNil(t, ptr)
	assert.Equal(t, i, *ptr)
}

func TestFloat64Ptr(t *testing.T) {
	f := 123.45
	ptr := Float64Ptr(f)
	assert.NotNil(t, ptr)
	assert.Equal(t, f, *ptr)
}

func TestTimePtr(t *testing.T) {
	now := time.Now()
	ptr := TimePtr(now)
	assert.NotNil(t, ptr)
	assert.Equal(t, now, *ptr)
}

// ==================== 安全取值函数测试 ====================

func TestSafeString(t *testing.T) {
	s := "test"
	assert.Equal(t, s, SafeString(&s))
	assert.Equal(t, "", SafeString(nil))
}

func TestSafeInt(t *testing.T) {
	i := 123
	assert.Equal(t, i, SafeInt(&i))
	assert.Equal(t, 0, SafeInt(nil))
}

func TestSafeInt64(t *testing.T) {
	i := int64(12345)
	assert.Equal(t, i, SafeInt64(&i))
	assert.Equal(t, int64(0), SafeInt64(nil))
}

func TestSafeFloat64(t *testing.T) {
	f := 2999.0
	assert.Equal(t, f, SafeFloat64(&f))
	assert.Equal(t, 0.0, SafeFloat64(nil))
}

// ==================== 泛型函数测试 ====================

func TestContains(t *testing.T) {
	t.Run("String slice", func(t *testing.T) {
		slice := []string{"a", "b", "c"}
		assert.True(t, Contains(slice, "a"))
		assert.True(t, Contains(slice, "b"))
		assert.False(t, Contains(slice, "d"))
	})

	t.Run("Int slice", func(t *testing.T) {
		slice := []int{1, 2, 3}
		assert.True(t, Contains(slice, 1))
		assert.False(t, Contains(slice, 4))
	})

	t.Run("Empty slice", func(t *testing.T) {
		slice := []string{}
		assert.False(t, Contains(slice, "a"))
	})
}

func TestUnique(t *testing.T) {
	t.Run("String slice", func(t *testing.T) {
		slice := []string{"a", "b", "a", "c", "b"}
		result := Unique(slice)
		assert.Len(t, result, 3)
		assert.ElementsMatch(t, []string{"a", "b", "c"}, result)
	})

	t.Run("Int slice", func(t *testing.T) {
		slice := []int{1, 2, 1, 3, 2, 4}
		result := Unique(slice)
		assert.Len(t, result, 4)
		assert.ElementsMatch(t, []int{1, 2, 3, 4}, result)
	})

	t.Run("Empty slice", func(t *testing.T) {
		slice := []string{}
		result := Unique(slice)
		assert.Empty(t, result)
	})

	t.Run("No duplicates", func(t *testing.T) {
		slice := []int{1, 2, 3}
		result := Unique(slice)
		assert.Equal(t, slice, result)
	})
}

func TestMax(t *testing.T) {
	assert.Equal(t, 5, Max(5, 3))
	assert.Equal(t, 5, Max(3, 5))
	assert.Equal(t, 5, Max(5, 5))
	assert.Equal(t, int64(100), Max(int64(100), int64(50)))
	assert.Equal(t, 10.5, Max(10.5, 8.2))
}

func TestMin(t *testing.T) {
	assert.Equal(t, 3, Min(5, 3))
	assert.Equal(t, 3, Min(3, 5))
	assert.Equal(t, 5, Min(5, 5))
	assert.Equal(t, int64(50), Min(int64(100), int64(50)))
	assert.Equal(t, 8.2, Min(10.5, 8.2))
}

// ==================== Pagination 测试 ====================

func TestPagination_GetOffset(t *testing.T) {
	tests := []struct {
		page     int
		pageSize int
		want     int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 10, 20},
		{1, 20, 0},
		{5, 15, 60},
	}

	for _, tt := range tests {
		p := &Pagination{Page: tt.page, PageSize: tt.pageSize}
		assert.Equal(t, tt.want, p.GetOffset())
	}
}

func TestPagination_GetLimit(t *testing.T) {
	p := &Pagination{PageSize: 20}
	assert.Equal(t, 20, p.GetLimit())
}

func TestPagination_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		expectedPage int
		expectedSize int
	}{
		{"Normal", 2, 20, 2, 20},
		{"Page too small", 0, 20, 1, 20},
		{"Page negative", -1, 20, 1, 20},
		{"PageSize too small", 1, 0, 1, 10},
		{"PageSize too large", 1, 200, 1, 100},
		{"Both invalid", 0, 0, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pagination{Page: tt.page, PageSize: tt.pageSize}
			p.Normalize()
			assert.Equal(t, tt.expectedPage, p.Page)
			assert.Equal(t, tt.expectedSize, p.PageSize)
		})
	}
}

func TestPagination_GetTotalPages(t *testing.T) {
	tests := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{100, 10, 10},
		{95, 10, 10}, // 向上取整
		{91, 10, 10}, // 向上取整
		{0, 10, 0},
		{5, 10, 1},
		{100, 20, 5},
	}

	for _, tt := range tests {
		p := &Pagination{Total: tt.total, PageSize: tt.pageSize}
		assert.Equal(t, tt.want, p.GetTotalPages())
	}
}

// ==================== 性能测试 ====================

func BenchmarkValidatePhone(b *testing.B) {
	phone := "13812345678"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ValidatePhone(phone)
	}
}

func BenchmarkValidateEmail(b *testing.B) {
	email := "user@example.com"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ValidateEmail(email)
	}
}

func BenchmarkSlugify(b *testing.B) {
	title := "FAQ: Payments & Refunds!"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Slugify(title)
	}
}
