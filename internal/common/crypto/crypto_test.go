// Package crypto 密码哈希工具单元测试
package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Success(t *testing.T) {
	passwords := []string{
		"password123",
		"StrongP@ssw0rd!",
		"简单密码",
		"12345678",
		strings.Repeat("x", 72), // bcrypt最大长度
	}

	for _, password := range passwords {
		t.Run(password, func(t *testing.T) {
			hash, err := HashPassword(password)
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, password, hash)
			assert.True(t, strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$"))
		})
	}
}

func TestHashPassword_DifferentHashes(t *testing.T) {
	password := "password123"

	// 多次哈希同一密码应该产生不同的哈希值（因为salt是随机的）
	hash1, err := HashPassword(password)
	require.NoError(t, err)

	hash2, err := HashPassword(password)
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "相同密码应产生不同哈希值（随机salt）")

	// 但都应该能验证通过
	assert.True(t, VerifyPassword(password, hash1))
	assert.True(t, VerifyPassword(password, hash2))
}

func TestVerifyPassword_Success(t *testing.T) {
	password := "MySecretPassword123!"
	hash, err := HashPassword(password)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(password, hash))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	password := "correct_password"
	hash, err := HashPassword(password)
	require.NoError(t, err)

	tests := []string{
		"wrong_password",
		"Correct_password", // 大小写敏感
		"correct_passwor",  // 少一个字符
		"correct_password ", // 多一个空格
		"",
	}

	for _, wrongPassword := range tests {
		t.Run(wrongPassword, func(t *testing.T) {
			assert.False(t, VerifyPassword(wrongPassword, hash))
		})
	}
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	assert.False(t, VerifyPassword("password", "invalid-hash"))
	assert.False(t, VerifyPassword("password", ""))
	assert.False(t, VerifyPassword("password", "$2a$10$invalid"))
}

func BenchmarkHashPassword(b *testing.B) {
	password := "MySecretPassword123!"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword(password)
	}
}

func BenchmarkVerifyPassword(b *testing.B) {
	password := "MySecretPassword123!"
	hash, _ := HashPassword(password)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = VerifyPassword(password, hash)
	}
}
