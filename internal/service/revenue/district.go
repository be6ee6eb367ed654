package revenue

import (
	"strings"
)

// districtStrategy 单条地区解析策略，返回空串表示未命中
type districtStrategy func(r Record) string

// districtStrategies 地区解析策略链，按序取首个非空结果：
// 显式地区字段 → 城市字段 → 地址最后一个逗号分段
// 启发式解析存在漏判，无法解析的记录不进入地区榜单
var districtStrategies = []districtStrategy{
	func(r Record) string { return r.District },
	func(r Record) string { return r.City },
	func(r Record) string {
		segments := strings.Split(r.Address, ",")
		for i := len(segments) - 1; i >= 0; i-- {
			if s := strings.TrimSpace(segments[i]); s != "" {
				return s
			}
		}
		return ""
	},
}

// NormalizeDistrict 从记录的原始字段解析规范地区名
// 首个非空策略结果生效，去除首尾空白并转大写；
// 解析结果长度不足 2 视为缺失
func NormalizeDistrict(r Record) (string, bool) {
	for _, strategy := range districtStrategies {
		value := normalizeDistrictName(strategy(r))
		if value == "" {
			continue
		}
		if len(value) < 2 {
			return "", false
		}
		return value, true
	}
	return "", false
}

// normalizeDistrictName 地区名规范化，去首尾空白并转大写
func normalizeDistrictName(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
