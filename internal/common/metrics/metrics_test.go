// Package metrics 提供 Prometheus 指标收集单元测试
package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestInit(t *testing.T) {
	t.Run("使用默认命名空间", func(t *testing.T) {
		m := Init("")
		require.NotNil(t, m)
		assert.NotNil(t, m.httpRequestsTotal)
		assert.NotNil(t, m.httpRequestDuration)
		assert.NotNil(t, m.httpRequestsInFlight)
		assert.NotNil(t, m.dbQueriesTotal)
		assert.NotNil(t, m.dbQueryDuration)
		assert.NotNil(t, m.cacheHitsTotal)
		assert.NotNil(t, m.cacheMissesTotal)
		assert.NotNil(t, m.reportsTotal)
		assert.NotNil(t, m.aggregationDuration)
		assert.NotNil(t, m.aggregatedRecords)
		assert.NotNil(t, m.snapshotPersists)
		assert.NotNil(t, m.shopsTotal)
	})

	t.Run("使用自定义命名空间", func(t *testing.T) {
		m := Init("custom_namespace")
		require.NotNil(t, m)
	})
}

func TestGetMetrics(t *testing.T) {
	t.Run("获取已初始化的指标", func(t *testing.T) {
		Init("test")
		m := GetMetrics()
		require.NotNil(t, m)
	})

	t.Run("获取指标实例", func(t *testing.T) {
		// GetMetrics 应该返回非空指标实例
		m := GetMetrics()
		require.NotNil(t, m)
	})
}

func TestMetrics_RecordDBQuery(t *testing.T) {
	m := Init("test_db")

	t.Run("记录SELECT查询", func(t *testing.T) {
		// 不会panic即为成功
		m.RecordDBQuery("SELECT", "shops", 10*time.Millisecond)
	})

	t.Run("记录INSERT查询", func(t *testing.T) {
		m.RecordDBQuery("INSERT", "agent_shops", 5*time.Millisecond)
	})

	t.Run("记录UPDATE查询", func(t *testing.T) {
		m.RecordDBQuery("UPDATE", "revenue_snapshots", 3*time.Millisecond)
	})

	t.Run("记录DELETE查询", func(t *testing.T) {
		m.RecordDBQuery("DELETE", "banners", 2*time.Millisecond)
	})
}

func TestMetrics_RecordCache(t *testing.T) {
	m := Init("test_cache")

	t.Run("记录缓存命中", func(t *testing.T) {
		m.RecordCacheHit("shop_cache")
		m.RecordCacheHit("session_cache")
	})

	t.Run("记录缓存未命中", func(t *testing.T) {
		m.RecordCacheMiss("shop_cache")
		m.RecordCacheMiss("config_cache")
	})
}

func TestMetrics_RecordReport(t *testing.T) {
	m := Init("test_reports")

	t.Run("记录成功报表", func(t *testing.T) {
		m.RecordReport("month", "success")
	})

	t.Run("记录失败报表", func(t *testing.T) {
		m.RecordReport("today", "failure")
	})
}

func TestMetrics_RecordAggregation(t *testing.T) {
	m := Init("test_aggregation")

	t.Run("记录聚合耗时", func(t *testing.T) {
		m.RecordAggregation("month", 25*time.Millisecond)
		m.RecordAggregation("now", 5*time.Millisecond)
	})

	t.Run("记录聚合覆盖记录数", func(t *testing.T) {
		m.SetAggregatedRecords("admin", 120)
		m.SetAggregatedRecords("agent", 45)
	})
}

func TestMetrics_RecordSnapshotPersist(t *testing.T) {
	m := Init("test_snapshots")

	t.Run("记录落库成功", func(t *testing.T) {
		m.RecordSnapshotPersist("success")
	})

	t.Run("记录落库失败", func(t *testing.T) {
		m.RecordSnapshotPersist("failure")
	})
}

func TestMetrics_SetShopsTotal(t *testing.T) {
	m := Init("test_shops")

	t.Run("设置商铺总数", func(t *testing.T) {
		m.SetShopsTotal(100)
		m.SetShopsTotal(150)
	})
}

func TestRecordHTTPRequest(t *testing.T) {
	Init("test_http")

	t.Run("记录HTTP请求", func(t *testing.T) {
		RecordHTTPRequest("GET", "/api/admin/shops", "200", 100*time.Millisecond)
		RecordHTTPRequest("POST", "/api/admin/shops", "201", 50*time.Millisecond)
		RecordHTTPRequest("GET", "/api/admin/shops/1", "404", 10*time.Millisecond)
		RecordHTTPRequest("POST", "/api/admin/auth/login", "500", 200*time.Millisecond)
	})
}

func TestRecordDBQueryGlobal(t *testing.T) {
	Init("test_global")

	t.Run("全局记录数据库查询", func(t *testing.T) {
		RecordDBQueryGlobal("SELECT", "pages", 15*time.Millisecond)
	})
}

func TestRecordCacheGlobal(t *testing.T) {
	Init("test_global_cache")

	t.Run("全局记录缓存命中", func(t *testing.T) {
		RecordCacheHitGlobal("report_cache")
	})

	t.Run("全局记录缓存未命中", func(t *testing.T) {
		RecordCacheMissGlobal("report_cache")
	})
}

func TestMetrics_Middleware(t *testing.T) {
	m := Init("test_middleware")

	router := gin.New()
	router.Use(m.Middleware())

	router.GET("/api/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, "metrics")
	})

	t.Run("记录请求指标", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/test", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("跳过/metrics端点", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/metrics", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler(t *testing.T) {
	Init("test_handler")

	router := gin.New()
	router.GET("/metrics", Handler())

	t.Run("返回Prometheus指标", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/metrics", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		// Prometheus 指标应该包含一些标准内容
		body := w.Body.String()
		assert.Contains(t, body, "go_")  // Go 运行时指标
	})
}
