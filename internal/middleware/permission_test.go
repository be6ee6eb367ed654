package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dumeirei/biz-directory-backend/internal/models"
)

func TestRequireRoles_AllowsMatchingRole(t *testing.T) {
	manager := newTestJWTManager()
	r := newAdminAuthRouter(manager, RequireRoles(models.AdminRoleSuper, models.AdminRoleAdmin))

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, manager, 1, models.AdminRoleAdmin))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_RejectsOtherRole(t *testing.T) {
	manager := newTestJWTManager()
	r := newAdminAuthRouter(manager, RequireRoles(models.AdminRoleSuper))

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, manager, 1, models.AdminRoleAdmin))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireSuperAdmin(t *testing.T) {
	manager := newTestJWTManager()
	r := newAdminAuthRouter(manager, RequireSuperAdmin())

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, manager, 1, models.AdminRoleSuper))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
