package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopcart-backend/database"
	"shopcart-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newIdentityDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestCallerIdentitySetsUserAndCreatesRow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newIdentityDB(t)
	user := models.User{ID: "u1", Name: "Demo User", Email: "demo@example.com"}

	r := gin.New()
	r.Use(CallerIdentity(db, user))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id"))
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/whoami", nil))
		if w.Code != http.StatusOK || w.Body.String() != "u1" {
			t.Fatalf("expected 200 u1, got %d %q", w.Code, w.Body.String())
		}
	}

	var stored models.User
	if err := db.First(&stored, "id = ?", "u1").Error; err != nil {
		t.Fatalf("expected user row: %v", err)
	}
	if stored.Name != "Demo User" || stored.Email != "demo@example.com" {
		t.Errorf("unexpected user row: %+v", stored)
	}
}

func TestCallerIdentityFailsWhenStoreIsDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newIdentityDB(t)
	sqlDB, _ := db.DB()
	sqlDB.Close()

	r := gin.New()
	r.Use(CallerIdentity(db, models.User{ID: "u1"}))
	r.GET("/whoami", func(c *gin.Context) {
		t.Error("handler should not run")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/whoami", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
