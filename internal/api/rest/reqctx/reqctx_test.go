package reqctx

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("round trip", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		want := uuid.New()

		SetUserID(c, want)
		got, ok := UserID(c)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("unset", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, ok := UserID(c)
		assert.False(t, ok)
	})

	t.Run("nil user id rejected", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		SetUserID(c, uuid.Nil)
		_, ok := UserID(c)
		assert.False(t, ok)
	})
}
