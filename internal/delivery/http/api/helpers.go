package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
)

// currentActor reads the verified claims set by the auth middleware.
func currentActor(c *gin.Context) domain.Actor {
	id, _ := c.Get(string(domain.KeyUserID))
	userID, _ := id.(int64)
	return domain.Actor{
		UserID:   userID,
		UserType: c.GetString(string(domain.KeyUserType)),
		Email:    c.GetString(string(domain.KeyUserEmail)),
	}
}

// pathID parses a numeric path parameter, attaching a 400 on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.Error(apperror.BadRequest("Invalid " + name))
		return 0, false
	}
	return id, true
}

// pageParams reads page and limit query parameters; zero means "use default".
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return page, limit
}

func queryFloat(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryBool(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt64(c *gin.Context, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
