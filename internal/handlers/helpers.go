package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akash6998s/langarsewa-go/internal/repository"
)

// yearParam reads a year from the query string, defaulting to the current
// year when absent or unparseable.
func yearParam(c *gin.Context) int {
	if v := c.Query("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil && year > 0 {
			return year
		}
	}
	return time.Now().Year()
}

func yearKey(year int) string {
	return strconv.Itoa(year)
}

// rollParam parses the roll number path parameter.
func rollParam(c *gin.Context) (int, bool) {
	roll, err := strconv.Atoi(c.Param("roll_no"))
	if err != nil || roll < 1 {
		return 0, false
	}
	return roll, true
}

// isBadInput reports whether a repository error is caller-caused.
func isBadInput(err error) bool {
	return errors.Is(err, repository.ErrInvalidMonth) ||
		errors.Is(err, repository.ErrInvalidDay) ||
		errors.Is(err, repository.ErrInvalidWeekday)
}
