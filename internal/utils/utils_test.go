package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"notesapi/internal/utils"
)

func TestFormatEpoch(t *testing.T) {
	assert.Equal(t, "2023-11-14T22:13:20Z", utils.FormatEpoch(1700000000000))
	assert.Equal(t, "1970-01-01T00:00:00Z", utils.FormatEpoch(0))
}

func TestNowUTCIsMillis(t *testing.T) {
	now := utils.NowUTC()
	assert.InDelta(t, time.Now().UnixMilli(), now, 1000)
}
