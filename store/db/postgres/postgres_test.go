package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	assert.Nil(t, formatDate(sql.NullTime{}))

	got := formatDate(sql.NullTime{Valid: true, Time: time.Date(2021, 3, 1, 14, 30, 0, 0, time.UTC)})
	require.NotNil(t, got)
	assert.Equal(t, "2021-03-01", *got)
}

func TestDateString(t *testing.T) {
	assert.Empty(t, dateString(sql.NullTime{}))
	assert.Equal(t, "2019-12-31", dateString(sql.NullTime{Valid: true, Time: time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC)}))
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "$1", placeholder(1))
	assert.Equal(t, "$12", placeholder(12))
}

func TestIdentPattern(t *testing.T) {
	assert.True(t, identPattern.MatchString("cv_chunks"))
	assert.True(t, identPattern.MatchString("_private"))
	assert.False(t, identPattern.MatchString("cv-chunks"))
	assert.False(t, identPattern.MatchString("cv_chunks; DROP TABLE skills"))
	assert.False(t, identPattern.MatchString("1chunks"))
	assert.False(t, identPattern.MatchString(""))
}
