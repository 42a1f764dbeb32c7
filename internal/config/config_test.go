package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func TestConfig_Check(t *testing.T) {
	valid := Config{
		Calendar: CalendarConfig{Timezone: "Asia/Jakarta"},
		Session:  SessionConfig{TTL: 24 * time.Hour},
	}
	assert.NoError(t, valid.check())

	badZone := valid
	badZone.Calendar.Timezone = "Mars/Olympus"
	assert.Error(t, badZone.check())

	shortTTL := valid
	shortTTL.Session.TTL = 30 * time.Second
	assert.Error(t, shortTTL.check())
}

func TestCalendarConfig_Location(t *testing.T) {
	loc := CalendarConfig{Timezone: "Asia/Jakarta"}.Location()
	_, offset := time.Date(2025, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, 7*60*60, offset)
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	assert.Equal(t, logger.DebugLevel, LoggerConfig{Level: "debug"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: "verbose"}.LogLevel())
}
