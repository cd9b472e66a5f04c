package cmd

import "time"

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	StaleOrderSchedule string
	StaleOrderMaxAge   time.Duration
	ReconcileSchedule  string
	ReconcileMinAge    time.Duration
}
