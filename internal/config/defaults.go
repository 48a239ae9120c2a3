package config

import "time"

const (
	DefaultHTTPPort            = "8080"
	DefaultShutdownTimeout     = 10 * time.Second
	DefaultRequestTimeout      = 15 * time.Second
	DefaultAlphaVantageBaseURL = "https://www.alphavantage.co/query"
)
