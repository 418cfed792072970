package cli

import "time"

type Options struct {
	BaseURL  string
	Timeout  time.Duration
	LogFile  string
	Debug    bool
	JSON     bool
	Search   string
	Page     int
	Limit    int
	SortBy   string
	Order    string
	File     string
	Category int
	Active   string
	GSTRate  float64
}
