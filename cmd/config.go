package main

import (
	"github.com/kelseyhightower/envconfig"
)

// Request describes the chart to dump, read from CHART_* variables.
type Request struct {
	Date        string  `envconfig:"DATE" required:"true"`
	Time        string  `envconfig:"TIME" default:"12:00"`
	Timezone    string  `envconfig:"TIMEZONE"`
	Latitude    float64 `envconfig:"LATITUDE" required:"true"`
	Longitude   float64 `envconfig:"LONGITUDE" required:"true"`
	Place       string  `envconfig:"PLACE"`
	HouseSystem string  `envconfig:"HOUSE_SYSTEM"`
	// CHART_PROGRESS_TO adds the progressed chart for that date (YYYY-MM-DD)
	ProgressTo string `envconfig:"PROGRESS_TO"`
	// CHART_COLOURS enables colorized section headers
	Colours bool `envconfig:"COLOURS" default:"true"`
}

func LoadRequest() (Request, error) {
	var req Request
	err := envconfig.Process("chart", &req)
	return req, err
}
