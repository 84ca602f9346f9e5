package config

import (
	"time"

	"github.com/spf13/viper"
)

// DefaultTimeLayout mirrors the en-US toLocaleString output, e.g. "11/14/2023, 10:13:20 PM".
const DefaultTimeLayout = "1/2/2006, 3:04:05 PM"

// Display display config struct
type Display struct {
	TimeZone   string
	TimeLayout string
	Location   *time.Location
}

func getDisplayConfig(v *viper.Viper) *Display {
	d := &Display{
		TimeZone:   getStringOrDefault(v, "display.time_zone", "Local"),
		TimeLayout: getStringOrDefault(v, "display.time_layout", DefaultTimeLayout),
		Location:   time.Local,
	}
	if loc, err := time.LoadLocation(d.TimeZone); err == nil {
		d.Location = loc
	}
	return d
}
