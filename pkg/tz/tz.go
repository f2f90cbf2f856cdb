package tz

import "time"

// Zurich is the Europe/Zurich location (CET/CEST with automatic DST),
// the product's home timezone.
var Zurich *time.Location

func init() {
	var err error
	Zurich, err = time.LoadLocation("Europe/Zurich")
	if err != nil {
		panic("tz: load Europe/Zurich: " + err.Error())
	}
}
