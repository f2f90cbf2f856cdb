package catalog

import (
	"fmt"

	"golang.org/x/text/language"

	"cycletext/internal/content"
	"cycletext/internal/domain"
	"cycletext/internal/domain/entities"
)

func unitsTable() content.Table {
	return content.Table{
		Name: "units",
		Entries: []content.Entry{
			content.Static(KeyUnitsTemperature, language.English,
				"Settings option table: selectable temperature units, keyed by unit identifier.",
				map[string]string{
					string(entities.UnitCelsius):    "Celsius (°C)",
					string(entities.UnitFahrenheit): "Fahrenheit (°F)",
				}),
			content.Static(KeyUnitsTemperature, language.German,
				"Settings option table: selectable temperature units, keyed by unit identifier.",
				map[string]string{
					string(entities.UnitCelsius):    "Celsius (°C)",
					string(entities.UnitFahrenheit): "Fahrenheit (°F)",
				}),

			temperatureReading(language.English),
			temperatureReading(language.German),
		},
	}
}

// temperatureReading renders a measured temperature in the user's
// preferred unit. Readings are stored in Celsius; Fahrenheit
// preference converts at display time.
func temperatureReading(lang language.Tag) content.Entry {
	return content.Template(KeyTemperatureReading, lang,
		"Measured temperature line. celsius is the stored reading in °C.",
		[]string{"celsius"},
		func(args []content.Value, env content.Env) (content.Value, error) {
			celsius, ok := args[0].(float64)
			if !ok {
				return nil, fmt.Errorf("temperature reading: celsius argument must be float64, got %T", args[0])
			}
			switch env.State.Unit {
			case entities.UnitCelsius:
				return fmt.Sprintf("%.1f °C", celsius), nil
			case entities.UnitFahrenheit:
				return fmt.Sprintf("%.1f °F", celsius*9/5+32), nil
			}
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, env.State.Unit)
		})
}
