// Package weather talks to the OpenWeatherMap current-weather endpoint
// and pulls the handful of values thundery displays out of its response.
package weather
