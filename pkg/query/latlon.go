package query

import (
	"regexp"
	"strconv"
	"strings"
)

// decimalPair matches two signed decimal numbers separated by a comma or
// whitespace, optionally followed by a hemisphere letter (N/S/E/W).
var decimalPair = regexp.MustCompile(`(?i)^\s*([+-]?\d{1,3}(?:\.\d+)?)\s*([NSns])?\s*[,\s]\s*([+-]?\d{1,3}(?:\.\d+)?)\s*([EWew])?\s*$`)

// dmsPair matches degree/minute/second pairs, e.g. `55°45'20.9"N 37°37'03.4"E`.
var dmsPair = regexp.MustCompile(`(?i)^\s*(\d{1,3})[°d\s]+(\d{1,2})['m\s]+(\d{1,2}(?:\.\d+)?)["s]?\s*([NSns])\s*[,\s]\s*(\d{1,3})[°d\s]+(\d{1,2})['m\s]+(\d{1,2}(?:\.\d+)?)["s]?\s*([EWew])\s*$`)

// LatLon is the decoded result of MatchLatLon.
type LatLon struct {
	Lat, Lon           float64
	LatPrec, LonPrec int
}

// MatchLatLon recognizes raw as a lat/lon literal (the whole string, apart
// from surrounding whitespace, must be the literal) and, on success, returns
// the decoded coordinate. Failure is silent: ok is false,
// never an error.
func MatchLatLon(raw string) (result LatLon, ok bool) {
	if m := decimalPair.FindStringSubmatch(raw); m != nil {
		return decodeDecimalPair(m)
	}
	if m := dmsPair.FindStringSubmatch(raw); m != nil {
		return decodeDMSPair(m)
	}
	return LatLon{}, false
}

func decodeDecimalPair(m []string) (LatLon, bool) {
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return LatLon{}, false
	}
	lon, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return LatLon{}, false
	}

	if hemi := strings.ToUpper(m[2]); hemi == "S" {
		lat = -abs(lat)
	}
	if hemi := strings.ToUpper(m[4]); hemi == "W" {
		lon = -abs(lon)
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return LatLon{}, false
	}

	return LatLon{
		Lat:     lat,
		Lon:     lon,
		LatPrec: decimalPrecision(m[1]),
		LonPrec: decimalPrecision(m[3]),
	}, true
}

func decodeDMSPair(m []string) (LatLon, bool) {
	lat, ok := dmsToDecimal(m[1], m[2], m[3], m[4], "N", "S")
	if !ok {
		return LatLon{}, false
	}
	lon, ok := dmsToDecimal(m[5], m[6], m[7], m[8], "E", "W")
	if !ok {
		return LatLon{}, false
	}
	return LatLon{Lat: lat, Lon: lon, LatPrec: 5, LonPrec: 5}, true
}

func dmsToDecimal(degS, minS, secS, hemi, pos, neg string) (float64, bool) {
	deg, err := strconv.ParseFloat(degS, 64)
	if err != nil {
		return 0, false
	}
	min, err := strconv.ParseFloat(minS, 64)
	if err != nil {
		return 0, false
	}
	sec, err := strconv.ParseFloat(secS, 64)
	if err != nil {
		return 0, false
	}

	value := deg + min/60 + sec/3600
	if strings.EqualFold(hemi, neg) {
		value = -value
	} else if !strings.EqualFold(hemi, pos) {
		return 0, false
	}
	return value, true
}

func decimalPrecision(s string) int {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
