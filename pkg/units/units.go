// Package units converts between the measurement systems used to lay out
// token sheets: inches for configuration values, printer's points for page
// coordinates, and pixels for raster images.
package units

// PointsPerInch is the number of printer's points in one inch.
const PointsPerInch = 72.0

// FromInches converts a length in inches to points.
func FromInches(inches float64) float64 {
	return inches * PointsPerInch
}

// ToInches converts a length in points to inches.
func ToInches(points float64) float64 {
	return points / PointsPerInch
}

// Pixels converts a length in points to a whole pixel count at the given
// resolution, truncating any fractional remainder.
func Pixels(points float64, dpi int) int {
	return int(points * float64(dpi) / PointsPerInch)
}
