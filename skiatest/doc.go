// Package skiatest provides fixtures and assertions for tests that exercise
// the gg drawing surface.
//
// The reference fixture is a 40x40 bitmap split into four quadrants:
//
//	+--------+--------+
//	|  red   | green  |
//	+--------+--------+
//	|  blue  | yellow |
//	+--------+--------+
//
// Each quadrant is solid and carries the same alpha. [CreateTestBitmap]
// builds it, [ValidateTestBitmap] and [ValidateTestPixmap] check one pixel
// in the middle of every quadrant, and [SaveBitmap] writes a copy under the
// configured images directory for manual inspection.
package skiatest
