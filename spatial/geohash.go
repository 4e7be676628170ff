package spatial

// Base32 alphabet used by the geohash encoding
const geohashBase32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// EncodeGeohash encodes a latitude/longitude into a geohash string.
// precision is the number of characters (clamped to 1-12)
func EncodeGeohash(lat, lon float64, precision int) string {
	if precision < 1 {
		precision = 1
	}
	if precision > 12 {
		precision = 12
	}

	latRange := [2]float64{-90.0, 90.0}
	lonRange := [2]float64{-180.0, 180.0}

	geohash := make([]byte, 0, precision)
	bits := 0
	bit := 0
	ch := 0

	for len(geohash) < precision {
		if bit%2 == 0 {
			// Longitude bit
			mid := (lonRange[0] + lonRange[1]) / 2
			if lon > mid {
				ch |= 1 << (4 - bits)
				lonRange[0] = mid
			} else {
				lonRange[1] = mid
			}
		} else {
			// Latitude bit
			mid := (latRange[0] + latRange[1]) / 2
			if lat > mid {
				ch |= 1 << (4 - bits)
				latRange[0] = mid
			} else {
				latRange[1] = mid
			}
		}

		bits++
		if bits == 5 {
			geohash = append(geohash, geohashBase32[ch])
			bits = 0
			ch = 0
		}
		bit++
	}

	return string(geohash)
}

// DecodeGeohash decodes a geohash string into the center point of its cell
func DecodeGeohash(geohash string) (lat, lon float64) {
	latRange := [2]float64{-90.0, 90.0}
	lonRange := [2]float64{-180.0, 180.0}

	isLon := true
	for i := 0; i < len(geohash); i++ {
		idx := indexOfGeohashBase32(geohash[i])
		if idx == -1 {
			continue
		}

		for mask := 16; mask > 0; mask >>= 1 {
			if isLon {
				mid := (lonRange[0] + lonRange[1]) / 2
				if idx&mask != 0 {
					lonRange[0] = mid
				} else {
					lonRange[1] = mid
				}
			} else {
				mid := (latRange[0] + latRange[1]) / 2
				if idx&mask != 0 {
					latRange[0] = mid
				} else {
					latRange[1] = mid
				}
			}
			isLon = !isLon
		}
	}

	lat = (latRange[0] + latRange[1]) / 2
	lon = (lonRange[0] + lonRange[1]) / 2
	return
}

// GeohashCellSize returns the approximate cell size in meters at the equator
// for a given precision
func GeohashCellSize(precision int) float64 {
	sizes := map[int]float64{
		1:  5000000,
		2:  625000,
		3:  123000,
		4:  19500,
		5:  3900,
		6:  610,
		7:  120,
		8:  19,
		9:  3.7,
		10: 0.6,
		11: 0.12,
		12: 0.019,
	}

	if size, ok := sizes[precision]; ok {
		return size
	}
	return 0
}

func indexOfGeohashBase32(ch byte) int {
	for i := 0; i < len(geohashBase32); i++ {
		if geohashBase32[i] == ch {
			return i
		}
	}
	return -1
}
