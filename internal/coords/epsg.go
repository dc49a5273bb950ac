package coords

import (
	"fmt"
	"strconv"
	"strings"
)

// WGS84Code is the EPSG code of geographic WGS 84 coordinates.
const WGS84Code = "4326"

// WGS84Name is the display name of WGS84Code.
const WGS84Name = "WGS 84"

const wgs84Def = "+proj=longlat +ellps=WGS84 +no_defs"

const (
	geographicGRS80 = "+proj=longlat +ellps=GRS80 +no_defs"
	webMercator     = "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +no_defs"
)

// epsgDefs holds the reference systems that aren't UTM zones.
var epsgDefs = map[int]string{
	4326:   wgs84Def,
	4283:   geographicGRS80, // GDA94
	7844:   geographicGRS80, // GDA2020
	4269:   geographicGRS80, // NAD83
	4258:   geographicGRS80, // ETRS89
	3857:   webMercator,
	900913: webMercator,
	3577:   "+proj=aea +lat_1=-18 +lat_2=-36 +lat_0=0 +lon_0=132 +x_0=0 +y_0=0 +ellps=GRS80 +units=m +no_defs",
	3111:   "+proj=lcc +lat_1=-36 +lat_2=-38 +lat_0=-37 +lon_0=145 +x_0=2500000 +y_0=2500000 +ellps=GRS80 +units=m +no_defs",
}

// utmZones maps ranges of EPSG codes onto UTM zones: zone = code - offset.
var utmZones = []struct {
	first, last, offset int
	south               bool
	ellps               string
}{
	{32601, 32660, 32600, false, "WGS84"}, // WGS 84 / UTM north
	{32701, 32760, 32700, true, "WGS84"},  // WGS 84 / UTM south
	{28348, 28358, 28300, true, "GRS80"},  // GDA94 / MGA
	{7846, 7859, 7800, true, "GRS80"},     // GDA2020 / MGA
	{26901, 26923, 26900, false, "GRS80"}, // NAD83 / UTM north
}

// Lookup returns the PROJ.4 definition of an EPSG code. The code may carry an
// "EPSG:" prefix. PROJ.4 definitions are returned as they are.
func Lookup(code string) (string, error) {
	code = strings.TrimSpace(code)
	if strings.HasPrefix(code, "+") {
		return code, nil
	}
	if len(code) > 5 && strings.EqualFold(code[:5], "epsg:") {
		code = code[5:]
	}

	n, err := strconv.Atoi(code)
	if err != nil {
		return "", fmt.Errorf("coords: invalid EPSG code %q", code)
	}

	if def, ok := epsgDefs[n]; ok {
		return def, nil
	}

	for _, z := range utmZones {
		if n < z.first || n > z.last {
			continue
		}
		def := fmt.Sprintf("+proj=utm +zone=%d", n-z.offset)
		if z.south {
			def += " +south"
		}
		return def + " +ellps=" + z.ellps + " +units=m +no_defs", nil
	}

	return "", fmt.Errorf("coords: unsupported EPSG code %d", n)
}
