package edr

import (
	"fmt"
	"strings"
)

// TechType is an EDR display technology code.
type TechType uint16

// techNames maps each code to its description; the index is the code.
var techNames = [...]string{
	"Color Matching Function",
	"Custom",
	"CRT",
	"LCD CCFL IPS",
	"LCD CCFL VPA",
	"LCD CCFL TFT",
	"LCD CCFL Wide Gamut IPS",
	"LCD CCFL Wide Gamut VPA",
	"LCD CCFL Wide Gamut TFT",
	"LCD White LED IPS",
	"LCD White LED VPA",
	"LCD White LED TFT",
	"LCD RGB LED IPS",
	"LCD RGB LED VPA",
	"LCD RGB LED TFT",
	"LED OLED",
	"Plasma",
	// 17-21 are assumed vendor codes for unsuffixed family names and
	// projectors; published tables stop at 16.
	"LCD CCFL",
	"LCD CCFL Wide Gamut",
	"LCD White LED",
	"LCD RGB LED",
	"Projector",
}

var techByName = func() map[string]TechType {
	m := make(map[string]TechType, len(techNames))
	for code, name := range techNames {
		m[name] = TechType(code)
	}
	return m
}()

// panelSuffixes are panel-type qualifiers that calibration sources append to
// technology names the table lists without them.
var panelSuffixes = []string{" IPS", " VPA", " TFT"}

// String returns the technology description, or a numeric form for codes
// outside the table.
func (t TechType) String() string {
	if int(t) < len(techNames) {
		return techNames[t]
	}
	return fmt.Sprintf("TechType(%d)", uint16(t))
}

// TechByName returns the code for an exact technology description.
func TechByName(name string) (TechType, bool) {
	t, ok := techByName[name]
	return t, ok
}

// LookupTech resolves a free-form technology description. A name that is not
// in the table verbatim is retried without a trailing " IPS", " VPA" or
// " TFT". The returned name is the one that was looked up last.
func LookupTech(raw string) (TechType, string, bool) {
	if t, ok := techByName[raw]; ok {
		return t, raw, true
	}
	name := raw
	for _, suffix := range panelSuffixes {
		if strings.HasSuffix(raw, suffix) {
			name = strings.TrimSuffix(raw, suffix)
			break
		}
	}
	t, ok := techByName[name]
	return t, name, ok
}

// TechNames returns every known description in code order.
func TechNames() []string {
	return append([]string(nil), techNames[:]...)
}

// TechName returns the description for code, or "" if the code is unknown.
func TechName(code TechType) string {
	if int(code) < len(techNames) {
		return techNames[code]
	}
	return ""
}
