package language

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// iso3to1 maps the detector's ISO 639-3 output to the two-letter codes the
// translation provider understands. Unmapped languages count as undetected.
var iso3to1 = map[string]string{
	"eng": "en",
	"rus": "ru",
	"deu": "de",
	"fra": "fr",
	"spa": "es",
	"ita": "it",
	"por": "pt",
	"nld": "nl",
	"pol": "pl",
	"ukr": "uk",
	"tur": "tr",
	"swe": "sv",
	"dan": "da",
	"fin": "fi",
	"ces": "cs",
	"slk": "sk",
	"ron": "ro",
	"bul": "bg",
	"ell": "el",
	"hun": "hu",
	"lit": "lt",
	"lav": "lv",
	"est": "et",
	"jpn": "ja",
	"zho": "zh",
	"cmn": "zh",
	"kor": "ko",
	"ind": "id",
	"arb": "ar",
	"ara": "ar",
}

// Detector classifies text into an uppercase two-letter language code.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the language code of text, or ok=false when the input is too
// short or the classifier is not confident. Callers supply their own default.
func (d *Detector) Detect(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return "", false
	}
	code, ok := iso3to1[whatlanggo.LangToString(info.Lang)]
	if !ok {
		return "", false
	}
	return strings.ToUpper(code), true
}
