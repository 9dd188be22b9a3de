package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var supportedRegions = []string{
	"BR",
	"US",
}

// NormalizePhone parses a contact phone against the supported regions and
// returns it in E.164 form, or "" when it cannot be parsed. Validation
// decides whether an empty result is an error; this function only normalizes.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	for _, region := range supportedRegions {
		parsed, err := phonenumbers.Parse(phone, region)
		if err != nil {
			continue
		}
		if phonenumbers.IsValidNumber(parsed) {
			return phonenumbers.Format(parsed, phonenumbers.E164)
		}
	}
	return ""
}
