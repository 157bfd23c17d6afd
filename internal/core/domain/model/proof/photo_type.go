package proof

import (
	"fmt"

	"courier-trust/internal/pkg/errs"
)

// PhotoType classifies one piece of captured delivery evidence.
type PhotoType int

const (
	// PhotoTypeUnknown represents an invalid or undefined photo type.
	PhotoTypeUnknown PhotoType = iota

	// PhotoTypePackage is the mandatory photo of the delivered package.
	PhotoTypePackage

	// PhotoTypeRecipient is the optional photo of the person receiving the package.
	PhotoTypeRecipient

	// PhotoTypeSignature is the captured signature image.
	PhotoTypeSignature

	// PhotoTypeLocation is a photo of the drop-off surroundings.
	PhotoTypeLocation
)

// getPhotoTypeStrings returns a map of PhotoType values to their string representations.
func getPhotoTypeStrings() map[PhotoType]string {
	return map[PhotoType]string{
		PhotoTypeUnknown:   "unknown",
		PhotoTypePackage:   "package",
		PhotoTypeRecipient: "recipient",
		PhotoTypeSignature: "signature",
		PhotoTypeLocation:  "location",
	}
}

// getValidPhotoTypeStrings returns a map of only valid PhotoType values.
func getValidPhotoTypeStrings() map[PhotoType]string {
	//nolint:exhaustive // PhotoTypeUnknown is intentionally excluded as it's invalid
	return map[PhotoType]string{
		PhotoTypePackage:   "package",
		PhotoTypeRecipient: "recipient",
		PhotoTypeSignature: "signature",
		PhotoTypeLocation:  "location",
	}
}

// PhotoTypeFromString parses a persisted photo type name back into a PhotoType value.
func PhotoTypeFromString(s string) (PhotoType, error) {
	for photoType, name := range getValidPhotoTypeStrings() {
		if name == s {
			return photoType, nil
		}
	}
	return PhotoTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"photoType", fmt.Errorf("%q is not a valid photo type", s))
}

// Validate checks if the PhotoType value is valid.
func (t PhotoType) Validate() error {
	if _, ok := getValidPhotoTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"photoType", fmt.Errorf("%d is not a valid photo type", t))
	}
	return nil
}

// String returns the lowercase photo type name used for persistence and display.
func (t PhotoType) String() string {
	if str, ok := getPhotoTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
