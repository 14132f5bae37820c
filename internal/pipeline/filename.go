package pipeline

import "github.com/joseph-ayodele/paystubs-tracker/constants"

// DeriveFilename names a split page "{name} {date}.pdf". Two pages with the
// same name and date get the same filename; the later write wins.
func DeriveFilename(name, date string) string {
	return name + " " + date + "." + constants.PDFExt
}
